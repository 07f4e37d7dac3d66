package routing

import (
	"tether/diagram"
	"tether/geometry"
)

// Router turns a pair of anchor points into a path.
type Router interface {
	Route(start, end geometry.Point, opts diagram.Options) Path
}

// ForShape returns the router for the given shape tag. Unknown shapes
// return false; the compositor renders nothing for them.
func ForShape(shape diagram.Shape) (Router, bool) {
	switch shape {
	case diagram.ShapeLine:
		return LineRouter{}, true
	case diagram.ShapeS:
		return SRouter{}, true
	case diagram.ShapeNarrowS:
		return NarrowSRouter{}, true
	default:
		return nil, false
	}
}
