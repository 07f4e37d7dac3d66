package routing

import (
	"tether/diagram"
	"tether/geometry"
)

// Arrow is a triangular arrowhead: apex first, then the two base corners.
type Arrow struct {
	Points [3]geometry.Point `json:"points"`
}

// Arrowheads builds the arrow polygons requested by the options. The apex
// sits exactly on the anchor and the base extends back along the path's
// local tangent. The s shape never carries arrows, regardless of flags.
func Arrowheads(p Path, opts diagram.Options) []Arrow {
	if opts.Shape == diagram.ShapeS || p.IsEmpty() {
		return nil
	}

	var arrows []Arrow
	if opts.StartArrow {
		if t := p.StartTangent(); t != (geometry.Point{}) {
			arrows = append(arrows, headAt(p.Start(), t, opts.ArrowSize))
		}
	}
	if opts.EndArrow {
		if t := p.EndTangent(); t != (geometry.Point{}) {
			// The base points back along the direction of travel.
			arrows = append(arrows, headAt(p.End(), geometry.Point{X: -t.X, Y: -t.Y}, opts.ArrowSize))
		}
	}
	return arrows
}

// headAt builds a triangle with its apex at the given point. dir is the
// unit vector from the apex toward the path interior.
func headAt(apex, dir geometry.Point, size float64) Arrow {
	base := geometry.Point{X: apex.X + dir.X*size, Y: apex.Y + dir.Y*size}
	perp := geometry.Point{X: -dir.Y, Y: dir.X}
	half := size / 2
	return Arrow{Points: [3]geometry.Point{
		apex,
		{X: base.X + perp.X*half, Y: base.Y + perp.Y*half},
		{X: base.X - perp.X*half, Y: base.Y - perp.Y*half},
	}}
}
