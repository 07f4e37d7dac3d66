package routing

import (
	"tether/diagram"
	"tether/geometry"
)

// LineRouter draws a single straight segment between the anchors.
// Stem, grid and corner options do not apply.
type LineRouter struct{}

// Route returns the direct path start -> end.
func (LineRouter) Route(start, end geometry.Point, _ diagram.Options) Path {
	return straight(start, end)
}

func straight(start, end geometry.Point) Path {
	var p Path
	p.MoveTo(start)
	p.LineTo(end)
	return p
}
