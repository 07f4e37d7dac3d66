package routing

import (
	"tether/diagram"
	"tether/geometry"
)

// SRouter draws an orthogonal path with exactly one transition between two
// straight runs, forming an "S" or "Z" depending on where the anchors sit.
// With RoundCorner set the two right angles become quadratic corner curves.
type SRouter struct{}

// Route computes the S path. Aligned anchors degenerate to a straight
// segment.
func (SRouter) Route(start, end geometry.Point, opts diagram.Options) Path {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx == 0 || dy == 0 {
		return straight(start, end)
	}

	var w []geometry.Point
	if opts.Direction.Vertical() {
		midY := (start.Y + end.Y) / 2
		w = []geometry.Point{
			start,
			{X: start.X, Y: midY},
			{X: end.X, Y: midY},
			end,
		}
	} else {
		midX := (start.X + end.X) / 2
		w = []geometry.Point{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		}
	}

	radius := opts.MinStep
	if radius <= 0 {
		// Scale-derived default: a quarter of the shorter delta keeps the
		// curve visible without swallowing the runs.
		radius = geometry.Min(geometry.Abs(dx), geometry.Abs(dy)) / 4
	}
	return FromWaypoints(w, opts.RoundCorner, radius)
}
