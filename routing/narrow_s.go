package routing

import (
	"tether/diagram"
	"tether/geometry"
)

// NarrowSRouter draws an orthogonal staircase constrained to a virtual grid
// of Grids subdivisions spanning the distance between the anchors. Stem is
// the minimum straight run leaving each anchor before the first turn; the
// cross-axis delta is distributed evenly over the interior grid boundaries.
// Grids=2 degenerates to the plain S shape, Grids<=1 to a straight run.
type NarrowSRouter struct{}

// Route computes the staircase path. The primary axis follows the
// direction: horizontal directions traverse x first, vertical ones y.
func (NarrowSRouter) Route(start, end geometry.Point, opts diagram.Options) Path {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx == 0 || dy == 0 || opts.Grids <= 1 {
		return straight(start, end)
	}

	vertical := opts.Direction.Vertical()

	// Work in (p, q) coordinates where p is the primary axis.
	p0, q0 := start.X, start.Y
	pn, qn := end.X, end.Y
	if vertical {
		p0, q0 = q0, p0
		pn, qn = qn, pn
	}

	span := geometry.Abs(pn - p0)
	sp := geometry.Sign(pn - p0)
	stem := geometry.Min(opts.Stem, span/2)
	inner := span - 2*stem
	grids := opts.Grids
	steps := grids - 1
	dq := (qn - q0) / float64(steps)

	pt := func(p, q float64) geometry.Point {
		if vertical {
			return geometry.Point{X: q, Y: p}
		}
		return geometry.Point{X: p, Y: q}
	}

	w := make([]geometry.Point, 0, 2*steps+2)
	w = append(w, start)
	for k := 1; k <= steps; k++ {
		pk := p0 + sp*(stem+inner*float64(k)/float64(grids))
		w = append(w, pt(pk, q0+dq*float64(k-1)))
		w = append(w, pt(pk, q0+dq*float64(k)))
	}
	w = append(w, end)

	radius := opts.MinStep
	if radius <= 0 {
		radius = geometry.Min(span/float64(grids), geometry.Abs(qn-q0)/float64(grids))
	}
	return FromWaypoints(w, opts.RoundCorner, radius)
}
