// Package routing computes connector paths between anchor points: straight
// segments, S-shaped orthogonal paths and grid-constrained staircases, plus
// the arrowhead geometry that decorates them.
package routing

import (
	"encoding/json"
	"fmt"
	"math"

	"tether/geometry"
)

// Op identifies a path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo
)

// String returns the SVG-flavoured name of the command.
func (op Op) String() string {
	switch op {
	case MoveTo:
		return "moveTo"
	case LineTo:
		return "lineTo"
	case QuadTo:
		return "quadTo"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the op as its string name.
func (op Op) MarshalJSON() ([]byte, error) {
	return json.Marshal(op.String())
}

// UnmarshalJSON decodes an op from its string name.
func (op *Op) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "moveTo":
		*op = MoveTo
	case "lineTo":
		*op = LineTo
	case "quadTo":
		*op = QuadTo
	default:
		return fmt.Errorf("unknown path op: %q", s)
	}
	return nil
}

// Command is a single path instruction. Ctrl is only meaningful for QuadTo,
// where it holds the control point of the corner curve.
type Command struct {
	Op   Op             `json:"op"`
	To   geometry.Point `json:"to"`
	Ctrl geometry.Point `json:"ctrl,omitzero"`
}

// Path is an ordered sequence of path commands.
type Path struct {
	Commands []Command `json:"commands"`
}

// MoveTo appends a moveTo command.
func (p *Path) MoveTo(pt geometry.Point) {
	p.Commands = append(p.Commands, Command{Op: MoveTo, To: pt})
}

// LineTo appends a lineTo command.
func (p *Path) LineTo(pt geometry.Point) {
	p.Commands = append(p.Commands, Command{Op: LineTo, To: pt})
}

// QuadTo appends a quadratic curve command with the given control point.
func (p *Path) QuadTo(ctrl, pt geometry.Point) {
	p.Commands = append(p.Commands, Command{Op: QuadTo, To: pt, Ctrl: ctrl})
}

// IsEmpty returns true if the path has no commands.
func (p Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Start returns the first point of the path.
func (p Path) Start() geometry.Point {
	if p.IsEmpty() {
		return geometry.Point{}
	}
	return p.Commands[0].To
}

// End returns the last point of the path.
func (p Path) End() geometry.Point {
	if p.IsEmpty() {
		return geometry.Point{}
	}
	return p.Commands[len(p.Commands)-1].To
}

// StartTangent returns the unit direction in which the path leaves its
// start point, or the zero vector for degenerate paths.
func (p Path) StartTangent() geometry.Point {
	if len(p.Commands) < 2 {
		return geometry.Point{}
	}
	from := p.Commands[0].To
	next := p.Commands[1]
	to := next.To
	if next.Op == QuadTo {
		to = next.Ctrl
	}
	return unit(to.X-from.X, to.Y-from.Y)
}

// EndTangent returns the unit direction of travel as the path arrives at
// its end point, or the zero vector for degenerate paths.
func (p Path) EndTangent() geometry.Point {
	if len(p.Commands) < 2 {
		return geometry.Point{}
	}
	last := p.Commands[len(p.Commands)-1]
	from := p.Commands[len(p.Commands)-2].To
	if last.Op == QuadTo {
		from = last.Ctrl
	}
	return unit(last.To.X-from.X, last.To.Y-from.Y)
}

// Waypoints returns the corner points of the path: command targets, with
// curve control points standing in for the corners they round off.
func (p Path) Waypoints() []geometry.Point {
	pts := make([]geometry.Point, 0, len(p.Commands))
	for _, c := range p.Commands {
		if c.Op == QuadTo {
			pts = append(pts, c.Ctrl)
		}
		pts = append(pts, c.To)
	}
	return pts
}

// FromWaypoints builds a path through the given corner points. With round
// set, every interior corner becomes a quadratic curve whose radius is
// clamped to half the shorter of the two segments it joins, so adjacent
// corners never consume overlapping stretches of a shared segment.
func FromWaypoints(points []geometry.Point, round bool, radius float64) Path {
	var p Path
	if len(points) == 0 {
		return p
	}
	p.MoveTo(points[0])
	if !round || radius <= 0 {
		for _, pt := range points[1:] {
			if pt != p.End() {
				p.LineTo(pt)
			}
		}
		return p
	}
	for i := 1; i < len(points)-1; i++ {
		prev, corner, next := points[i-1], points[i], points[i+1]
		in := dist(prev, corner)
		out := dist(corner, next)
		r := geometry.Min(radius, geometry.Min(in, out)/2)
		if r <= 0 {
			p.LineTo(corner)
			continue
		}
		u := unit(corner.X-prev.X, corner.Y-prev.Y)
		v := unit(next.X-corner.X, next.Y-corner.Y)
		entry := geometry.Point{X: corner.X - u.X*r, Y: corner.Y - u.Y*r}
		exit := geometry.Point{X: corner.X + v.X*r, Y: corner.Y + v.Y*r}
		if entry != p.End() {
			p.LineTo(entry)
		}
		p.QuadTo(corner, exit)
	}
	if last := points[len(points)-1]; last != p.End() {
		p.LineTo(last)
	}
	return p
}

func unit(dx, dy float64) geometry.Point {
	n := math.Hypot(dx, dy)
	if n == 0 {
		return geometry.Point{}
	}
	return geometry.Point{X: dx / n, Y: dy / n}
}

func dist(a, b geometry.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
