package routing

import (
	"tether/diagram"
	"tether/geometry"
)

// Anchors computes the start point on box 1 and the end point on box 2 for
// the given direction. The default (r2l) connects the right-edge midpoint
// of box 1 to the left-edge midpoint of box 2; the other directions
// override only the coordinates that differ.
func Anchors(r1, r2 geometry.Rect, dir diagram.Direction) (start, end geometry.Point) {
	start = geometry.Point{X: r1.Right, Y: r1.MidY()}
	end = geometry.Point{X: r2.Left, Y: r2.MidY()}

	switch dir {
	case diagram.LeftToLeft:
		start.X = r1.Left
	case diagram.LeftToRight:
		start.X = r1.Left
		end.X = r2.Right
	case diagram.RightToRight:
		end.X = r2.Right
	case diagram.BottomToTop:
		start = geometry.Point{X: r1.MidX(), Y: r1.Bottom}
		end = geometry.Point{X: r2.MidX(), Y: r2.Top}
	case diagram.BottomToBottom:
		start = geometry.Point{X: r1.MidX(), Y: r1.Bottom}
		end = geometry.Point{X: r2.MidX(), Y: r2.Bottom}
	case diagram.TopToTop:
		start = geometry.Point{X: r1.MidX(), Y: r1.Top}
		end = geometry.Point{X: r2.MidX(), Y: r2.Top}
	case diagram.TopToBottom:
		start = geometry.Point{X: r1.MidX(), Y: r1.Top}
		end = geometry.Point{X: r2.MidX(), Y: r2.Bottom}
	}
	return start, end
}
