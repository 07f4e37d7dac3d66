package routing

import (
	"testing"

	"tether/diagram"
	"tether/geometry"
)

func TestStartArrowOnLine(t *testing.T) {
	p := straight(geometry.Point{X: 100, Y: 20}, geometry.Point{X: 300, Y: 20})
	opts := diagram.Options{Shape: diagram.ShapeLine, StartArrow: true, ArrowSize: 10}

	arrows := Arrowheads(p, opts)
	if len(arrows) != 1 {
		t.Fatalf("arrow count = %d, want 1", len(arrows))
	}

	a := arrows[0]
	if a.Points[0] != (geometry.Point{X: 100, Y: 20}) {
		t.Errorf("apex = %v, want the start anchor", a.Points[0])
	}
	// Base extends into the path, offset half the size either side.
	if a.Points[1] != (geometry.Point{X: 110, Y: 25}) || a.Points[2] != (geometry.Point{X: 110, Y: 15}) {
		t.Errorf("base = %v, %v", a.Points[1], a.Points[2])
	}
}

func TestEndArrowPointsAlongTravel(t *testing.T) {
	p := straight(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 50})
	opts := diagram.Options{Shape: diagram.ShapeLine, EndArrow: true, ArrowSize: 8}

	arrows := Arrowheads(p, opts)
	if len(arrows) != 1 {
		t.Fatalf("arrow count = %d, want 1", len(arrows))
	}
	a := arrows[0]
	if a.Points[0] != (geometry.Point{X: 0, Y: 50}) {
		t.Errorf("apex = %v, want the end anchor", a.Points[0])
	}
	if a.Points[1].Y != 42 || a.Points[2].Y != 42 {
		t.Errorf("base must sit behind the apex: %v, %v", a.Points[1], a.Points[2])
	}
}

func TestSShapeNeverCarriesArrows(t *testing.T) {
	p := SRouter{}.Route(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 60}, diagram.Options{})
	opts := diagram.Options{Shape: diagram.ShapeS, StartArrow: true, EndArrow: true, ArrowSize: 10}

	if arrows := Arrowheads(p, opts); arrows != nil {
		t.Errorf("s shape produced arrows: %v", arrows)
	}
}

func TestBothArrowsOnNarrowS(t *testing.T) {
	opts := diagram.Options{Shape: diagram.ShapeNarrowS, Grids: 5, Stem: 10, StartArrow: true, EndArrow: true, ArrowSize: 10}
	p := NarrowSRouter{}.Route(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 300, Y: 100}, opts)

	arrows := Arrowheads(p, opts)
	if len(arrows) != 2 {
		t.Fatalf("arrow count = %d, want 2", len(arrows))
	}
	if arrows[0].Points[0] != p.Start() || arrows[1].Points[0] != p.End() {
		t.Errorf("apexes = %v, %v; want path endpoints", arrows[0].Points[0], arrows[1].Points[0])
	}
}

func TestArrowheadsEmptyPath(t *testing.T) {
	opts := diagram.Options{Shape: diagram.ShapeLine, StartArrow: true, ArrowSize: 10}
	if arrows := Arrowheads(Path{}, opts); arrows != nil {
		t.Errorf("empty path produced arrows: %v", arrows)
	}
}
