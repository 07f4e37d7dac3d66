package routing

import (
	"math/rand"
	"testing"

	"tether/diagram"
	"tether/geometry"
)

func TestAnchorsPerDirection(t *testing.T) {
	r1 := geometry.Rect{Top: 0, Left: 0, Right: 100, Bottom: 40}
	r2 := geometry.Rect{Top: 100, Left: 300, Right: 400, Bottom: 140}

	tests := []struct {
		dir        diagram.Direction
		start, end geometry.Point
	}{
		{diagram.RightToLeft, geometry.Point{X: 100, Y: 20}, geometry.Point{X: 300, Y: 120}},
		{diagram.LeftToRight, geometry.Point{X: 0, Y: 20}, geometry.Point{X: 400, Y: 120}},
		{diagram.LeftToLeft, geometry.Point{X: 0, Y: 20}, geometry.Point{X: 300, Y: 120}},
		{diagram.RightToRight, geometry.Point{X: 100, Y: 20}, geometry.Point{X: 400, Y: 120}},
		{diagram.BottomToTop, geometry.Point{X: 50, Y: 40}, geometry.Point{X: 350, Y: 100}},
		{diagram.BottomToBottom, geometry.Point{X: 50, Y: 40}, geometry.Point{X: 350, Y: 140}},
		{diagram.TopToTop, geometry.Point{X: 50, Y: 0}, geometry.Point{X: 350, Y: 100}},
		{diagram.TopToBottom, geometry.Point{X: 50, Y: 0}, geometry.Point{X: 350, Y: 140}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			start, end := Anchors(r1, r2, tt.dir)
			if start != tt.start {
				t.Errorf("start = %v, want %v", start, tt.start)
			}
			if end != tt.end {
				t.Errorf("end = %v, want %v", end, tt.end)
			}
		})
	}
}

func TestAnchorsDefaultVerticallyCentered(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		r1 := randomRect(rng)
		r2 := randomRect(rng)
		start, end := Anchors(r1, r2, diagram.RightToLeft)

		if want := (r1.Top + r1.Bottom) / 2; start.Y != want {
			t.Fatalf("start.Y = %v, want %v for %v", start.Y, want, r1)
		}
		if want := (r2.Top + r2.Bottom) / 2; end.Y != want {
			t.Fatalf("end.Y = %v, want %v for %v", end.Y, want, r2)
		}
		if start.X != r1.Right || end.X != r2.Left {
			t.Fatalf("anchors off edge: start=%v end=%v", start, end)
		}
	}
}

func TestAnchorsUnknownDirectionFallsBack(t *testing.T) {
	r1 := geometry.Rect{Right: 100, Bottom: 40}
	r2 := geometry.Rect{Left: 300, Bottom: 40}

	start, end := Anchors(r1, r2, diagram.Direction("sideways"))
	if start.X != r1.Right || end.X != r2.Left {
		t.Errorf("unknown direction should behave like r2l, got start=%v end=%v", start, end)
	}
}

func randomRect(rng *rand.Rand) geometry.Rect {
	left := rng.Float64() * 500
	top := rng.Float64() * 500
	return geometry.Rect{
		Top:    top,
		Left:   left,
		Right:  left + 10 + rng.Float64()*200,
		Bottom: top + 10 + rng.Float64()*200,
	}
}
