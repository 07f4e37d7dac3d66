package render

import (
	"testing"

	"tether/diagram"
	"tether/geometry"
	"tether/routing"
)

func box(left, top, w, h float64) *diagram.Element {
	return &diagram.Element{OffsetLeft: left, OffsetTop: top, Width: w, Height: h}
}

func TestConnectLineEndToEnd(t *testing.T) {
	d := Connect(diagram.ConnectRequest{
		From:    box(0, 0, 100, 40),
		To:      box(300, 0, 100, 40),
		Options: diagram.Options{Shape: diagram.ShapeLine},
	})
	if d == nil {
		t.Fatal("Connect returned nil for a valid request")
	}

	if d.Start != (geometry.Point{X: 100, Y: 20}) {
		t.Errorf("start = %v, want (100,20)", d.Start)
	}
	if d.End != (geometry.Point{X: 300, Y: 20}) {
		t.Errorf("end = %v, want (300,20)", d.End)
	}
	if len(d.Path.Commands) != 2 {
		t.Errorf("line path should be a single segment, got %+v", d.Path.Commands)
	}
	if d.Stroke != diagram.DefaultStroke || d.StrokeWidth != diagram.DefaultStrokeWidth {
		t.Errorf("stroke defaults not applied: %q/%v", d.Stroke, d.StrokeWidth)
	}
}

func TestConnectRendersNothing(t *testing.T) {
	valid := diagram.Options{Shape: diagram.ShapeLine}

	tests := []struct {
		name string
		req  diagram.ConnectRequest
	}{
		{"missing from", diagram.ConnectRequest{To: box(300, 0, 100, 40), Options: valid}},
		{"missing to", diagram.ConnectRequest{From: box(0, 0, 100, 40), Options: valid}},
		{"unknown shape", diagram.ConnectRequest{
			From: box(0, 0, 100, 40), To: box(300, 0, 100, 40),
			Options: diagram.Options{Shape: "zigzag"},
		}},
		{"empty shape", diagram.ConnectRequest{
			From: box(0, 0, 100, 40), To: box(300, 0, 100, 40),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Connect(tt.req); d != nil {
				t.Errorf("Connect = %+v, want nil", d)
			}
		})
	}
}

func TestConnectCanvasFromPositionedAncestor(t *testing.T) {
	parent := &diagram.Element{Positioned: true, ScrollWidth: 800, ScrollHeight: 600}
	from := box(0, 0, 100, 40)
	from.Parent = parent

	d := Connect(diagram.ConnectRequest{
		From:    from,
		To:      box(300, 0, 100, 40),
		Options: diagram.Options{Shape: diagram.ShapeLine},
	})
	if d == nil {
		t.Fatal("Connect returned nil")
	}
	if d.Width != 800 || d.Height != 600 {
		t.Errorf("canvas = %v x %v, want 800 x 600", d.Width, d.Height)
	}
}

func TestConnectCanvasFallsBackToBoundingBox(t *testing.T) {
	d := Connect(diagram.ConnectRequest{
		From:    box(0, 0, 100, 40),
		To:      box(300, 0, 100, 40),
		Options: diagram.Options{Shape: diagram.ShapeLine},
	})
	if d == nil {
		t.Fatal("Connect returned nil")
	}
	if d.Width != 400+canvasPadding || d.Height != 40+canvasPadding {
		t.Errorf("canvas = %v x %v", d.Width, d.Height)
	}
}

func TestConnectArrowSuppressionForS(t *testing.T) {
	d := Connect(diagram.ConnectRequest{
		From: box(0, 0, 100, 40),
		To:   box(300, 100, 100, 40),
		Options: diagram.Options{
			Shape:      diagram.ShapeS,
			StartArrow: true,
			EndArrow:   true,
		},
	})
	if d == nil {
		t.Fatal("Connect returned nil")
	}
	if len(d.Arrows) != 0 {
		t.Errorf("s connector carried %d arrows", len(d.Arrows))
	}
}

func TestConnectNarrowSDefaults(t *testing.T) {
	d := Connect(diagram.ConnectRequest{
		From:    box(0, 0, 100, 40),
		To:      box(300, 200, 100, 40),
		Options: diagram.Options{Shape: diagram.ShapeNarrowS, EndArrow: true},
	})
	if d == nil {
		t.Fatal("Connect returned nil")
	}

	// Default grid count gives grids-1 transitions, two waypoints each.
	w := d.Path.Waypoints()
	if want := 2*(diagram.DefaultGrids-1) + 2; len(w) != want {
		t.Errorf("waypoints = %d, want %d", len(w), want)
	}
	if len(d.Arrows) != 1 {
		t.Fatalf("arrows = %d, want 1", len(d.Arrows))
	}
	if d.Arrows[0].Points[0] != d.End {
		t.Errorf("arrow apex = %v, want end anchor %v", d.Arrows[0].Points[0], d.End)
	}
}

func TestConnectPassesAttrsThrough(t *testing.T) {
	attrs := map[string]string{"stroke-dasharray": "4 2"}
	d := Connect(diagram.ConnectRequest{
		From:    box(0, 0, 100, 40),
		To:      box(300, 0, 100, 40),
		Options: diagram.Options{Shape: diagram.ShapeLine, Attrs: attrs},
	})
	if d == nil {
		t.Fatal("Connect returned nil")
	}
	if d.Attrs["stroke-dasharray"] != "4 2" {
		t.Errorf("attrs = %v", d.Attrs)
	}
}

func TestComposeScene(t *testing.T) {
	s := &diagram.Scene{
		Boxes: []diagram.Box{
			{ID: "a", Label: "first", Element: diagram.Element{Width: 100, Height: 40}},
			{ID: "b", Element: diagram.Element{OffsetLeft: 300, Width: 100, Height: 40}},
		},
		Connectors: []diagram.Connector{
			{From: "a", To: "b", Options: diagram.Options{Shape: diagram.ShapeLine}},
			{From: "a", To: "ghost", Options: diagram.Options{Shape: diagram.ShapeLine}},
			{From: "a", To: "b", Options: diagram.Options{Shape: "unknown"}},
		},
		Metadata: diagram.Metadata{Name: "two boxes"},
	}

	sd := ComposeScene(s)

	if len(sd.Boxes) != 2 {
		t.Fatalf("boxes = %d", len(sd.Boxes))
	}
	if sd.Boxes[0].Rect != (geometry.Rect{Right: 100, Bottom: 40}) {
		t.Errorf("box rect = %v", sd.Boxes[0].Rect)
	}
	if len(sd.Connectors) != 1 {
		t.Fatalf("connectors = %d, want 1 (bad references skipped)", len(sd.Connectors))
	}
	if sd.Width != 400+canvasPadding || sd.Height != 40+canvasPadding {
		t.Errorf("canvas = %v x %v", sd.Width, sd.Height)
	}
	if sd.Name != "two boxes" {
		t.Errorf("name = %q", sd.Name)
	}

	conn := sd.Connectors[0]
	if conn.Path.Start() != (geometry.Point{X: 100, Y: 20}) {
		t.Errorf("connector start = %v", conn.Path.Start())
	}
	if conn.Path.Commands[1].Op != routing.LineTo {
		t.Errorf("connector op = %v", conn.Path.Commands[1].Op)
	}
}
