package export

import (
	"strings"
	"testing"

	"tether/diagram"
	"tether/render"
)

func TestASCIIExport(t *testing.T) {
	s := &diagram.Scene{
		Boxes: []diagram.Box{
			{ID: "a", Label: "one", Element: diagram.Element{Width: 100, Height: 80}},
			{ID: "b", Label: "two", Element: diagram.Element{OffsetLeft: 300, Width: 100, Height: 80}},
		},
		Connectors: []diagram.Connector{
			{From: "a", To: "b", Options: diagram.Options{Shape: diagram.ShapeLine}},
		},
	}

	out, err := NewASCIIExporter().Export(render.ComposeScene(s))
	if err != nil {
		t.Fatal(err)
	}
	art := string(out)

	for _, want := range []string{"┌", "┐", "└", "┘", "one", "two", "─"} {
		if !strings.Contains(art, want) {
			t.Errorf("output missing %q:\n%s", want, art)
		}
	}
}

func TestASCIIExportArrowTip(t *testing.T) {
	s := &diagram.Scene{
		Boxes: []diagram.Box{
			{ID: "a", Element: diagram.Element{Width: 100, Height: 80}},
			{ID: "b", Element: diagram.Element{OffsetLeft: 300, Width: 100, Height: 80}},
		},
		Connectors: []diagram.Connector{
			{From: "a", To: "b", Options: diagram.Options{Shape: diagram.ShapeLine, EndArrow: true}},
		},
	}

	out, err := NewASCIIExporter().Export(render.ComposeScene(s))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "►") {
		t.Errorf("missing rightward arrow tip:\n%s", out)
	}
}

func TestASCIIExportEmptyScene(t *testing.T) {
	out, err := NewASCIIExporter().Export(render.ComposeScene(&diagram.Scene{}))
	if err != nil {
		t.Fatal(err)
	}
	_ = out // an empty scene must not panic; content is irrelevant
}

func TestCellQuantisation(t *testing.T) {
	if toCellX(25) != 3 || toCellX(24) != 2 {
		t.Errorf("toCellX rounding: %d, %d", toCellX(25), toCellX(24))
	}
	if toCellY(30) != 2 || toCellY(29) != 1 {
		t.Errorf("toCellY rounding: %d, %d", toCellY(30), toCellY(29))
	}
}
