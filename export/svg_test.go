package export

import (
	"strings"
	"testing"

	"tether/diagram"
	"tether/render"
)

func testScene() *diagram.Scene {
	return &diagram.Scene{
		Boxes: []diagram.Box{
			{ID: "a", Label: "Tom & Jerry", Element: diagram.Element{Width: 100, Height: 40}},
			{ID: "b", Label: "sink", Element: diagram.Element{OffsetLeft: 300, Width: 100, Height: 40}},
		},
		Connectors: []diagram.Connector{
			{From: "a", To: "b", Options: diagram.Options{
				Shape:    diagram.ShapeLine,
				EndArrow: true,
				Attrs:    map[string]string{"stroke-dasharray": "4 2"},
			}},
		},
		Metadata: diagram.Metadata{Name: "test scene"},
	}
}

func TestSVGExport(t *testing.T) {
	out, err := NewSVGExporter().Export(render.ComposeScene(testScene()))
	if err != nil {
		t.Fatal(err)
	}
	svg := string(out)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 410.0 50.0"`,
		`<title>test scene</title>`,
		`M 100.0 20.0 L 300.0 20.0`,
		`<rect x="0.0" y="0.0" width="100.0" height="40.0"`,
		`Tom &amp; Jerry`,
		`stroke="currentColor"`,
		`stroke-dasharray="4 2"`,
		`<polygon points="300.0,20.0`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q:\n%s", want, svg)
		}
	}
}

func TestSVGExportNoArrowsForS(t *testing.T) {
	s := testScene()
	s.Connectors[0].Shape = diagram.ShapeS
	s.Boxes[1].OffsetTop = 100

	out, err := NewSVGExporter().Export(render.ComposeScene(s))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<polygon") {
		t.Error("s connector must not emit arrow polygons")
	}
}

func TestPathDataQuad(t *testing.T) {
	s := testScene()
	s.Connectors[0].Shape = diagram.ShapeNarrowS
	s.Connectors[0].RoundCorner = true
	s.Boxes[1].OffsetTop = 200

	sd := render.ComposeScene(s)
	if len(sd.Connectors) != 1 {
		t.Fatal("connector was not routed")
	}
	data := PathData(sd.Connectors[0].Path)
	if !strings.HasPrefix(data, "M 100.0 20.0") {
		t.Errorf("path data = %q", data)
	}
	if !strings.Contains(data, "Q ") {
		t.Errorf("rounded path has no curves: %q", data)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := escapeXML(`<a href="x">'&'</a>`); got != "&lt;a href=&quot;x&quot;&gt;&apos;&amp;&apos;&lt;/a&gt;" {
		t.Errorf("escapeXML = %q", got)
	}
}

func TestExporterRegistry(t *testing.T) {
	for _, f := range GetAvailableFormats() {
		e, err := NewExporter(f)
		if err != nil {
			t.Fatalf("NewExporter(%s): %v", f, err)
		}
		if e.GetFileExtension() == "" || e.GetFormatName() == "" {
			t.Errorf("%s exporter missing metadata", f)
		}
	}
	if _, err := NewExporter("pdf"); err == nil {
		t.Error("unsupported format should error")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatSVG, true},
		{"svg", FormatSVG, true},
		{"png", FormatPNG, true},
		{"ascii", FormatASCII, true},
		{"txt", FormatASCII, true},
		{"json", FormatJSON, true},
		{"pdf", "", false},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}
