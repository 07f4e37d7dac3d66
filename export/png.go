package export

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"tether/render"
	"tether/routing"
)

// PNGExporter rasterises composed scenes with a 2D drawing context
type PNGExporter struct {
	// Scale multiplies canvas units into pixels.
	Scale float64
}

// NewPNGExporter creates a PNG exporter at 2x scale for crisp strokes
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{Scale: 2}
}

// Export converts a composed scene to a PNG image
func (e *PNGExporter) Export(d *render.SceneDrawing) ([]byte, error) {
	scale := e.Scale
	if scale <= 0 {
		scale = 1
	}
	width := int(d.Width * scale)
	height := int(d.Height * scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.Scale(scale, scale)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Connectors first so the boxes sit on top.
	for _, conn := range d.Connectors {
		drawConnectorPNG(dc, conn)
	}

	for _, box := range d.Boxes {
		r := box.Rect
		dc.SetColor(color.Black)
		dc.SetLineWidth(1.5)
		dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
		dc.Stroke()
		if box.Label != "" {
			dc.DrawStringAnchored(box.Label, r.MidX(), r.MidY(), 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// GetFileExtension returns the file extension for PNG
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}

func drawConnectorPNG(dc *gg.Context, conn *render.Drawing) {
	if conn.Path.IsEmpty() {
		return
	}
	dc.SetColor(parseStroke(conn.Stroke))
	dc.SetLineWidth(conn.StrokeWidth)
	for _, c := range conn.Path.Commands {
		switch c.Op {
		case routing.MoveTo:
			dc.MoveTo(c.To.X, c.To.Y)
		case routing.LineTo:
			dc.LineTo(c.To.X, c.To.Y)
		case routing.QuadTo:
			dc.QuadraticTo(c.Ctrl.X, c.Ctrl.Y, c.To.X, c.To.Y)
		}
	}
	dc.Stroke()

	for _, a := range conn.Arrows {
		dc.MoveTo(a.Points[0].X, a.Points[0].Y)
		dc.LineTo(a.Points[1].X, a.Points[1].Y)
		dc.LineTo(a.Points[2].X, a.Points[2].Y)
		dc.ClosePath()
		dc.Fill()
	}
}

// parseStroke maps a CSS-ish stroke value to a concrete color. Keyword
// values the rasteriser can't resolve (currentColor etc.) become black.
func parseStroke(s string) color.Color {
	if len(s) == 0 || s[0] != '#' {
		return color.Black
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.Black
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
