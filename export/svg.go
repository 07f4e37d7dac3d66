package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"tether/render"
	"tether/routing"
)

// SVGExporter renders composed scenes as SVG markup
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export converts a composed scene to SVG
func (e *SVGExporter) Export(d *render.SceneDrawing) ([]byte, error) {
	var buf bytes.Buffer

	width := d.Width
	height := d.Height
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	buf.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`,
		width, height, width, height))
	buf.WriteString("\n")

	buf.WriteString(`<defs><style>`)
	buf.WriteString(`.box { fill: #fafafa; stroke: #666; stroke-width: 1.5; }`)
	buf.WriteString(`.box-label { font-family: system-ui, Arial; font-size: 12px; fill: #333; text-anchor: middle; dominant-baseline: middle; }`)
	buf.WriteString(`.connector { fill: none; }`)
	buf.WriteString(`</style></defs>`)
	buf.WriteString("\n")

	if d.Name != "" {
		buf.WriteString(fmt.Sprintf(`<title>%s</title>`, escapeXML(d.Name)))
		buf.WriteString("\n")
	}

	for _, box := range d.Boxes {
		r := box.Rect
		buf.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" class="box"/>`,
			r.Left, r.Top, r.Width(), r.Height()))
		buf.WriteString("\n")
		if box.Label != "" {
			buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="box-label">%s</text>`,
				r.MidX(), r.MidY(), escapeXML(box.Label)))
			buf.WriteString("\n")
		}
	}

	for _, conn := range d.Connectors {
		writeConnector(&buf, conn)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// GetFileExtension returns the file extension for SVG
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}

func writeConnector(buf *bytes.Buffer, conn *render.Drawing) {
	if conn.Path.IsEmpty() {
		return
	}
	buf.WriteString(fmt.Sprintf(`<path d="%s" class="connector" stroke="%s" stroke-width="%.1f"%s/>`,
		PathData(conn.Path), escapeXML(conn.Stroke), conn.StrokeWidth, extraAttrs(conn.Attrs)))
	buf.WriteString("\n")
	for _, a := range conn.Arrows {
		buf.WriteString(fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`,
			a.Points[0].X, a.Points[0].Y,
			a.Points[1].X, a.Points[1].Y,
			a.Points[2].X, a.Points[2].Y,
			escapeXML(conn.Stroke)))
		buf.WriteString("\n")
	}
}

// PathData serialises a path to SVG path-data syntax.
func PathData(p routing.Path) string {
	var sb strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch c.Op {
		case routing.MoveTo:
			sb.WriteString(fmt.Sprintf("M %.1f %.1f", c.To.X, c.To.Y))
		case routing.LineTo:
			sb.WriteString(fmt.Sprintf("L %.1f %.1f", c.To.X, c.To.Y))
		case routing.QuadTo:
			sb.WriteString(fmt.Sprintf("Q %.1f %.1f %.1f %.1f", c.Ctrl.X, c.Ctrl.Y, c.To.X, c.To.Y))
		}
	}
	return sb.String()
}

// extraAttrs serialises pass-through attributes in a stable order.
func extraAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(` %s="%s"`, k, escapeXML(attrs[k])))
	}
	return sb.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
