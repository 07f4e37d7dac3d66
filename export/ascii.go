package export

import (
	"math"

	"tether/canvas"
	"tether/geometry"
	"tether/render"
)

// Canvas units per character cell. Terminal cells are roughly twice as
// tall as they are wide, so the vertical divisor is doubled to keep
// proportions recognisable.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// ASCIIExporter renders composed scenes as Unicode box-drawing art
type ASCIIExporter struct{}

// NewASCIIExporter creates a new ASCII exporter
func NewASCIIExporter() *ASCIIExporter {
	return &ASCIIExporter{}
}

// Export converts a composed scene to ASCII/Unicode art
func (e *ASCIIExporter) Export(d *render.SceneDrawing) ([]byte, error) {
	width := toCellX(d.Width) + 1
	height := toCellY(d.Height) + 1
	m := canvas.NewMatrix(width, height)
	if m == nil {
		return []byte{}, nil
	}
	DrawScene(m, d)
	return []byte(m.String()), nil
}

// GetFileExtension returns the file extension for ASCII art
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII"
}

// DrawScene rasterises a composed scene onto a cell matrix. The terminal
// previewer reuses it to draw straight to the screen buffer.
func DrawScene(m *canvas.Matrix, d *render.SceneDrawing) {
	for _, conn := range d.Connectors {
		drawConnectorCells(m, conn)
	}
	for _, box := range d.Boxes {
		r := box.Rect
		x1, y1 := toCellX(r.Left), toCellY(r.Top)
		x2, y2 := toCellX(r.Right), toCellY(r.Bottom)
		w := x2 - x1 + 1
		h := y2 - y1 + 1
		if w < 2 {
			w = 2
		}
		if h < 2 {
			h = 2
		}
		m.DrawBox(x1, y1, w, h)
		if box.Label != "" {
			lx := x1 + (w-len([]rune(box.Label)))/2
			if lx < x1+1 {
				lx = x1 + 1
			}
			m.DrawText(lx, y1+h/2, box.Label)
		}
	}
}

func drawConnectorCells(m *canvas.Matrix, conn *render.Drawing) {
	pts := conn.Path.Waypoints()
	cells := make([]canvas.Cell, 0, len(pts))
	for _, p := range pts {
		c := toCell(p)
		if len(cells) > 0 && cells[len(cells)-1] == c {
			continue
		}
		cells = append(cells, c)
	}
	m.DrawPath(cells)

	for _, a := range conn.Arrows {
		apex := a.Points[0]
		baseX := (a.Points[1].X + a.Points[2].X) / 2
		baseY := (a.Points[1].Y + a.Points[2].Y) / 2
		dx := sign(apex.X - baseX)
		dy := sign(apex.Y - baseY)
		m.DrawArrowTip(toCell(apex), dx, dy)
	}
}

func toCell(p geometry.Point) canvas.Cell {
	return canvas.Cell{X: toCellX(p.X), Y: toCellY(p.Y)}
}

func toCellX(x float64) int {
	return int(math.Round(x / CellWidth))
}

func toCellY(y float64) int {
	return int(math.Round(y / CellHeight))
}

func sign(x float64) int {
	switch {
	case x > 0.5:
		return 1
	case x < -0.5:
		return -1
	default:
		return 0
	}
}
