// Package canvas implements a rune matrix with the drawing primitives the
// ASCII exporter and the terminal previewer share: boxes, orthogonal paths
// with proper corner characters, text and arrow tips.
//
// Coordinate system: origin top-left, x rightward, y downward, all
// coordinates in character cells. Out-of-bounds writes are clipped.
package canvas

// Matrix is a fixed-size rune grid.
type Matrix struct {
	cells  [][]rune
	width  int
	height int
}

// NewMatrix creates a blank canvas of the given size, or nil for
// non-positive dimensions.
func NewMatrix(width, height int) *Matrix {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Matrix{cells: cells, width: width, height: height}
}

// Size returns the width and height of the canvas.
func (m *Matrix) Size() (width, height int) {
	return m.width, m.height
}

// Get returns the character at the given cell, or a space out of bounds.
func (m *Matrix) Get(x, y int) rune {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return ' '
	}
	return m.cells[y][x]
}

// Set places a character at the given cell, merging crossing line
// characters into a junction. Out-of-bounds writes are ignored.
func (m *Matrix) Set(x, y int, ch rune) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	existing := m.cells[y][x]
	if (existing == '─' && ch == '│') || (existing == '│' && ch == '─') {
		ch = '┼'
	}
	m.cells[y][x] = ch
}

// String renders the canvas as text, trimming trailing blanks per line.
func (m *Matrix) String() string {
	var sb []byte
	for y := 0; y < m.height; y++ {
		line := string(m.cells[y])
		end := len(line)
		for end > 0 && line[end-1] == ' ' {
			end--
		}
		sb = append(sb, line[:end]...)
		if y < m.height-1 {
			sb = append(sb, '\n')
		}
	}
	return string(sb)
}

// DrawBox draws a box with single-line borders. Boxes smaller than 2x2
// cells are ignored.
func (m *Matrix) DrawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	for i := 1; i < width-1; i++ {
		m.Set(x+i, y, '─')
		m.Set(x+i, y+height-1, '─')
	}
	for i := 1; i < height-1; i++ {
		m.Set(x, y+i, '│')
		m.Set(x+width-1, y+i, '│')
	}
	m.Set(x, y, '┌')
	m.Set(x+width-1, y, '┐')
	m.Set(x, y+height-1, '└')
	m.Set(x+width-1, y+height-1, '┘')
}

// DrawText writes a string starting at the given cell, clipped to bounds.
func (m *Matrix) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		m.Set(x+i, y, r)
	}
}

// Cell is a canvas coordinate.
type Cell struct {
	X, Y int
}

// DrawPath draws an orthogonal path through the given cells, choosing
// corner characters from the turn direction. Diagonal pairs are ignored.
func (m *Matrix) DrawPath(points []Cell) {
	for i := 0; i < len(points)-1; i++ {
		m.drawSegment(points[i], points[i+1])
	}
	for i := 1; i < len(points)-1; i++ {
		if c := cornerChar(points[i-1], points[i], points[i+1]); c != 0 {
			m.Set(points[i].X, points[i].Y, c)
		}
	}
}

// DrawArrowTip places a directional arrow character at the given cell.
// dx, dy is the direction the arrow points in.
func (m *Matrix) DrawArrowTip(at Cell, dx, dy int) {
	switch {
	case dy > 0:
		m.Set(at.X, at.Y, '▼')
	case dy < 0:
		m.Set(at.X, at.Y, '▲')
	case dx > 0:
		m.Set(at.X, at.Y, '►')
	case dx < 0:
		m.Set(at.X, at.Y, '◄')
	}
}

func (m *Matrix) drawSegment(a, b Cell) {
	switch {
	case a.Y == b.Y:
		x1, x2 := a.X, b.X
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			m.Set(x, a.Y, '─')
		}
	case a.X == b.X:
		y1, y2 := a.Y, b.Y
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			m.Set(a.X, y, '│')
		}
	}
}

// cornerChar picks the box-drawing character for the turn prev -> curr ->
// next, or 0 when the three cells are collinear.
func cornerChar(prev, curr, next Cell) rune {
	inX, inY := curr.X-prev.X, curr.Y-prev.Y
	outX, outY := next.X-curr.X, next.Y-curr.Y

	// Horizontal to vertical.
	if inY == 0 && outY != 0 {
		if outY > 0 {
			if inX > 0 {
				return '┐'
			}
			return '┌'
		}
		if inX > 0 {
			return '┘'
		}
		return '└'
	}
	// Vertical to horizontal.
	if inX == 0 && outX != 0 {
		if inY > 0 {
			if outX > 0 {
				return '└'
			}
			return '┘'
		}
		if outX > 0 {
			return '┌'
		}
		return '┐'
	}
	return 0
}
