// Package terminal implements the interactive connector previewer: two
// boxes on a tcell screen, with keys to drag them around and cycle through
// the routing options while the connector re-routes live.
package terminal

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"tether/canvas"
	"tether/diagram"
	"tether/export"
	"tether/render"
)

var shapes = []diagram.Shape{diagram.ShapeNarrowS, diagram.ShapeS, diagram.ShapeLine}

var directions = []diagram.Direction{
	diagram.RightToLeft, diagram.LeftToRight, diagram.LeftToLeft, diagram.RightToRight,
	diagram.BottomToTop, diagram.BottomToBottom, diagram.TopToTop, diagram.TopToBottom,
}

// Preview is the interactive previewer state.
type Preview struct {
	scene  diagram.Scene
	opts   diagram.Options
	active int // index of the box being moved
	status string
}

// NewPreview creates a previewer with two boxes and a narrow-s connector.
func NewPreview() *Preview {
	p := &Preview{
		opts: diagram.Options{
			Shape:       diagram.ShapeNarrowS,
			RoundCorner: true,
			EndArrow:    true,
		},
	}
	p.scene = diagram.Scene{
		Boxes: []diagram.Box{
			{ID: "a", Label: "box 1", Element: diagram.Element{
				OffsetLeft: 4 * export.CellWidth, OffsetTop: 3 * export.CellHeight,
				Width: 14 * export.CellWidth, Height: 4 * export.CellHeight,
			}},
			{ID: "b", Label: "box 2", Element: diagram.Element{
				OffsetLeft: 34 * export.CellWidth, OffsetTop: 12 * export.CellHeight,
				Width: 14 * export.CellWidth, Height: 4 * export.CellHeight,
			}},
		},
		Connectors: []diagram.Connector{{From: "a", To: "b"}},
	}
	return p
}

// Run starts the event loop and blocks until the user quits.
func (p *Preview) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	for {
		p.draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if p.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey updates the state for one key press and reports whether the
// previewer should quit.
func (p *Preview) handleKey(ev *tcell.EventKey) bool {
	p.status = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.moveActive(0, -1)
	case tcell.KeyDown:
		p.moveActive(0, 1)
	case tcell.KeyLeft:
		p.moveActive(-1, 0)
	case tcell.KeyRight:
		p.moveActive(1, 0)
	case tcell.KeyTab:
		p.active = (p.active + 1) % len(p.scene.Boxes)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			p.moveActive(-1, 0)
		case 'j':
			p.moveActive(0, 1)
		case 'k':
			p.moveActive(0, -1)
		case 'l':
			p.moveActive(1, 0)
		case 's':
			p.opts.Shape = cycle(shapes, p.opts.Shape)
		case 'd':
			p.opts.Direction = cycle(directions, diagram.ParseDirection(string(p.opts.Direction)))
		case 'r':
			p.opts.RoundCorner = !p.opts.RoundCorner
		case 'a':
			p.cycleArrows()
		case '+', '=':
			p.opts.Grids++
		case '-':
			if p.opts.Grids > 1 {
				p.opts.Grids--
			}
		case 'y':
			p.yank()
		}
	}
	p.scene.Connectors[0].Options = p.opts
	return false
}

func (p *Preview) moveActive(dx, dy int) {
	el := &p.scene.Boxes[p.active].Element
	el.OffsetLeft += float64(dx) * export.CellWidth
	el.OffsetTop += float64(dy) * export.CellHeight
	if el.OffsetLeft < 0 {
		el.OffsetLeft = 0
	}
	if el.OffsetTop < 0 {
		el.OffsetTop = 0
	}
}

// cycleArrows steps through none -> end -> start -> both.
func (p *Preview) cycleArrows() {
	switch {
	case !p.opts.StartArrow && !p.opts.EndArrow:
		p.opts.EndArrow = true
	case !p.opts.StartArrow && p.opts.EndArrow:
		p.opts.StartArrow, p.opts.EndArrow = true, false
	case p.opts.StartArrow && !p.opts.EndArrow:
		p.opts.EndArrow = true
	default:
		p.opts.StartArrow, p.opts.EndArrow = false, false
	}
}

func (p *Preview) yank() {
	exporter := export.NewSVGExporter()
	out, err := exporter.Export(render.ComposeScene(&p.scene))
	if err != nil {
		p.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	if err := clipboard.WriteAll(string(out)); err != nil {
		p.status = fmt.Sprintf("clipboard failed: %v", err)
		return
	}
	p.status = "SVG yanked to clipboard"
}

func (p *Preview) draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()
	if width < 2 || height < 2 {
		return
	}

	p.scene.Connectors[0].Options = p.opts
	sd := render.ComposeScene(&p.scene)

	m := canvas.NewMatrix(width, height-1)
	if m == nil {
		return
	}
	export.DrawScene(m, sd)

	style := tcell.StyleDefault
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, m.Get(x, y), nil, style)
		}
	}

	bar := p.statusLine()
	barStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len([]rune(bar)) {
			r = []rune(bar)[x]
		}
		screen.SetContent(x, height-1, r, nil, barStyle)
	}
}

func (p *Preview) statusLine() string {
	opts := p.opts.WithDefaults()
	arrows := "none"
	switch {
	case opts.StartArrow && opts.EndArrow:
		arrows = "both"
	case opts.StartArrow:
		arrows = "start"
	case opts.EndArrow:
		arrows = "end"
	}
	line := fmt.Sprintf(" %s %s grids:%d round:%v arrows:%s | arrows/hjkl move, Tab box, s/d/r/a/+/- options, y yank, q quit",
		opts.Shape, opts.Direction, opts.Grids, opts.RoundCorner, arrows)
	if p.status != "" {
		line = " " + p.status + " |" + line
	}
	return line
}

// cycle returns the element after cur, wrapping around.
func cycle[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
