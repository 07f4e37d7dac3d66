// Package render composes connector drawings: it resolves elements to
// rectangles, selects anchors and a router, decorates the path with
// arrowheads and sizes the containing canvas.
package render

import (
	"tether/diagram"
	"tether/geometry"
	"tether/routing"
)

// Canvas padding applied when falling back to a tight bounding box.
const canvasPadding = 10.0

// Drawing is the drawable output of a single connector computation.
type Drawing struct {
	Width       float64           `json:"width"`
	Height      float64           `json:"height"`
	Start       geometry.Point    `json:"start"`
	End         geometry.Point    `json:"end"`
	Path        routing.Path      `json:"path"`
	Arrows      []routing.Arrow   `json:"arrows,omitempty"`
	Stroke      string            `json:"stroke"`
	StrokeWidth float64           `json:"strokeWidth"`
	Attrs       map[string]string `json:"attrs,omitempty"`
}

// Connect is the public entry point: it computes the connector described by
// the request. It returns nil — render nothing — when either element is
// absent or the shape tag is unknown; that is the only failure mode.
func Connect(req diagram.ConnectRequest) *Drawing {
	if req.From == nil || req.To == nil {
		return nil
	}
	router, ok := routing.ForShape(req.Shape)
	if !ok {
		return nil
	}

	opts := req.Options.WithDefaults()
	r1 := req.From.Bounds()
	r2 := req.To.Bounds()
	start, end := routing.Anchors(r1, r2, opts.Direction)
	path := router.Route(start, end, opts)
	width, height := canvasSize(req.From, r1.Union(r2))

	return &Drawing{
		Width:       width,
		Height:      height,
		Start:       start,
		End:         end,
		Path:        path,
		Arrows:      routing.Arrowheads(path, opts),
		Stroke:      opts.Stroke,
		StrokeWidth: opts.StrokeWidth,
		Attrs:       opts.Attrs,
	}
}

// canvasSize matches the canvas to the scroll dimensions of the nearest
// positioned ancestor, falling back to the tight bounding box of the two
// elements when no ancestor is known.
func canvasSize(from *diagram.Element, bbox geometry.Rect) (w, h float64) {
	if anc := from.PositionedAncestor(); anc != nil && anc.ScrollWidth > 0 && anc.ScrollHeight > 0 {
		return anc.ScrollWidth, anc.ScrollHeight
	}
	return bbox.Right + canvasPadding, bbox.Bottom + canvasPadding
}
