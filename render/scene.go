package render

import (
	"tether/diagram"
	"tether/geometry"
)

// BoxDrawing is a resolved scene box ready for an exporter.
type BoxDrawing struct {
	ID    string        `json:"id"`
	Label string        `json:"label,omitempty"`
	Rect  geometry.Rect `json:"rect"`
}

// SceneDrawing is a fully composed scene: every box resolved and every
// routable connector drawn, sharing one canvas.
type SceneDrawing struct {
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Boxes      []BoxDrawing `json:"boxes"`
	Connectors []*Drawing   `json:"connectors,omitempty"`
	Name       string       `json:"name,omitempty"`
}

// ComposeScene resolves and routes a whole scene. Connectors that reference
// a missing box are skipped silently, consistent with the single-connector
// policy of rendering nothing for absent elements.
func ComposeScene(s *diagram.Scene) *SceneDrawing {
	sd := &SceneDrawing{Name: s.Metadata.Name}

	var bbox geometry.Rect
	for i := range s.Boxes {
		b := &s.Boxes[i]
		r := b.Bounds()
		if i == 0 {
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
		sd.Boxes = append(sd.Boxes, BoxDrawing{ID: b.ID, Label: b.Label, Rect: r})
	}

	for _, conn := range s.Connectors {
		from := s.FindBox(conn.From)
		to := s.FindBox(conn.To)
		var req diagram.ConnectRequest
		req.Options = conn.Options
		if from != nil {
			req.From = &from.Element
		}
		if to != nil {
			req.To = &to.Element
		}
		if d := Connect(req); d != nil {
			sd.Connectors = append(sd.Connectors, d)
		}
	}

	sd.Width = bbox.Right + canvasPadding
	sd.Height = bbox.Bottom + canvasPadding
	return sd
}
