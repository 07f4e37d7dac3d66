// Package diagram contains the fundamental types used throughout the tether
// connector renderer.
package diagram

import "tether/geometry"

// Shape selects which router draws a connector.
type Shape string

const (
	// ShapeLine draws a single straight segment between the anchors.
	ShapeLine Shape = "line"
	// ShapeS draws an orthogonal path with one transition between two runs.
	ShapeS Shape = "s"
	// ShapeNarrowS draws a grid-constrained orthogonal staircase.
	ShapeNarrowS Shape = "narrow-s"
)

// Direction encodes which edge pair of the two boxes a connector spans.
// The first letter names the edge of box 1, the second the edge of box 2.
type Direction string

const (
	RightToLeft    Direction = "r2l" // default
	LeftToRight    Direction = "l2r"
	LeftToLeft     Direction = "l2l"
	RightToRight   Direction = "r2r"
	BottomToTop    Direction = "b2t"
	BottomToBottom Direction = "b2b"
	TopToTop       Direction = "t2t"
	TopToBottom    Direction = "t2b"
)

// ParseDirection maps a direction string to one of the eight values.
// Anything unrecognised (including the empty string) falls back to r2l.
func ParseDirection(s string) Direction {
	switch Direction(s) {
	case LeftToRight, LeftToLeft, RightToRight,
		BottomToTop, BottomToBottom, TopToTop, TopToBottom:
		return Direction(s)
	default:
		return RightToLeft
	}
}

// Vertical reports whether the connector spans top/bottom edges, which makes
// the routers traverse the y axis first.
func (d Direction) Vertical() bool {
	switch d {
	case BottomToTop, BottomToBottom, TopToTop, TopToBottom:
		return true
	default:
		return false
	}
}

// Element is an opaque visual element reference: the layout box of something
// the caller wants to connect. Offsets are relative to the offset parent;
// the transform translation is folded in when resolving bounds.
type Element struct {
	OffsetLeft   float64         `json:"offsetLeft"`
	OffsetTop    float64         `json:"offsetTop"`
	Width        float64         `json:"width"`
	Height       float64         `json:"height"`
	Transform    geometry.Matrix `json:"transform,omitempty"`
	ScrollWidth  float64         `json:"scrollWidth,omitempty"`
	ScrollHeight float64         `json:"scrollHeight,omitempty"`
	Positioned   bool            `json:"positioned,omitempty"`
	Parent       *Element        `json:"parent,omitempty"`
}

// Bounds resolves the element to an absolute rectangle, adding the active
// translation components to the content-box offset.
func (e *Element) Bounds() geometry.Rect {
	left := e.OffsetLeft + e.Transform.M41
	top := e.OffsetTop + e.Transform.M42
	return geometry.Rect{
		Top:    top,
		Left:   left,
		Right:  left + e.Width,
		Bottom: top + e.Height,
	}
}

// PositionedAncestor walks the parent chain and returns the nearest
// positioned ancestor, or nil when there is none.
func (e *Element) PositionedAncestor() *Element {
	for p := e.Parent; p != nil; p = p.Parent {
		if p.Positioned {
			return p
		}
	}
	return nil
}

// ConnectRequest is the immutable input of a single connector computation.
type ConnectRequest struct {
	From *Element `json:"from"`
	To   *Element `json:"to"`
	Options
}

// Box is a named element inside a scene.
type Box struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Element
}

// Connector joins two boxes of a scene by ID.
type Connector struct {
	From string `json:"from"`
	To   string `json:"to"`
	Options
}

// Scene is a complete set of boxes and the connectors between them.
type Scene struct {
	Boxes      []Box       `json:"boxes"`
	Connectors []Connector `json:"connectors"`
	Metadata   Metadata    `json:"metadata,omitempty"`
}

// FindBox returns the box with the given ID, or nil.
func (s *Scene) FindBox(id string) *Box {
	for i := range s.Boxes {
		if s.Boxes[i].ID == id {
			return &s.Boxes[i]
		}
	}
	return nil
}

// Metadata contains optional scene metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
	Version string `json:"version,omitempty"`
}
