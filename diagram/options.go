package diagram

// Default routing parameters. The narrow-s grid and stem values were chosen
// to produce a readable staircase at typical element distances; minStep has
// no fixed default because it is derived from the anchor span when unset.
const (
	DefaultGrids       = 5
	DefaultStem        = 10.0
	DefaultArrowSize   = 10.0
	DefaultStroke      = "currentColor"
	DefaultStrokeWidth = 1.0
)

// Options enumerates every recognised connector option. Zero values mean
// "use the default"; WithDefaults resolves them.
type Options struct {
	Shape       Shape             `json:"shape"`
	Direction   Direction         `json:"direction,omitempty"`
	Grids       int               `json:"grids,omitempty"`
	Stem        float64           `json:"stem,omitempty"`
	MinStep     float64           `json:"minStep,omitempty"`
	RoundCorner bool              `json:"roundCorner,omitempty"`
	StartArrow  bool              `json:"startArrow,omitempty"`
	EndArrow    bool              `json:"endArrow,omitempty"`
	ArrowSize   float64           `json:"arrowSize,omitempty"`
	Stroke      string            `json:"stroke,omitempty"`
	StrokeWidth float64           `json:"strokeWidth,omitempty"`
	Attrs       map[string]string `json:"attrs,omitempty"`
}

// WithDefaults returns a copy with unset options resolved to their defaults.
// MinStep stays zero when unset; the routers derive it from the span.
func (o Options) WithDefaults() Options {
	o.Direction = ParseDirection(string(o.Direction))
	if o.Grids == 0 {
		o.Grids = DefaultGrids
	}
	if o.Stem == 0 {
		o.Stem = DefaultStem
	}
	if o.Stem < 0 {
		o.Stem = 0
	}
	if o.ArrowSize <= 0 {
		o.ArrowSize = DefaultArrowSize
	}
	if o.Stroke == "" {
		o.Stroke = DefaultStroke
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	return o
}
