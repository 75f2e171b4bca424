// Package chart turns filtered tables into figure descriptions understood by
// the browser plotting library, and renders the same figures to PNG.
package chart

// Kind tells which renderer a figure needs.
type Kind string

const (
	// KindLine is a 2D chart with one line per group.
	KindLine Kind = "line"
	// KindScatter3D is a 3D scatter chart with one marker set per group.
	KindScatter3D Kind = "scatter3d"
)

// Palette is the qualitative color sequence assigned to traces in order.
var Palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Marker styles the points of a trace.
type Marker struct {
	Color  string  `json:"color"`
	Size   float64 `json:"size,omitempty"`
	Symbol string  `json:"symbol,omitempty"`
}

// LineStyle styles the line of a trace.
type LineStyle struct {
	Color string  `json:"color"`
	Width float64 `json:"width,omitempty"`
}

// Trace is a single series of a figure.
type Trace struct {
	Type          string      `json:"type"`
	Mode          string      `json:"mode"`
	Name          string      `json:"name"`
	LegendGroup   string      `json:"legendgroup"`
	ShowLegend    bool        `json:"showlegend"`
	X             []float64   `json:"x"`
	Y             []float64   `json:"y"`
	Z             []float64   `json:"z,omitempty"`
	CustomData    [][]float64 `json:"customdata,omitempty"`
	HoverTemplate string      `json:"hovertemplate"`
	Marker        *Marker     `json:"marker,omitempty"`
	Line          *LineStyle  `json:"line,omitempty"`
}

// Len returns number of points in the trace.
func (t Trace) Len() int { return len(t.X) }

// Title is a text title of a figure or axis.
type Title struct {
	Text string `json:"text"`
}

// Axis describes one axis.
type Axis struct {
	Title Title     `json:"title"`
	Range []float64 `json:"range,omitempty"`
}

// Scene holds the three axes of a 3D figure.
type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Legend describes the legend box.
type Legend struct {
	Title          Title  `json:"title"`
	TraceGroupGap  int    `json:"tracegroupgap"`
	ItemsizingMode string `json:"itemsizing,omitempty"`
}

// Margin of the plotting area in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Layout describes everything around the traces.
type Layout struct {
	Title  *Title  `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Scene  *Scene  `json:"scene,omitempty"`
	Legend Legend  `json:"legend"`
	Margin *Margin `json:"margin,omitempty"`
}

// Figure is the complete renderable description of one chart.
type Figure struct {
	Kind   Kind    `json:"-"`
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Points returns total number of points over all traces.
func (f Figure) Points() int {
	points := 0
	for _, trace := range f.Data {
		points += trace.Len()
	}
	return points
}

// TraceNames returns trace names in order.
func (f Figure) TraceNames() []string {
	names := make([]string, len(f.Data))
	for i, trace := range f.Data {
		names[i] = trace.Name
	}
	return names
}
