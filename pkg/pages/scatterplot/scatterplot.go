// Package scatterplot is the iris page: a 3D scatter of samples whose petal
// width lies strictly within the range picked on a slider.
package scatterplot

import (
	"encoding/json"

	"github.com/bosco-l/multipage-dashboard/pkg/chart"
	"github.com/bosco-l/multipage-dashboard/pkg/dataset"
	"github.com/bosco-l/multipage-dashboard/pkg/layout"
	"github.com/bosco-l/multipage-dashboard/pkg/page"
)

// Identities of the page and its components.
const (
	Path     = "scatter-plot-demo"
	GraphID  = "demo-graph-2"
	SliderID = "range-slider"
)

// Slider bounds.
const (
	Min  = 0.0
	Max  = 2.5
	Step = 0.1
)

// DefaultRange is selected on first load.
var DefaultRange = [2]float64{0.5, 2}

// Layout builds the page layout.
func Layout() layout.Node {
	return layout.Div(map[string]string{"margin": "10px"},
		layout.Heading(4, "Iris samples filtered by petal width", "chart-title"),
		layout.Graph(GraphID),
		layout.P("Petal Width:"),
		petalWidthSlider(),
	)
}

func petalWidthSlider() layout.Node {
	return layout.RangeSlider(SliderID, Min, Max, Step,
		[]layout.Mark{{Value: 0, Label: "0"}, {Value: 2.5, Label: "2.5"}},
		DefaultRange)
}

func slider() *layout.RangeSliderProps {
	return petalWidthSlider().Slider
}

// Update draws samples with low < petal width < high. An empty or inverted
// range gives a chart without points.
func Update(data *dataset.Table, low, high float64) (chart.Figure, error) {
	return chart.Scatter3D(data.Filter(dataset.Between(dataset.PetalWidth, low, high)), chart.Bindings{
		X:     dataset.SepalLength,
		Y:     dataset.SepalWidth,
		Z:     dataset.PetalWidth,
		Color: dataset.Species,
		Hover: []string{dataset.PetalWidth},
	})
}

// Descriptor registers the page against given iris data. Values received
// from the client are moved to the closest slider tick and clamped to the
// slider bounds before filtering.
func Descriptor(data *dataset.Table) page.Descriptor {
	return page.Descriptor{
		Path:   Path,
		Name:   "3D Scatter Plot",
		Title:  "Iris samples",
		Layout: Layout,
		Callbacks: map[string]page.Callback{
			SliderID: {
				Output: GraphID,
				Update: func(value json.RawMessage) (chart.Figure, error) {
					low, high, err := page.DecodeRange(value)
					if err != nil {
						return chart.Figure{}, err
					}
					bounds := slider().Snapped(low, high)
					return Update(data, bounds[0], bounds[1])
				},
			},
		},
	}
}
