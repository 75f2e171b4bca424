// Package linechart is the life expectancy page: one line per country of the
// continents selected in a checklist.
package linechart

import (
	"encoding/json"

	"github.com/bosco-l/multipage-dashboard/pkg/chart"
	"github.com/bosco-l/multipage-dashboard/pkg/dataset"
	"github.com/bosco-l/multipage-dashboard/pkg/layout"
	"github.com/bosco-l/multipage-dashboard/pkg/page"
)

// Identities of the page and its components.
const (
	Path        = "line-chart-demo"
	GraphID     = "demo-graph-1"
	ChecklistID = "checklist"
)

// Continents offered by the checklist.
var Continents = []string{"Asia", "Europe", "Africa", "Americas", "Oceania"}

// DefaultSelection is checked on first load.
var DefaultSelection = []string{"Americas", "Oceania"}

// Layout builds the page layout.
func Layout() layout.Node {
	return layout.Div(map[string]string{"margin": "10px"},
		layout.Heading(4, "Life expectancy progression of countries per continents", "chart-title"),
		layout.Graph(GraphID),
		layout.Checklist(ChecklistID, Continents, DefaultSelection, true),
	)
}

// Update draws life expectancy over years for countries of given continents.
// Empty selection gives a chart without lines.
func Update(data *dataset.Table, continents []string) (chart.Figure, error) {
	return chart.Line(data.Filter(dataset.In(dataset.Continent, continents...)), chart.Bindings{
		X:     dataset.Year,
		Y:     dataset.LifeExp,
		Color: dataset.Country,
	})
}

// Descriptor registers the page against given life expectancy data.
func Descriptor(data *dataset.Table) page.Descriptor {
	return page.Descriptor{
		Path:   Path,
		Name:   "Line Chart",
		Title:  "Life expectancy",
		Layout: Layout,
		Callbacks: map[string]page.Callback{
			ChecklistID: {
				Output: GraphID,
				Update: func(value json.RawMessage) (chart.Figure, error) {
					continents, err := page.DecodeStrings(value)
					if err != nil {
						return chart.Figure{}, err
					}
					return Update(data, continents)
				},
			},
		},
	}
}
