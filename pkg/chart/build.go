package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/bosco-l/multipage-dashboard/pkg/dataset"
)

// Bindings map table columns to visual channels.
type Bindings struct {
	X     string
	Y     string
	Z     string
	Color string
	// Hover lists extra numeric columns shown on hover.
	Hover []string
}

// Line builds a line chart with one trace per value of the Color column.
// Points of each trace are ordered by X. Empty table gives a figure without traces.
func Line(table *dataset.Table, b Bindings) (Figure, error) {
	xs, err := table.Floats(b.X)
	if err != nil {
		return Figure{}, errors.Wrap(err, "line chart x")
	}
	ys, err := table.Floats(b.Y)
	if err != nil {
		return Figure{}, errors.Wrap(err, "line chart y")
	}
	groups, err := groupsOf(table, b.Color)
	if err != nil {
		return Figure{}, errors.Wrap(err, "line chart color")
	}

	figure := Figure{
		Kind: KindLine,
		Data: []Trace{},
		Layout: Layout{
			XAxis:  &Axis{Title: Title{Text: b.X}, Range: paddedRange(xs)},
			YAxis:  &Axis{Title: Title{Text: b.Y}, Range: paddedRange(ys)},
			Legend: Legend{Title: Title{Text: b.Color}, TraceGroupGap: 10},
			Margin: &Margin{T: 60},
		},
	}

	for i, group := range groups {
		gx, _ := group.Table.Floats(b.X)
		gy, _ := group.Table.Floats(b.Y)
		sortByX(gx, gy)

		color := Palette[i%len(Palette)]
		figure.Data = append(figure.Data, Trace{
			Type:          "scatter",
			Mode:          "lines",
			Name:          group.Key,
			LegendGroup:   group.Key,
			ShowLegend:    true,
			X:             gx,
			Y:             gy,
			HoverTemplate: hoverTemplate(b.Color, group.Key, []string{b.X + "=%{x}", b.Y + "=%{y}"}),
			Line:          &LineStyle{Color: color, Width: 2},
		})
	}
	return figure, nil
}

// Scatter3D builds a 3D scatter chart with one trace per value of the Color column.
// Hover columns are carried as custom data of every point.
func Scatter3D(table *dataset.Table, b Bindings) (Figure, error) {
	axes := map[string][]float64{}
	for _, name := range append([]string{b.X, b.Y, b.Z}, b.Hover...) {
		values, err := table.Floats(name)
		if err != nil {
			return Figure{}, errors.Wrap(err, "scatter chart")
		}
		axes[name] = values
	}
	groups, err := groupsOf(table, b.Color)
	if err != nil {
		return Figure{}, errors.Wrap(err, "scatter chart color")
	}

	figure := Figure{
		Kind: KindScatter3D,
		Data: []Trace{},
		Layout: Layout{
			Scene: &Scene{
				XAxis: Axis{Title: Title{Text: b.X}, Range: paddedRange(axes[b.X])},
				YAxis: Axis{Title: Title{Text: b.Y}, Range: paddedRange(axes[b.Y])},
				ZAxis: Axis{Title: Title{Text: b.Z}, Range: paddedRange(axes[b.Z])},
			},
			Legend: Legend{Title: Title{Text: b.Color}, TraceGroupGap: 10},
			Margin: &Margin{T: 60},
		},
	}

	hover := []string{b.X + "=%{x}", b.Y + "=%{y}", b.Z + "=%{z}"}
	for i, name := range b.Hover {
		hover = append(hover, fmt.Sprintf("%s=%%{customdata[%d]}", name, i))
	}

	for i, group := range groups {
		trace := Trace{
			Type:          "scatter3d",
			Mode:          "markers",
			Name:          group.Key,
			LegendGroup:   group.Key,
			ShowLegend:    true,
			HoverTemplate: hoverTemplate(b.Color, group.Key, hover),
			Marker:        &Marker{Color: Palette[i%len(Palette)], Symbol: "circle"},
		}
		trace.X, _ = group.Table.Floats(b.X)
		trace.Y, _ = group.Table.Floats(b.Y)
		trace.Z, _ = group.Table.Floats(b.Z)
		if len(b.Hover) > 0 {
			columns := make([][]float64, len(b.Hover))
			for j, name := range b.Hover {
				columns[j], _ = group.Table.Floats(name)
			}
			trace.CustomData = make([][]float64, group.Table.Len())
			for row := range trace.CustomData {
				trace.CustomData[row] = make([]float64, len(columns))
				for j := range columns {
					trace.CustomData[row][j] = columns[j][row]
				}
			}
		}
		figure.Data = append(figure.Data, trace)
	}
	return figure, nil
}

// groupsOf splits table by color column. Without color column the whole
// table is one unnamed group. Empty tables give no groups.
func groupsOf(table *dataset.Table, color string) ([]dataset.Group, error) {
	if color == "" {
		if table.Len() == 0 {
			return nil, nil
		}
		return []dataset.Group{{Table: table}}, nil
	}
	return table.GroupBy(color)
}

func hoverTemplate(color, key string, fields []string) string {
	parts := fields
	if color != "" {
		parts = append([]string{color + "=" + key}, fields...)
	}
	return strings.Join(parts, "<br>") + "<extra></extra>"
}

type byX struct{ xs, ys []float64 }

func (s byX) Len() int           { return len(s.xs) }
func (s byX) Less(i, j int) bool { return s.xs[i] < s.xs[j] }
func (s byX) Swap(i, j int) {
	s.xs[i], s.xs[j] = s.xs[j], s.xs[i]
	s.ys[i], s.ys[j] = s.ys[j], s.ys[i]
}

func sortByX(xs, ys []float64) {
	sort.Stable(byX{xs: xs, ys: ys})
}

// paddedRange returns axis range covering values with 5% margin on both sides.
// Nil for no values, so the browser autoscales.
func paddedRange(values []float64) []float64 {
	min, err := stats.Min(values)
	if err != nil {
		return nil
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil
	}
	pad := (max - min) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(max)*0.05, 0.5)
	}
	return []float64{min - pad, max + pad}
}
