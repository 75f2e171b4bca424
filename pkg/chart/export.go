package chart

import (
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default size of exported images in pixels.
const (
	DefaultWidth  = 900
	DefaultHeight = 450
)

// pngDPI matches the default resolution of gonum image canvases.
const pngDPI = 96

// RenderPNG writes figure as PNG image. Line charts are drawn with go-chart;
// 3D scatter charts are projected on their X/Y plane and drawn with gonum/plot.
func RenderPNG(w io.Writer, f Figure, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid image size %dx%d", width, height)
	}
	if f.Points() == 0 {
		return renderProjection(w, f, width, height)
	}
	switch f.Kind {
	case KindLine:
		return renderLine(w, f, width, height)
	case KindScatter3D:
		return renderProjection(w, f, width, height)
	}
	return errors.Errorf("no PNG renderer for %q figures", f.Kind)
}

func renderLine(w io.Writer, f Figure, width, height int) error {
	series := []gochart.Series{}
	for _, trace := range f.Data {
		if trace.Len() == 0 {
			continue
		}
		style := gochart.Style{StrokeWidth: 2}
		if trace.Line != nil {
			style.StrokeColor = hexColor(trace.Line.Color)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    trace.Name,
			XValues: trace.X,
			YValues: trace.Y,
			Style:   style,
		})
	}

	xAxis := gochart.XAxis{ValueFormatter: plainNumber}
	yAxis := gochart.YAxis{}
	if f.Layout.XAxis != nil {
		xAxis.Name = f.Layout.XAxis.Title.Text
		xAxis.Range = continuousRange(f.Layout.XAxis.Range)
	}
	if f.Layout.YAxis != nil {
		yAxis.Name = f.Layout.YAxis.Title.Text
		yAxis.Range = continuousRange(f.Layout.YAxis.Range)
	}

	ch := gochart.Chart{
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if f.Layout.Title != nil {
		ch.Title = f.Layout.Title.Text
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return errors.Wrap(ch.Render(gochart.PNG, w), "rendering line chart")
}

func renderProjection(w io.Writer, f Figure, width, height int) error {
	p := plot.New()
	if f.Layout.Title != nil {
		p.Title.Text = f.Layout.Title.Text
	}
	switch {
	case f.Layout.Scene != nil:
		p.X.Label.Text = f.Layout.Scene.XAxis.Title.Text
		p.Y.Label.Text = f.Layout.Scene.YAxis.Title.Text
	case f.Layout.XAxis != nil && f.Layout.YAxis != nil:
		p.X.Label.Text = f.Layout.XAxis.Title.Text
		p.Y.Label.Text = f.Layout.YAxis.Title.Text
	}
	if f.Points() == 0 {
		p.Title.Text = strings.TrimSpace(p.Title.Text + " (no data)")
	}

	for _, trace := range f.Data {
		if trace.Len() == 0 {
			continue
		}
		points := make(plotter.XYs, trace.Len())
		for i := range points {
			points[i].X = trace.X[i]
			points[i].Y = trace.Y[i]
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return errors.Wrapf(err, "projecting trace %q", trace.Name)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		if trace.Marker != nil {
			scatter.GlyphStyle.Color = rgba(trace.Marker.Color)
		}
		p.Add(scatter)
		p.Legend.Add(trace.Name, scatter)
	}

	writer, err := p.WriterTo(pixels(width), pixels(height), "png")
	if err != nil {
		return errors.Wrap(err, "creating scatter canvas")
	}
	_, err = writer.WriteTo(w)
	return errors.Wrap(err, "rendering scatter chart")
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pngDPI
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func rgba(hex string) color.Color {
	c := hexColor(hex)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func continuousRange(bounds []float64) gochart.Range {
	if len(bounds) != 2 {
		return nil
	}
	return &gochart.ContinuousRange{Min: bounds[0], Max: bounds[1]}
}

func plainNumber(v interface{}) string {
	if number, ok := v.(float64); ok {
		return strconv.FormatFloat(number, 'f', -1, 64)
	}
	return ""
}
