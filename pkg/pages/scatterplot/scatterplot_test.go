package scatterplot

import (
	"encoding/json"
	"testing"

	"github.com/bosco-l/multipage-dashboard/pkg/dataset"
	"github.com/bosco-l/multipage-dashboard/pkg/page"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	Convey("The layout should hold the graph and the petal width slider", t, func() {
		root := Layout()
		So(root.Validate(), ShouldBeNil)

		slider, ok := root.Find(SliderID)
		So(ok, ShouldBeTrue)
		So(slider.Slider.Min, ShouldEqual, 0.0)
		So(slider.Slider.Max, ShouldEqual, 2.5)
		So(slider.Slider.Step, ShouldEqual, 0.1)
		So(slider.Slider.Value, ShouldResemble, [2]float64{0.5, 2})
		So(slider.Slider.Ticks(), ShouldHaveLength, 26)

		_, ok = root.Find(GraphID)
		So(ok, ShouldBeTrue)
	})
}

func TestUpdate(t *testing.T) {
	data := dataset.Iris()

	tests := []struct {
		name      string
		low, high float64
		points    int
	}{
		{"default range", 0.5, 2, 72},
		{"narrow range", 1.0, 1.5, 29},
		{"whole slider", 0, 2.5, 147},
		{"empty range", 1.0, 1.0, 0},
		{"inverted range", 2, 0.5, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			figure, err := Update(data, test.low, test.high)
			require.NoError(t, err)
			assert.Equal(t, test.points, figure.Points())
			for _, trace := range figure.Data {
				for i, width := range trace.Z {
					assert.True(t, width > test.low && width < test.high)
					assert.Equal(t, width, trace.CustomData[i][0])
				}
			}
		})
	}
}

func TestUpdateColorsBySpecies(t *testing.T) {
	figure, err := Update(dataset.Iris(), 0.5, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, figure.TraceNames())
	for _, trace := range figure.Data {
		assert.Equal(t, "scatter3d", trace.Type)
		assert.Contains(t, trace.HoverTemplate, "petal_width=%{customdata[0]}")
	}
}

func TestDescriptor(t *testing.T) {
	d := Descriptor(dataset.Iris())
	require.NoError(t, d.Validate())
	assert.Equal(t, "scatter-plot-demo", d.Path)

	value, err := d.Default(SliderID)
	require.NoError(t, err)

	figure, err := d.Callbacks[SliderID].Update(value)
	require.NoError(t, err)
	assert.Equal(t, 72, figure.Points())

	_, err = d.Callbacks[SliderID].Update(json.RawMessage(`["Asia"]`))
	assert.Equal(t, page.ErrBadControlValue, errors.Cause(err))
}

func TestDescriptorSnapsValuesToSlider(t *testing.T) {
	update := Descriptor(dataset.Iris()).Callbacks[SliderID].Update

	tests := []struct {
		value  string
		points int
	}{
		// (0.45, 2.04) would keep 79 samples, the snapped (0.5, 2) keeps 72.
		{`[0.45, 2.04]`, 72},
		// Out of bounds handles are clamped to (0, 2.5).
		{`[-1, 9]`, 147},
		{`[1.0, 1.5]`, 29},
		{`[1.52, 1.48]`, 0},
	}
	for _, test := range tests {
		figure, err := update(json.RawMessage(test.value))
		require.NoError(t, err)
		assert.Equal(t, test.points, figure.Points(), "value %s", test.value)
	}
}
