package layout

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("When rendering a layout", t, func() {
		html, err := HTML(sampleTree())
		So(err, ShouldBeNil)
		out := string(html)

		Convey("The container should carry its style", func() {
			So(out, ShouldStartWith, `<div style="width: 80%">`)
		})

		Convey("Headings should use their level", func() {
			So(out, ShouldContainSubstring, `<h4 class="display-6">Title</h4>`)
		})

		Convey("Graphs should be empty placeholders", func() {
			So(out, ShouldContainSubstring, `<div id="graph" class="dash-graph" data-graph="graph"></div>`)
		})

		Convey("Checklist should check default options only", func() {
			So(out, ShouldContainSubstring, `value="b" checked>`)
			So(out, ShouldContainSubstring, `value="a">`)
			So(strings.Count(out, "form-check-inline"), ShouldEqual, 3)
		})

		Convey("Range slider should render two handles and its marks", func() {
			So(strings.Count(out, `type="range"`), ShouldEqual, 2)
			So(out, ShouldContainSubstring, `value="0.5"`)
			So(out, ShouldContainSubstring, `<datalist id="slider-marks">`)
			So(out, ShouldContainSubstring, `<option value="0" label="0"></option>`)
			So(out, ShouldContainSubstring, `<option value="0.3"></option>`)
			So(out, ShouldContainSubstring, `<option value="2.5" label="2.5"></option></datalist></div>`)
		})

		Convey("Slider ticks should be listed once per step", func() {
			So(strings.Count(out, "<option "), ShouldEqual, 26)
			So(strings.Count(out, "label="), ShouldEqual, 2)
		})
	})

	Convey("Text should be escaped", t, func() {
		html, err := HTML(P("<script>"))
		So(err, ShouldBeNil)
		So(string(html), ShouldEqual, "<p>&lt;script&gt;</p>")
	})

	Convey("Navigation links should be rendered inside nav", t, func() {
		html, err := HTML(Nav(Link("", "Home", "/dashapp/"), Link("nav-a", "A", "/dashapp/a")))
		So(err, ShouldBeNil)
		So(string(html), ShouldEqual, `<nav class="navbar navbar-expand navbar-light bg-light">`+
			`<a class="nav-link" href="/dashapp/">Home</a>`+
			`<a class="nav-link" id="nav-a" href="/dashapp/a">A</a></nav>`)
	})
}
