package dataset

import (
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func testTable() *Table {
	table, err := NewTable("test",
		CategoricalColumn("group", []string{"a", "b", "a", "c"}),
		NumericColumn("value", []float64{1, 2, 3, 4}),
	)
	if err != nil {
		panic(err)
	}
	return table
}

func TestNewTable(t *testing.T) {
	Convey("When building a table", t, func() {
		Convey("Columns of different length are rejected", func() {
			_, err := NewTable("bad",
				NumericColumn("a", []float64{1, 2}),
				NumericColumn("b", []float64{1}),
			)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `column "b" has 1 rows, expected 2`)
		})

		Convey("Duplicate column names are rejected", func() {
			_, err := NewTable("bad",
				NumericColumn("a", []float64{1}),
				CategoricalColumn("a", []string{"x"}),
			)
			So(err, ShouldNotBeNil)
		})

		Convey("Valid columns give a table", func() {
			table := testTable()
			So(table.Len(), ShouldEqual, 4)
			So(table.Columns(), ShouldResemble, []string{"group", "value"})
		})
	})
}

func TestTableAccess(t *testing.T) {
	Convey("Given a small table", t, func() {
		table := testTable()

		Convey("Typed accessors check column kind", func() {
			_, err := table.Floats("group")
			So(err, ShouldNotBeNil)
			_, err = table.Strings("value")
			So(err, ShouldNotBeNil)
			_, err = table.Floats("missing")
			So(err, ShouldNotBeNil)
		})

		Convey("Accessors return copies", func() {
			values, err := table.Floats("value")
			So(err, ShouldBeNil)
			values[0] = 100
			again, _ := table.Floats("value")
			So(again[0], ShouldEqual, 1.0)
		})

		Convey("Unique keeps order of first appearance", func() {
			unique, err := table.Unique("group")
			So(err, ShouldBeNil)
			So(unique, ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("Row accessors return zero values for wrong columns", func() {
			var row Row
			table.Filter(func(r Row) bool { row = r; return false })
			So(math.IsNaN(row.Float("group")), ShouldBeTrue)
			So(row.String("value"), ShouldEqual, "")
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Given a small table", t, func() {
		table := testTable()

		Convey("In keeps listed categories", func() {
			filtered := table.Filter(In("group", "a", "c"))
			values, _ := filtered.Floats("value")
			So(values, ShouldResemble, []float64{1, 3, 4})
		})

		Convey("In with no values keeps nothing", func() {
			So(table.Filter(In("group")).Len(), ShouldEqual, 0)
		})

		Convey("Between excludes both bounds", func() {
			filtered := table.Filter(Between("value", 1, 4))
			values, _ := filtered.Floats("value")
			So(values, ShouldResemble, []float64{2, 3})
		})

		Convey("Between with equal or inverted bounds keeps nothing", func() {
			So(table.Filter(Between("value", 2, 2)).Len(), ShouldEqual, 0)
			So(table.Filter(Between("value", 4, 1)).Len(), ShouldEqual, 0)
		})

		Convey("Filter does not modify the source table", func() {
			table.Filter(In("group", "b"))
			So(table.Len(), ShouldEqual, 4)
		})
	})
}

func TestGroupBy(t *testing.T) {
	Convey("GroupBy splits rows by label in order of first appearance", t, func() {
		groups, err := testTable().GroupBy("group")
		So(err, ShouldBeNil)
		So(len(groups), ShouldEqual, 3)
		So(groups[0].Key, ShouldEqual, "a")
		values, _ := groups[0].Table.Floats("value")
		So(values, ShouldResemble, []float64{1, 3})

		_, err = testTable().GroupBy("value")
		So(err, ShouldNotBeNil)
	})
}

func TestLoadCSV(t *testing.T) {
	Convey("When loading CSV", t, func() {
		Convey("Schema decides column kinds", func() {
			table, err := LoadCSV("t", strings.NewReader("name,score\nx,1.5\ny,2\n"), Schema{"score": Numeric})
			So(err, ShouldBeNil)
			scores, err := table.Floats("score")
			So(err, ShouldBeNil)
			So(scores, ShouldResemble, []float64{1.5, 2})
			names, err := table.Strings("name")
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"x", "y"})
		})

		Convey("Not parsable numbers are reported with line", func() {
			_, err := LoadCSV("t", strings.NewReader("score\n1\nabc\n"), Schema{"score": Numeric})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 3")
		})

		Convey("Empty input is an error", func() {
			_, err := LoadCSV("t", strings.NewReader(""), nil)
			So(err, ShouldNotBeNil)
		})
	})
}
