package dataset

import (
	"bytes"
	"embed"
	"sync"

	"github.com/pkg/errors"
)

// Column names of the life expectancy sample.
const (
	Country   = "country"
	Continent = "continent"
	Year      = "year"
	LifeExp   = "lifeExp"
	ISOAlpha  = "iso_alpha"
)

// Column names of the iris sample.
const (
	SepalLength = "sepal_length"
	SepalWidth  = "sepal_width"
	PetalLength = "petal_length"
	PetalWidth  = "petal_width"
	Species     = "species"
	SpeciesID   = "species_id"
)

//go:embed data/*.csv
var samples embed.FS

var (
	gapminderOnce sync.Once
	gapminder     *Table
	irisOnce      sync.Once
	iris          *Table
)

// Gapminder returns life expectancy per country and year (1952-2007, every 5 years).
func Gapminder() *Table {
	gapminderOnce.Do(func() {
		gapminder = mustLoad("gapminder", "data/gapminder.csv", Schema{
			Country:   Categorical,
			Continent: Categorical,
			Year:      Numeric,
			LifeExp:   Numeric,
			ISOAlpha:  Categorical,
		})
	})
	return gapminder
}

// Iris returns Fisher's iris flower measurements, 50 samples of each species.
func Iris() *Table {
	irisOnce.Do(func() {
		iris = mustLoad("iris", "data/iris.csv", Schema{
			SepalLength: Numeric,
			SepalWidth:  Numeric,
			PetalLength: Numeric,
			PetalWidth:  Numeric,
			Species:     Categorical,
			SpeciesID:   Numeric,
		})
	})
	return iris
}

// mustLoad panics since embedded samples are part of the binary.
func mustLoad(name, path string, schema Schema) *Table {
	raw, err := samples.ReadFile(path)
	if err != nil {
		panic(errors.Wrapf(err, "embedded sample %q missing", path))
	}
	table, err := LoadCSV(name, bytes.NewReader(raw), schema)
	if err != nil {
		panic(errors.Wrapf(err, "embedded sample %q is broken", path))
	}
	return table
}
