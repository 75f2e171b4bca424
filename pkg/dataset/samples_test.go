package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapminder(t *testing.T) {
	table := Gapminder()
	require.NotNil(t, table)
	assert.Same(t, table, Gapminder())

	continents, err := table.Unique(Continent)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Asia", "Europe", "Africa", "Americas", "Oceania"}, continents)

	oceania := table.Filter(In(Continent, "Oceania"))
	countries, err := oceania.Unique(Country)
	require.NoError(t, err)
	assert.Equal(t, []string{"Australia", "New Zealand"}, countries)
	assert.Equal(t, 24, oceania.Len())

	years, err := table.Filter(In(Country, "Japan")).Floats(Year)
	require.NoError(t, err)
	assert.Len(t, years, 12)
	assert.Equal(t, 1952.0, years[0])
	assert.Equal(t, 2007.0, years[11])
}

func TestIris(t *testing.T) {
	table := Iris()
	require.NotNil(t, table)
	assert.Equal(t, 150, table.Len())

	groups, err := table.GroupBy(Species)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	for i, name := range []string{"setosa", "versicolor", "virginica"} {
		assert.Equal(t, name, groups[i].Key)
		assert.Equal(t, 50, groups[i].Table.Len())
	}

	widths, err := table.Floats(PetalWidth)
	require.NoError(t, err)
	min, max := widths[0], widths[0]
	for _, w := range widths {
		if w < min {
			min = w
		}
		if w > max {
			max = w
		}
	}
	assert.Equal(t, 0.1, min)
	assert.Equal(t, 2.5, max)

	assert.Equal(t, 72, table.Filter(Between(PetalWidth, 0.5, 2)).Len())
}
