package dataset

import (
	"math"

	"github.com/pkg/errors"
)

// Kind is the type of values stored in a column.
type Kind int

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota
	// Categorical columns hold string labels.
	Categorical
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// Column is a named, typed vector of values.
type Column struct {
	Name    string
	Kind    Kind
	numbers []float64
	labels  []string
}

// NumericColumn creates a numeric column. Values are copied.
func NumericColumn(name string, values []float64) Column {
	return Column{Name: name, Kind: Numeric, numbers: append([]float64(nil), values...)}
}

// CategoricalColumn creates a categorical column. Values are copied.
func CategoricalColumn(name string, values []string) Column {
	return Column{Name: name, Kind: Categorical, labels: append([]string(nil), values...)}
}

func (c Column) len() int {
	if c.Kind == Numeric {
		return len(c.numbers)
	}
	return len(c.labels)
}

// Table is an immutable in-memory table. All methods are safe for concurrent use.
type Table struct {
	name    string
	columns []Column
	index   map[string]int
	rows    int
}

// NewTable builds a table from columns of equal length.
func NewTable(name string, columns ...Column) (*Table, error) {
	t := &Table{name: name, index: map[string]int{}}
	for i, column := range columns {
		if _, ok := t.index[column.Name]; ok {
			return nil, errors.Errorf("table %q: duplicate column %q", name, column.Name)
		}
		if i == 0 {
			t.rows = column.len()
		} else if column.len() != t.rows {
			return nil, errors.Errorf("table %q: column %q has %d rows, expected %d",
				name, column.Name, column.len(), t.rows)
		}
		t.index[column.Name] = i
		t.columns = append(t.columns, column)
	}
	return t, nil
}

// Name returns name of the table.
func (t *Table) Name() string { return t.name }

// Len returns number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, column := range t.columns {
		names[i] = column.Name
	}
	return names
}

func (t *Table) column(name string, kind Kind) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, errors.Errorf("table %q has no column %q", t.name, name)
	}
	if t.columns[i].Kind != kind {
		return Column{}, errors.Errorf("column %q of table %q is %s, not %s", name, t.name, t.columns[i].Kind, kind)
	}
	return t.columns[i], nil
}

// Kind returns kind of named column.
func (t *Table) Kind(name string) (Kind, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, errors.Errorf("table %q has no column %q", t.name, name)
	}
	return t.columns[i].Kind, nil
}

// Floats returns a copy of numeric column values.
func (t *Table) Floats(name string) ([]float64, error) {
	column, err := t.column(name, Numeric)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), column.numbers...), nil
}

// Strings returns a copy of categorical column values.
func (t *Table) Strings(name string) ([]string, error) {
	column, err := t.column(name, Categorical)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), column.labels...), nil
}

// Unique returns distinct values of categorical column in order of first appearance.
func (t *Table) Unique(name string) ([]string, error) {
	column, err := t.column(name, Categorical)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	unique := []string{}
	for _, label := range column.labels {
		if !seen[label] {
			seen[label] = true
			unique = append(unique, label)
		}
	}
	return unique, nil
}

// Row is a read-only view of a single row used by filter predicates.
type Row struct {
	table *Table
	i     int
}

// Float returns numeric value of the column, NaN when the column is missing or not numeric.
func (r Row) Float(name string) float64 {
	i, ok := r.table.index[name]
	if !ok || r.table.columns[i].Kind != Numeric {
		return math.NaN()
	}
	return r.table.columns[i].numbers[r.i]
}

// String returns label of the column, empty when the column is missing or not categorical.
func (r Row) String(name string) string {
	i, ok := r.table.index[name]
	if !ok || r.table.columns[i].Kind != Categorical {
		return ""
	}
	return r.table.columns[i].labels[r.i]
}

// Predicate decides whether a row is kept by Filter.
type Predicate func(Row) bool

// Filter returns new table with rows for which keep returns true.
func (t *Table) Filter(keep Predicate) *Table {
	selected := []int{}
	for i := 0; i < t.rows; i++ {
		if keep(Row{table: t, i: i}) {
			selected = append(selected, i)
		}
	}
	return t.take(selected)
}

func (t *Table) take(rows []int) *Table {
	out := &Table{name: t.name, index: t.index, rows: len(rows)}
	for _, column := range t.columns {
		picked := Column{Name: column.Name, Kind: column.Kind}
		if column.Kind == Numeric {
			picked.numbers = make([]float64, len(rows))
			for j, i := range rows {
				picked.numbers[j] = column.numbers[i]
			}
		} else {
			picked.labels = make([]string, len(rows))
			for j, i := range rows {
				picked.labels[j] = column.labels[i]
			}
		}
		out.columns = append(out.columns, picked)
	}
	return out
}

// Group is a subset of rows sharing one label.
type Group struct {
	Key   string
	Table *Table
}

// GroupBy splits the table by a categorical column. Groups keep order of first appearance.
func (t *Table) GroupBy(name string) ([]Group, error) {
	column, err := t.column(name, Categorical)
	if err != nil {
		return nil, err
	}
	order := []string{}
	rows := map[string][]int{}
	for i, label := range column.labels {
		if _, ok := rows[label]; !ok {
			order = append(order, label)
		}
		rows[label] = append(rows[label], i)
	}
	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{Key: key, Table: t.take(rows[key])})
	}
	return groups, nil
}

// In keeps rows whose categorical column value is one of values.
func In(name string, values ...string) Predicate {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}
	return func(r Row) bool { return set[r.String(name)] }
}

// Between keeps rows with low < value < high. Bounds are excluded.
func Between(name string, low, high float64) Predicate {
	return func(r Row) bool {
		value := r.Float(name)
		return value > low && value < high
	}
}
