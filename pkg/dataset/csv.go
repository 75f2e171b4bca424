package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Schema maps column names to their kinds. Columns missing in schema are categorical.
type Schema map[string]Kind

func (s Schema) kindOf(name string) Kind {
	if kind, ok := s[name]; ok {
		return kind
	}
	return Categorical
}

// LoadCSV reads a table from CSV with a header row.
func LoadCSV(name string, r io.Reader, schema Schema) (*Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "reading header of %q", name)
	}

	columns := make([]Column, len(header))
	for i, columnName := range header {
		columns[i] = Column{Name: columnName, Kind: schema.kindOf(columnName)}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %q", name)
		}
		for i, value := range record {
			column := &columns[i]
			if column.Kind == Categorical {
				column.labels = append(column.labels, value)
				continue
			}
			number, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%q line %d column %q", name, line, column.Name)
			}
			column.numbers = append(column.numbers, number)
		}
	}
	return NewTable(name, columns...)
}
