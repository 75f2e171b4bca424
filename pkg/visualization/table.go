// Package visualization prints startup reports on the terminal.
package visualization

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
// Every row needs one cell per header.
func NewTable(headers []string, data [][]string) (*Table, error) {
	for i, row := range data {
		if len(row) != len(headers) {
			return nil, errors.Errorf("row %d has %d cells, expected %d", i, len(row), len(headers))
		}
	}
	return &Table{
		headers: headers,
		data:    data,
	}, nil
}

// Draw writes the table with headers and data rows to w.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	output.SetAutoWrapText(false)
	output.AppendBulk(t.data)
	output.Render()
}
