// Package visualization renders sweep results on the console: a summary
// table per cell, the collision series against table size or input size, a
// bucket occupancy histogram, and a CSV export for external plotting.
package visualization

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a model for tabular data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates a new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers: headers,
		data:    data,
	}
}

// Draw renders the table with its headers and data rows to the writer.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	for _, row := range t.data {
		output.Append(row)
	}
	output.Render()
}
