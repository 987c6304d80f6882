package dataset

import (
	"godunn/domain/core"
)

// Table is an in-memory tabular dataset: a header row plus string records.
// Cell typing (numeric parsing, category ordering) is the consumer's concern.
type Table struct {
	Columns []string
	Records [][]string
}

// NewTable builds a table from a header and records.
func NewTable(columns []string, records [][]string) *Table {
	return &Table{Columns: columns, Records: records}
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, core.NewColumnNotFoundError(name)
}

// RowCount returns the number of data records.
func (t *Table) RowCount() int {
	return len(t.Records)
}

// Cell returns the value at (row, col), or "" when the record is ragged.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Records) {
		return ""
	}
	r := t.Records[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
