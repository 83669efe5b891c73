// Package models defines data structures shared by the loader, the checks and the report.
package models

// Kind is the inferred type of a column.
type Kind string

const (
	KindText  Kind = "text"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindDate  Kind = "date"
)

// IsNumeric reports whether the kind holds numbers.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// SourceFormat is the container the dataset was loaded from.
type SourceFormat string

const (
	FormatDelimited   SourceFormat = "delimited"
	FormatSpreadsheet SourceFormat = "spreadsheet"
)

// Cell is a single value as it appeared in the file.
type Cell struct {
	// Raw is the textual representation of the value.
	Raw string `json:"raw"`
	// Null is true when the cell was absent or empty.
	Null bool `json:"null,omitempty"`
}

// Column is a named, typed sequence of cells.
type Column struct {
	// Name is the header text. It may be blank and is not guaranteed unique.
	Name string `json:"name"`
	// Null is true when the header cell itself was missing.
	Null bool `json:"null,omitempty"`
	// Kind is the inferred type of the non-null cells.
	Kind Kind `json:"kind"`
	// Cells holds one entry per data row.
	Cells []Cell `json:"cells"`
}

// Values returns the raw text of every non-null cell.
func (c Column) Values() []string {
	out := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Null {
			out = append(out, cell.Raw)
		}
	}
	return out
}

// Source describes the container a dataset was read from.
type Source struct {
	// Format is the container kind.
	Format SourceFormat `json:"format"`
	// ValidUTF8 reports whether delimited input decoded as UTF-8.
	ValidUTF8 bool `json:"valid_utf8"`
	// Encoding is the encoding actually used to decode delimited input.
	Encoding string `json:"encoding,omitempty"`
	// Delimiter is the detected field separator for delimited input.
	Delimiter rune `json:"delimiter,omitempty"`
	// Sheets is the number of sheets in a spreadsheet container.
	Sheets int `json:"sheets,omitempty"`
	// DataSheets is the number of sheets holding at least one value.
	DataSheets int `json:"data_sheets,omitempty"`
	// LoadError is set when the content could not be parsed at all.
	LoadError string `json:"load_error,omitempty"`
}

// Dataset is an in-memory table with ordered named columns.
// All columns carry the same number of cells.
type Dataset struct {
	Columns []Column `json:"columns"`
	Source  Source   `json:"source"`
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	if d == nil || len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// IsEmpty reports whether the dataset has no data rows.
func (d *Dataset) IsEmpty() bool {
	return d.RowCount() == 0
}

// Names returns the column names in order, including blank ones.
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}
