package xvg

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table holds one dataset from an XVG file: the numeric matrix plus the
// metadata declared by the header directives.
//
// The matrix rows are the data rows in file order, the matrix columns the
// whitespace-separated fields in file order. Column 0 is conventionally the
// independent variable (e.g. time) and is unnamed; 'sN legend' directives
// name data column N+1.
type Table struct {
	title   string
	xlabel  string
	ylabel  string
	columns map[string]int
	data    *mat.Dense
}

// XVG is the historical name of the dataset type, kept as an alias.
type XVG = Table

// NewTable creates an empty table. Call Parse, or use one of the From
// constructors, to populate it.
func NewTable() *Table {
	return &Table{columns: make(map[string]int)}
}

// Parse consumes lines and populates the table. Reading stops at the first
// '//' dataset separator or at the end of the sequence; only the first
// dataset is read.
//
// Parsing is all-or-nothing: on any error the matrix is left unset. Parse
// is meant to be called once per table; a second call replaces the matrix
// but metadata from the earlier call is kept, with repeated directives
// overwriting earlier values.
func (t *Table) Parse(lines iter.Seq[string]) error {
	var rows [][]string

loop:
	for line := range lines {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, "//"):
			break loop
		case strings.HasPrefix(line, "@"):
			if err := t.applyDirective(strings.TrimSpace(line[1:])); err != nil {
				return err
			}
		case strings.HasPrefix(line, "#"):
			// comment
		default:
			fields := strings.Fields(line)
			if len(fields) > 0 {
				rows = append(rows, fields)
			}
		}
	}

	return t.finalize(rows)
}

// finalize converts the accumulated rows into the numeric matrix. The
// matrix is only published when every field of every row converts.
func (t *Table) finalize(rows [][]string) error {
	if len(rows) == 0 {
		t.data = nil
		return nil
	}

	cols := len(rows[0])
	backing := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d fields, row 0 has %d", ErrRaggedRow, i, len(row), cols)
		}
		for _, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return fmt.Errorf("%w: row %d field %q", ErrInvalidNumber, i, field)
			}
			backing = append(backing, v)
		}
	}

	t.data = mat.NewDense(len(rows), cols, backing)

	return nil
}

// Title returns the dataset title, or an empty string if the input had no
// title directive.
func (t *Table) Title() string { return t.title }

// XLabel returns the X axis label declared by the xaxis directive.
func (t *Table) XLabel() string { return t.xlabel }

// YLabel returns the Y axis label declared by the yaxis directive.
func (t *Table) YLabel() string { return t.ylabel }

// SetTitle sets the dataset title. Mostly useful from custom directive
// handlers.
func (t *Table) SetTitle(title string) { t.title = title }

// SetXLabel sets the X axis label.
func (t *Table) SetXLabel(label string) { t.xlabel = label }

// SetYLabel sets the Y axis label.
func (t *Table) SetYLabel(label string) { t.ylabel = label }

// NameColumn registers name for the data column at index. Registered
// indices must be non-negative; they need not be contiguous, gaps stay
// unnamed.
func (t *Table) NameColumn(name string, index int) {
	if index < 0 {
		return
	}
	t.columns[name] = index
}

// Columns returns the registered column names ordered by column position,
// with empty-string placeholders for unnamed positions. The slice length is
// one past the highest registered index, which may be shorter than the
// matrix width. It is nil when no name was registered.
func (t *Table) Columns() []string {
	if len(t.columns) == 0 {
		return nil
	}

	highest := 0
	for _, idx := range t.columns {
		if idx > highest {
			highest = idx
		}
	}

	names := make([]string, highest+1)
	for _, name := range slices.Sorted(maps.Keys(t.columns)) {
		names[t.columns[name]] = name
	}

	return names
}

// Column returns the column registered under name as a vector view backed
// by the matrix data; changes to the matrix show through the view. It
// returns ErrUnknownColumn when the name was never registered and ErrNoData
// when no data rows were parsed.
func (t *Table) Column(name string) (mat.Vector, error) {
	j, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	return t.ColumnAt(j)
}

// ColumnAt returns the column at index j as a vector view backed by the
// matrix data.
func (t *Table) ColumnAt(j int) (mat.Vector, error) {
	if t.data == nil {
		return nil, ErrNoData
	}

	_, c := t.data.Dims()
	if j < 0 || j >= c {
		return nil, fmt.Errorf("%w: index %d, matrix has %d columns", ErrColumnOutOfRange, j, c)
	}

	return t.data.ColView(j), nil
}

// Data returns the underlying matrix for direct gonum indexing, slicing and
// aggregation. It is nil when no data rows were parsed; callers must treat
// that as the empty dataset.
func (t *Table) Data() *mat.Dense { return t.data }

// Dims returns the matrix dimensions, (0, 0) when no data rows were parsed.
func (t *Table) Dims() (r, c int) {
	if t.data == nil {
		return 0, 0
	}

	return t.data.Dims()
}

// At returns the matrix element at row i, column j. Like the matrix itself
// it panics when the indices are out of range or no data was parsed.
func (t *Table) At(i, j int) float64 { return t.data.At(i, j) }

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 {
	return mat.Row(nil, i, t.data)
}
