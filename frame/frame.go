// Package frame provides the tabular dataset consumed by the chart renderer:
// named numeric columns over a gonum matrix, rows being records.
package frame

import (
	"github.com/YuminosukeSato/censusviz/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Frame is an immutable table of float64 columns addressed by name.
type Frame struct {
	columns []string
	index   map[string]int
	data    *mat.Dense
}

// New builds a Frame over data, one name per matrix column.
// The matrix is copied so later changes by the caller are not observed.
func New(columns []string, data mat.Matrix) (*Frame, error) {
	if data == nil {
		return nil, errors.NewValueError("frame.New", "nil data matrix")
	}
	_, c := data.Dims()
	if len(columns) != c {
		return nil, errors.NewDimensionError("frame.New", c, len(columns), 1)
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, errors.NewValidationError("columns", "duplicate column name", name)
		}
		index[name] = i
	}

	return &Frame{
		columns: append([]string(nil), columns...),
		index:   index,
		data:    mat.DenseCopyOf(data),
	}, nil
}

// FromColumns builds a Frame from column-major values: values[j] holds
// every record of column j. All columns must have the same length.
func FromColumns(columns []string, values [][]float64) (*Frame, error) {
	if len(columns) != len(values) {
		return nil, errors.NewDimensionError("frame.FromColumns", len(columns), len(values), 1)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "frame.FromColumns")
	}

	rows := len(values[0])
	data := mat.NewDense(rows, len(values), nil)
	for j, col := range values {
		if len(col) != rows {
			return nil, errors.NewDimensionError("frame.FromColumns", rows, len(col), 0)
		}
		data.SetCol(j, col)
	}
	return New(columns, data)
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Dims returns the number of records and columns.
func (f *Frame) Dims() (rows, cols int) {
	return f.data.Dims()
}

// Has reports whether the frame has a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, errors.NewMissingColumnError("frame.Column", name, f.Columns())
	}
	return mat.Col(nil, j, f.data), nil
}

// Matrix returns a read-only view of the underlying data.
func (f *Frame) Matrix() mat.Matrix {
	return f.data
}
