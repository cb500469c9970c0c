package frame

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ReadCSV reads a Frame from comma separated text. The first record holds
// the column names; every following cell must parse as a float64.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(errors.ErrEmptyData, "frame.ReadCSV")
	}
	if err != nil {
		return nil, errors.Wrap(err, "frame.ReadCSV: header")
	}
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	var values []float64
	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "frame.ReadCSV: record %d", rows+1)
		}
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.NewValidationError(columns[j], "non-numeric cell at record "+strconv.Itoa(rows+1), cell)
			}
			values = append(values, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "frame.ReadCSV")
	}

	return New(columns, mat.NewDense(rows, len(columns), values))
}
