package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrBadHeader = errors.New("storage: csv header does not match inputs")

// ReadRowsCSV reads argument rows for inputs named by names. The first row is
// a header; columns may appear in any order and extra columns are ignored.
func ReadRowsCSV(r io.Reader, names []string) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
		}
		return nil, err
	}

	cols := make([]int, len(names))
	for i, name := range names {
		cols[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				cols[i] = j
				break
			}
		}
		if cols[i] < 0 {
			return nil, fmt.Errorf("missing column %q: %w", name, ErrBadHeader)
		}
	}

	var rows [][]float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(names))
		for i, c := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, names[i], err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteResultsCSV writes one row per result: the inputs then the output,
// named after the formula.
func WriteResultsCSV(w io.Writer, names []string, output string, args [][]float64, values []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string(nil), names...), output)); err != nil {
		return err
	}
	for i, row := range args {
		rec := make([]string, 0, len(row)+1)
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rec = append(rec, strconv.FormatFloat(values[i], 'g', -1, 64))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
