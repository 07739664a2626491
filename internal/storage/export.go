package storage

import (
	"encoding/json"
	"io"
	"math"
)

type ExportData struct {
	Record
	Xs []Number `json:"xs,omitempty"`
	Ys []Number `json:"ys,omitempty"`
}

// ExportJSON writes a record, with its series for sweeps, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, id string) error {
	rec, err := s.Load(id)
	if err != nil {
		return err
	}

	data := ExportData{Record: *rec}
	if rec.Kind == KindSweep {
		xs, ys, err := s.LoadSeries(id)
		if err != nil {
			return err
		}
		data.Xs = toNumbers(xs)
		data.Ys = toNumbers(ys)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the series of a sweep record, or a single row for an
// evaluation.
func (s *Store) ExportCSV(w io.Writer, id string) error {
	rec, err := s.Load(id)
	if err != nil {
		return err
	}
	if rec.Kind == KindSweep {
		xs, ys, err := s.LoadSeries(id)
		if err != nil {
			return err
		}
		return WriteSeriesCSV(w, rec.Vary, rec.Formula, xs, ys)
	}

	names := make([]string, 0, len(rec.Inputs)+1)
	values := make([]float64, 0, len(rec.Inputs)+1)
	for _, in := range rec.Inputs {
		names = append(names, in.Name)
		values = append(values, float64(in.Value))
	}
	names = append(names, rec.Formula)
	value := math.NaN()
	if rec.Value != nil {
		value = float64(*rec.Value)
	}
	values = append(values, value)
	return WriteRowCSV(w, names, values)
}

func toNumbers(fs []float64) []Number {
	out := make([]Number, len(fs))
	for i, f := range fs {
		out[i] = Number(f)
	}
	return out
}
