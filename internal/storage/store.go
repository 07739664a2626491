package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/dimcalc/internal/calc"
	"github.com/san-kum/dimcalc/internal/logger"
)

const (
	KindEval  = "eval"
	KindSweep = "sweep"

	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
	newID   func() string
	log     *logger.Logger
}

func New(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		now:     time.Now,
		newID:   uuid.NewString,
		log:     logger.Global().Named("storage"),
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type InputValue struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Value    Number `json:"value"`
}

// Record is the metadata saved for one evaluation or sweep.
type Record struct {
	ID        string       `json:"id"`
	Kind      string       `json:"kind"`
	Formula   string       `json:"formula"`
	Timestamp time.Time    `json:"timestamp"`
	Inputs    []InputValue `json:"inputs"`
	Unit      string       `json:"unit"`
	Value     *Number      `json:"value,omitempty"`
	Vary      string       `json:"vary,omitempty"`
	From      *Number      `json:"from,omitempty"`
	To        *Number      `json:"to,omitempty"`
	Samples   int          `json:"samples,omitempty"`
}

func (s *Store) SaveResult(res calc.Result) (string, error) {
	v := Number(res.Value)
	rec := s.newRecord(KindEval, res.Formula, res.Unit, res.Inputs, res.Args)
	rec.Value = &v

	if err := s.write(rec, nil, nil); err != nil {
		return "", err
	}
	s.log.Info("saved evaluation", "id", rec.ID, "formula", rec.Formula)
	return rec.ID, nil
}

func (s *Store) SaveSweep(res *calc.SweepResult) (string, error) {
	if len(res.Xs) == 0 {
		return "", fmt.Errorf("sweep %s: %w", res.Formula, ErrNoSeries)
	}
	rec := s.newRecord(KindSweep, res.Formula, res.Unit, res.Inputs, res.Base)
	from, to := Number(res.Xs[0]), Number(res.Xs[len(res.Xs)-1])
	rec.Vary = res.Input.Name
	rec.From, rec.To = &from, &to
	rec.Samples = len(res.Xs)

	if err := s.write(rec, res.Xs, res.Ys); err != nil {
		return "", err
	}
	s.log.Info("saved sweep", "id", rec.ID, "formula", rec.Formula, "samples", rec.Samples)
	return rec.ID, nil
}

func (s *Store) newRecord(kind, formula, unit string, inputs []calc.Input, args []float64) Record {
	rec := Record{
		ID:        s.newID(),
		Kind:      kind,
		Formula:   formula,
		Timestamp: s.now().UTC(),
		Unit:      unit,
		Inputs:    make([]InputValue, 0, len(inputs)),
	}
	for i, in := range inputs {
		iv := InputValue{Name: in.Name, Quantity: in.Quantity.String(), Unit: in.Quantity.Unit()}
		if i < len(args) {
			iv.Value = Number(args[i])
		}
		rec.Inputs = append(rec.Inputs, iv)
	}
	return rec
}

// write stores rec and its series. A failed write leaves no record
// directory behind.
func (s *Store) write(rec Record, xs, ys []float64) (err error) {
	dir := filepath.Join(s.baseDir, rec.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		metaFile.Close()
		return fmt.Errorf("encode %s: %w", rec.ID, err)
	}
	if err := metaFile.Close(); err != nil {
		return err
	}

	if xs == nil {
		return nil
	}

	csvFile, err := os.Create(filepath.Join(dir, seriesFile))
	if err != nil {
		return err
	}
	if err := WriteSeriesCSV(csvFile, rec.Vary, "value", xs, ys); err != nil {
		csvFile.Close()
		return err
	}
	return csvFile.Close()
}

// WriteSeriesCSV writes a two column series with a header row.
func WriteSeriesCSV(w io.Writer, xName, yName string, xs, ys []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{xName, yName}); err != nil {
		return err
	}
	for i := range xs {
		row := []string{
			strconv.FormatFloat(xs[i], 'g', -1, 64),
			strconv.FormatFloat(ys[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRowCSV writes a header row of names and one row of values.
func WriteRowCSV(w io.Writer, names []string, values []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable record, newest first. Unreadable entries are
// skipped.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.readRecord(entry.Name())
		if err != nil {
			s.log.Debug("skipping entry", "name", entry.Name(), "error", err)
			continue
		}
		records = append(records, *rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (s *Store) Load(id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	rec, err := s.readRecord(id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (s *Store) readRecord(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &rec, nil
}

// LoadSeries returns the sweep samples of a record.
func (s *Store) LoadSeries(id string) (xs, ys []float64, err error) {
	rec, err := s.Load(id)
	if err != nil {
		return nil, nil, err
	}
	if rec.Kind != KindSweep {
		return nil, nil, fmt.Errorf("%s is an %s record: %w", id, rec.Kind, ErrNoSeries)
	}

	file, err := os.Open(filepath.Join(s.baseDir, id, seriesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read series %s: %w", id, err)
	}
	if len(rows) < 2 {
		return []float64{}, []float64{}, nil
	}

	xs = make([]float64, 0, len(rows)-1)
	ys = make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("series %s row %d: %w", id, i+1, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("series %s row %d: %w", id, i+1, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}
