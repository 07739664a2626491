package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/dimcalc/internal/calc"
	"github.com/san-kum/dimcalc/internal/storage"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval_Positional(t *testing.T) {
	out, _, err := run(t, "", "eval", "force", "1000", "9.8", "-o", "json", "--data", t.TempDir())
	require.NoError(t, err)

	var res resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "force", res.Formula)
	assert.Equal(t, "N", res.Unit)
	assert.InDelta(t, 9.8, float64(res.Value), 1e-12)
	assert.Equal(t, storage.Number(1000), res.Inputs["mass"])
}

func TestEval_NamedInputs(t *testing.T) {
	out, _, err := run(t, "", "eval", "density", "--in", "mass=5000", "--in", "volume=2", "-o", "json", "--data", t.TempDir())
	require.NoError(t, err)

	var res resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 2500.0, float64(res.Value), 1e-9)
}

func TestEval_CSV(t *testing.T) {
	out, _, err := run(t, "", "eval", "kinetic-energy", "2000", "3", "-o", "csv", "--data", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "mass,speed,kinetic-energy\n2000,3,9\n", out)
}

func TestEval_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "", "eval", "warp-speed", "--data", dir)
	assert.True(t, errors.Is(err, calc.ErrUnknownFormula))

	_, _, err = run(t, "", "eval", "force", "1", "2", "3", "--data", dir)
	assert.True(t, errors.Is(err, calc.ErrArity))

	_, _, err = run(t, "", "eval", "force", "1000", "--data", dir)
	assert.True(t, errors.Is(err, calc.ErrMissingInput))

	_, _, err = run(t, "", "eval", "force", "--in", "mass", "--data", dir)
	assert.Error(t, err)

	_, _, err = run(t, "", "eval", "force", "1", "2", "--preset", "nope", "--data", dir)
	assert.Error(t, err)
}

func TestEval_SaveAndShow(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := run(t, "", "eval", "voltage", "2", "5", "--save", "--data", dir)
	require.NoError(t, err)
	require.Contains(t, stderr, "saved: ")
	id := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(stderr), "saved: "))

	out, _, err := run(t, "", "show", id, "-o", "json", "--data", dir)
	require.NoError(t, err)
	var res resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 10.0, float64(res.Value), 1e-12)

	out, _, err = run(t, "", "history", "-o", "json", "--data", dir)
	require.NoError(t, err)
	var records []storage.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
}

func TestSweep_CSVAndSave(t *testing.T) {
	dir := t.TempDir()

	out, stderr, err := run(t, "", "sweep", "force", "--in", "acceleration=9.8", "--vary", "mass",
		"--from", "0", "--to", "1000", "--steps", "3", "-o", "csv", "--save", "--data", dir)
	require.NoError(t, err)
	assert.Equal(t, "mass,force\n0,0\n500,4.9\n1000,9.8\n", out)
	assert.Contains(t, stderr, "saved: ")

	records, err := storage.New(dir).List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, storage.KindSweep, records[0].Kind)
}

func TestSweep_UnknownInput(t *testing.T) {
	_, _, err := run(t, "", "sweep", "force", "--vary", "colour", "--data", t.TempDir())
	assert.True(t, errors.Is(err, calc.ErrUnknownInput))
}

func TestBatch_Stdin(t *testing.T) {
	out, _, err := run(t, "speed,mass\n3,2000\n0,1000\n", "batch", "kinetic-energy", "-w", "2", "--data", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "mass,speed,kinetic-energy\n2000,3,9\n1000,0,0\n", out)
}

func TestBatch_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte("voltage,resistance\n10,5\n"), 0o644))

	out, _, err := run(t, "", "batch", "current", path, "-o", "json", "--data", t.TempDir())
	require.NoError(t, err)

	var list []resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.InDelta(t, 2.0, float64(list[0].Value), 1e-12)
}

func TestFormulas_JSON(t *testing.T) {
	out, _, err := run(t, "", "formulas", "-o", "json", "--data", t.TempDir())
	require.NoError(t, err)

	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 28)
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "", "presets", "density", "--data", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "water")

	_, _, err = run(t, "", "presets", "nothing", "--data", t.TempDir())
	assert.True(t, errors.Is(err, calc.ErrUnknownFormula))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dimcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\nprecision: 4\n"), 0o644))

	out, _, err := run(t, "", "eval", "area", "2", "3", "--config", path, "--data", dir)
	require.NoError(t, err)
	assert.Equal(t, "length,width,area\n2,3,6\n", out)

	_, _, err = run(t, "", "eval", "area", "2", "3", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEval_PresetWithOverride(t *testing.T) {
	out, _, err := run(t, "", "eval", "density", "--preset", "water", "--in", "volume=2", "-o", "json", "--data", t.TempDir())
	require.NoError(t, err)

	var res resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 500.0, float64(res.Value), 1e-9)
}
