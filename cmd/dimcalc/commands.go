package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/dimcalc/internal/calc"
	"github.com/san-kum/dimcalc/internal/config"
	"github.com/san-kum/dimcalc/internal/logger"
	"github.com/san-kum/dimcalc/internal/storage"
	"github.com/san-kum/dimcalc/internal/viz"
)

func (a *app) listFormulas(cmd *cobra.Command, args []string) error {
	formulas := a.registry.List()
	out := cmd.OutOrStdout()

	switch a.cfg.Format {
	case "json":
		type formulaJSON struct {
			Name        string            `json:"name"`
			Description string            `json:"description"`
			Inputs      map[string]string `json:"inputs"`
			Output      string            `json:"output"`
			Unit        string            `json:"unit"`
		}
		list := make([]formulaJSON, 0, len(formulas))
		for _, f := range formulas {
			inputs := make(map[string]string, len(f.Inputs))
			for _, in := range f.Inputs {
				inputs[in.Name] = in.Quantity.Unit()
			}
			list = append(list, formulaJSON{f.Name, f.Description, inputs, f.Output.String(), f.OutputUnit()})
		}
		return writeJSON(out, list)
	default:
		_, err := fmt.Fprintln(out, viz.FormulaTable(formulas))
		return err
	}
}

func (a *app) listPresets(cmd *cobra.Command, args []string) error {
	if _, err := a.registry.Get(args[0]); err != nil {
		return err
	}
	names := config.ListPresets(args[0])
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintf(out, "no presets for formula: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(out, "presets for %s:\n", args[0])
	for _, name := range names {
		p, _ := config.GetPreset(args[0], name)
		fmt.Fprintf(out, "  %-16s %s\n", name, p.Description)
	}
	return nil
}

// resolveInputs merges preset values, positional values and --in pairs, in
// increasing priority.
func (a *app) resolveInputs(f calc.Formula, positional []string) (map[string]float64, error) {
	named := make(map[string]float64, len(f.Inputs))

	if a.preset != "" {
		p, ok := config.GetPreset(f.Name, a.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets(f.Name))
		}
		for k, v := range p.Inputs {
			named[k] = v
		}
	}

	if len(positional) > len(f.Inputs) {
		return nil, fmt.Errorf("%s takes %d values, got %d: %w", f.Name, len(f.Inputs), len(positional), calc.ErrArity)
	}
	for i, raw := range positional {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &calc.InputError{Formula: f.Name, Input: f.Inputs[i].Name, Err: err}
		}
		named[f.Inputs[i].Name] = v
	}

	for _, pair := range a.inputs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("input %q: want name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &calc.InputError{Formula: f.Name, Input: name, Err: err}
		}
		named[strings.TrimSpace(name)] = v
	}
	return named, nil
}

func (a *app) evaluate(cmd *cobra.Command, args []string) error {
	f, err := a.registry.Get(args[0])
	if err != nil {
		return err
	}
	named, err := a.resolveInputs(f, args[1:])
	if err != nil {
		return err
	}
	values, err := f.ParseArgs(named)
	if err != nil {
		return err
	}
	res, err := f.Apply(values)
	if err != nil {
		return err
	}
	logger.Debug("evaluated", "formula", f.Name, "args", res.Args, "value", res.Value)

	if err := a.writeResult(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if !a.save {
		return nil
	}

	st := a.store()
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.SaveResult(res)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s\n", id)
	return nil
}

type resultJSON struct {
	Formula string                    `json:"formula"`
	Inputs  map[string]storage.Number `json:"inputs"`
	Value   storage.Number            `json:"value"`
	Unit    string                    `json:"unit"`
}

func toResultJSON(res calc.Result) resultJSON {
	inputs := make(map[string]storage.Number, len(res.Inputs))
	for i, in := range res.Inputs {
		inputs[in.Name] = storage.Number(res.Args[i])
	}
	return resultJSON{res.Formula, inputs, storage.Number(res.Value), res.Unit}
}

func (a *app) writeResult(w io.Writer, res calc.Result) error {
	switch a.cfg.Format {
	case "json":
		return writeJSON(w, toResultJSON(res))
	case "csv":
		names := make([]string, 0, len(res.Inputs)+1)
		for _, in := range res.Inputs {
			names = append(names, in.Name)
		}
		names = append(names, res.Formula)
		return storage.WriteRowCSV(w, names, append(append([]float64(nil), res.Args...), res.Value))
	default:
		_, err := fmt.Fprintln(w, viz.ResultTable(res, a.cfg.Precision))
		return err
	}
}

func (a *app) sweep(cmd *cobra.Command, args []string) error {
	f, err := a.registry.Get(args[0])
	if err != nil {
		return err
	}
	named, err := a.resolveInputs(f, nil)
	if err != nil {
		return err
	}
	if f.InputIndex(a.vary) < 0 {
		return &calc.InputError{Formula: f.Name, Input: a.vary, Err: calc.ErrUnknownInput}
	}
	if _, ok := named[a.vary]; !ok {
		named[a.vary] = a.from
	}
	base, err := f.ParseArgs(named)
	if err != nil {
		return err
	}

	res, err := calc.Sweep(cmd.Context(), f, base, calc.SweepConfig{
		Vary:  a.vary,
		From:  a.from,
		To:    a.to,
		Steps: a.cfg.Sweep.Steps,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case "json":
		err = writeJSON(out, map[string]any{
			"formula": res.Formula,
			"vary":    res.Input.Name,
			"unit":    res.Unit,
			"xs":      numbers(res.Xs),
			"ys":      numbers(res.Ys),
		})
	case "csv":
		err = storage.WriteSeriesCSV(out, res.Input.Name, res.Formula, res.Xs, res.Ys)
	default:
		err = a.writePlot(out, res)
	}
	if err != nil {
		return err
	}

	if !a.save {
		return nil
	}
	st := a.store()
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.SaveSweep(res)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s\n", id)
	return nil
}

func (a *app) writePlot(w io.Writer, res *calc.SweepResult) error {
	graph, err := viz.PlotSweep(res, viz.PlotOptions{
		Width:  a.cfg.Sweep.Width,
		Height: a.cfg.Sweep.Height,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, graph)

	if lo, hi, ok := res.Range(); ok {
		fmt.Fprintf(w, "\n%s  %s .. %s\n", viz.Sparkline(res.Ys, a.cfg.Sweep.Width),
			viz.FormatValue(lo, res.Unit, a.cfg.Precision), viz.FormatValue(hi, res.Unit, a.cfg.Precision))
	}
	if !res.Finite() {
		fmt.Fprintln(w, viz.Warning.Render("some samples are not finite numbers"))
	}
	return nil
}

func (a *app) batch(cmd *cobra.Command, args []string) error {
	f, err := a.registry.Get(args[0])
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 2 && args[1] != "-" {
		file, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	names := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		names[i] = in.Name
	}
	rows, err := storage.ReadRowsCSV(r, names)
	if err != nil {
		return fmt.Errorf("batch %s: %w", f.Name, err)
	}

	results, err := calc.Batch(cmd.Context(), f, rows, a.workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.Format == "json" {
		list := make([]resultJSON, len(results))
		for i, res := range results {
			list[i] = toResultJSON(res)
		}
		return writeJSON(out, list)
	}
	values := make([]float64, len(results))
	for i, res := range results {
		values[i] = res.Value
	}
	return storage.WriteResultsCSV(out, names, f.Name, rows, values)
}

func (a *app) listHistory(cmd *cobra.Command, args []string) error {
	records, err := a.store().List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.cfg.Format == "json" {
		return writeJSON(out, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "no saved calculations")
		return nil
	}
	_, err = fmt.Fprintln(out, viz.RecordTable(records, a.cfg.Precision))
	return err
}

func (a *app) show(cmd *cobra.Command, args []string) error {
	st := a.store()
	rec, err := st.Load(args[0])
	if err != nil {
		return err
	}

	f, err := a.registry.Get(rec.Formula)
	if err != nil {
		return err
	}
	values := make([]float64, len(rec.Inputs))
	for i, in := range rec.Inputs {
		values[i] = float64(in.Value)
	}

	if rec.Kind != storage.KindSweep {
		res, err := f.Apply(values)
		if err != nil {
			return err
		}
		return a.writeResult(cmd.OutOrStdout(), res)
	}

	xs, ys, err := st.LoadSeries(rec.ID)
	if err != nil {
		return err
	}
	idx := f.InputIndex(rec.Vary)
	if idx < 0 {
		return &calc.InputError{Formula: f.Name, Input: rec.Vary, Err: calc.ErrUnknownInput}
	}
	res := &calc.SweepResult{
		Formula: f.Name,
		Inputs:  f.Inputs,
		Input:   f.Inputs[idx],
		Unit:    rec.Unit,
		Base:    values,
		Xs:      xs,
		Ys:      ys,
	}
	return a.writePlot(cmd.OutOrStdout(), res)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func numbers(fs []float64) []storage.Number {
	out := make([]storage.Number, len(fs))
	for i, f := range fs {
		out[i] = storage.Number(f)
	}
	return out
}
