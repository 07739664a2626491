package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/dimcalc/internal/calc"
	"github.com/san-kum/dimcalc/internal/config"
	"github.com/san-kum/dimcalc/internal/logger"
	"github.com/san-kum/dimcalc/internal/storage"
	"github.com/san-kum/dimcalc/internal/viz"
)

type app struct {
	cfg      *config.Config
	registry *calc.Registry

	configFile string
	dataDir    string
	logLevel   string
	format     string
	precision  int

	inputs []string
	preset string
	save   bool

	vary   string
	from   float64
	to     float64
	steps  int
	width  int
	height int

	workers int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{registry: calc.NewRegistry()}

	rootCmd := &cobra.Command{
		Use:               "dimcalc",
		Short:             "dimensional analysis calculator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.dataDir, "data", config.DefaultDataDir, "history directory")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&a.format, "format", "o", config.DefaultFormat, "output format (table, json, csv)")
	pf.IntVar(&a.precision, "precision", config.DefaultPrecision, "significant digits")

	formulasCmd := &cobra.Command{
		Use:   "formulas",
		Short: "list formulas",
		Args:  cobra.NoArgs,
		RunE:  a.listFormulas,
	}

	evalCmd := &cobra.Command{
		Use:     "eval [formula] [values...]",
		Short:   "evaluate a formula",
		Example: "  dimcalc eval force 1000 9.8\n  dimcalc eval density --in mass=5000 --in volume=2\n  dimcalc eval speed --preset sprint",
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.evaluate,
	}
	evalCmd.Flags().StringArrayVarP(&a.inputs, "in", "i", nil, "named input, name=value")
	evalCmd.Flags().StringVar(&a.preset, "preset", "", "use preset inputs")
	evalCmd.Flags().BoolVar(&a.save, "save", false, "save to history")

	sweepCmd := &cobra.Command{
		Use:     "sweep [formula]",
		Short:   "vary one input and plot the result",
		Example: "  dimcalc sweep kinetic-energy --in mass=2000 --vary speed --from 0 --to 30",
		Args:    cobra.ExactArgs(1),
		RunE:    a.sweep,
	}
	sweepCmd.Flags().StringArrayVarP(&a.inputs, "in", "i", nil, "fixed input, name=value")
	sweepCmd.Flags().StringVar(&a.preset, "preset", "", "use preset inputs")
	sweepCmd.Flags().StringVar(&a.vary, "vary", "", "input to vary")
	sweepCmd.Flags().Float64Var(&a.from, "from", 0, "range start")
	sweepCmd.Flags().Float64Var(&a.to, "to", 1, "range end")
	sweepCmd.Flags().IntVar(&a.steps, "steps", config.DefaultSweepSteps, "number of samples")
	sweepCmd.Flags().IntVar(&a.width, "width", config.DefaultPlotWidth, "plot width")
	sweepCmd.Flags().IntVar(&a.height, "height", config.DefaultPlotHeight, "plot height")
	sweepCmd.Flags().BoolVar(&a.save, "save", false, "save to history")
	_ = sweepCmd.MarkFlagRequired("vary")

	batchCmd := &cobra.Command{
		Use:     "batch [formula] [file]",
		Short:   "evaluate a formula for every row of a CSV file",
		Long:    "Reads a CSV whose header names the formula inputs, from file or stdin, and writes one result per row.",
		Example: "  dimcalc batch kinetic-energy cars.csv\n  cat rows.csv | dimcalc batch current -o json",
		Args:    cobra.RangeArgs(1, 2),
		RunE:    a.batch,
	}
	batchCmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "concurrent workers (0 = GOMAXPROCS)")

	presetsCmd := &cobra.Command{
		Use:   "presets [formula]",
		Short: "list worked examples for a formula",
		Args:  cobra.ExactArgs(1),
		RunE:  a.listPresets,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list saved calculations",
		Args:  cobra.NoArgs,
		RunE:  a.listHistory,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE:  a.show,
	}
	showCmd.Flags().IntVar(&a.width, "width", config.DefaultPlotWidth, "plot width")
	showCmd.Flags().IntVar(&a.height, "height", config.DefaultPlotHeight, "plot height")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export a saved calculation to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store().ExportJSON(cmd.OutOrStdout(), args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [id]",
		Short: "export a saved calculation to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store().ExportCSV(cmd.OutOrStdout(), args[0])
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}

	rootCmd.AddCommand(formulasCmd, evalCmd, sweepCmd, batchCmd, presetsCmd, historyCmd, showCmd, exportJSONCmd, exportCSVCmd, tuiCmd)
	return rootCmd
}

// setup loads the config file, lets explicitly set flags override it and
// installs the global logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || a.configFile == "" {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Lookup("steps") != nil && flags.Changed("steps") {
		cfg.Sweep.Steps = a.steps
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Sweep.Width = a.width
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Sweep.Height = a.height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.SetGlobal(l)
	a.cfg = cfg

	logger.Debug("config resolved", "command", cmd.Name(), "data_dir", cfg.DataDir, "format", cfg.Format)
	return nil
}

func (a *app) store() *storage.Store {
	return storage.New(a.cfg.DataDir)
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	st := a.store()
	save := func(res calc.Result) (string, error) {
		if err := st.Init(); err != nil {
			return "", err
		}
		return st.SaveResult(res)
	}
	return viz.RunInteractive(a.registry, a.cfg.Precision, save)
}
