package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorsim/internal/config"
	"github.com/san-kum/tumorsim/internal/experiment"
	"github.com/san-kum/tumorsim/internal/logging"
	"github.com/san-kum/tumorsim/internal/report"
)

var (
	configFile string
	preset     string
	outDir     string
	logLevel   string
	parallel   int
	// Model overrides
	rate     float64
	capacity float64
	initial  float64
	// Time grid overrides
	duration float64
	dt       float64
	rates    []float64
	// Outputs
	ascii    bool
	csvPath  string
	jsonPath string
	noPNG    bool
	format   string
	validate bool
)

// main executes the root command; with no subcommand the reference
// experiment runs. It exits with status 1 if command execution returns an
// error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line in args and returns the process exit code.
// Failures are logged to stderr.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logging.New(logLevel, stderr).Error("tumorsim failed", "err", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tumorsim",
		Short:        "logistic tumor growth simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runExperiment,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory for plots")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&parallel, "parallel", 1, "concurrent sweep runs")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run baseline and growth-rate sweep",
		Args:  cobra.NoArgs,
		RunE:  runExperiment,
	}
	addModelFlags(runCmd)
	runCmd.Flags().BoolVar(&ascii, "ascii", false, "also draw terminal plots")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "export sweep trajectories to CSV")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "export all output arrays to JSON")
	runCmd.Flags().BoolVar(&noPNG, "no-png", false, "skip image plots")
	runCmd.Flags().StringVar(&format, "format", config.DefaultPlotFormat, "plot image format (png, svg)")
	runCmd.Flags().BoolVar(&validate, "validate", true, "stop on non-finite state")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw terminal plots only",
		Args:  cobra.NoArgs,
		RunE:  plotExperiment,
	}
	addModelFlags(plotCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name).Apply(config.DefaultConfig())
				fmt.Fprintf(cmd.OutOrStdout(), "  %-12s model=%s r=%g K=%g V0=%g t=[%g, %g] dt=%g\n",
					name, p.Model, p.BaselineRate, p.Capacity, p.Initial, p.Time.Start, p.Time.End, p.Time.Step)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	}
	addModelFlags(configCmd)

	rootCmd.AddCommand(runCmd, plotCmd, presetsCmd, configCmd)
	return rootCmd
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rate, "r", config.DefaultBaselineRate, "baseline growth rate")
	cmd.Flags().Float64Var(&capacity, "k", config.DefaultCapacity, "carrying capacity")
	cmd.Flags().Float64Var(&initial, "v0", config.DefaultInitial, "initial tumor volume")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultEnd, "end time")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultStep, "timestep")
	cmd.Flags().Float64SliceVar(&rates, "rates", config.DefaultSweepRates, "sweep growth rates")
}

// loadConfig layers defaults, preset, config file and changed flags, in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p.Apply(cfg)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("parallel") {
		cfg.Parallelism = parallel
	}
	if flags.Changed("r") {
		cfg.BaselineRate = rate
	}
	if flags.Changed("k") {
		cfg.Capacity = capacity
	}
	if flags.Changed("v0") {
		cfg.Initial = initial
	}
	if flags.Changed("time") {
		cfg.Time.End = duration
	}
	if flags.Changed("dt") {
		cfg.Time.Step = dt
	}
	if flags.Changed("rates") {
		cfg.SweepRates = append([]float64(nil), rates...)
	}
	if flags.Changed("ascii") {
		cfg.Output.ASCII = ascii
	}
	if flags.Changed("csv") {
		cfg.Output.CSV = csvPath
	}
	if flags.Changed("json") {
		cfg.Output.JSON = jsonPath
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("validate") {
		cfg.Validate = validate
	}
	if flags.Changed("no-png") && noPNG {
		cfg.Output.Plots = false
	}

	return cfg, nil
}

func simulate(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*experiment.Outcome, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, fmt.Errorf("time grid: %w", err)
	}

	logger.Info("simulating",
		"model", cfg.Model,
		"params", cfg.Params().String(),
		"points", grid.Len(),
		"rates", len(cfg.SweepRates),
	)

	exp := experiment.New(experiment.Config{
		Model:         cfg.Model,
		Integrator:    cfg.Integrator,
		Params:        cfg.Params(),
		Grid:          grid,
		SweepRates:    cfg.SweepRates,
		Parallelism:   cfg.Parallelism,
		ValidateState: cfg.Validate,
	}, logger)

	return exp.Run(ctx)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	out, err := simulate(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Output.Plots {
		f, err := report.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		paths, err := report.WritePlots(cfg.Output.Dir, f, out)
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Info("wrote plot", "path", p)
		}
	}

	exports := []struct {
		path string
		fn   func(w io.Writer, out *experiment.Outcome) error
	}{
		{cfg.Output.CSV, report.ExportCSV},
		{cfg.Output.JSON, report.ExportJSON},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := report.ExportFile(e.path, out, e.fn); err != nil {
			return fmt.Errorf("export %s: %w", e.path, err)
		}
		logger.Info("wrote export", "path", e.path)
	}

	if cfg.Output.ASCII {
		if err := report.WriteASCII(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}

	if err := report.WriteSummary(cmd.ErrOrStderr(), out); err != nil {
		return err
	}
	return report.WriteAnswer(cmd.OutOrStdout(), out.Answer())
}

func plotExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	out, err := simulate(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if err := report.WriteASCII(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	return report.WriteAnswer(cmd.OutOrStdout(), out.Answer())
}
