// Package cmd implements the polybench command line.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// options holds the flag values shared by the subcommands.
type options struct {
	configPath string
	logLevel   string
	seed       string
	trials     int
	degrees    []int
	types      []string
	ops        []string
	chart      string
}

// Execute runs the polybench command line until completion or interruption.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the polybench command tree.
func NewRootCommand() *cobra.Command {

	o := &options{}

	root := &cobra.Command{
		Use:   "polybench",
		Short: "Benchmarks arithmetic in T[X]/(X^N - 1)",
		Long: `polybench times the polynomial ring operations over the supported
coefficient types:

  add              Poly.Add
  mul              Poly.Mul (direct cyclic convolution)
  mulbyx           Poly.MulByX
  mulbyleftvector  Matrix.MulByLeftVector

Operands are drawn from a deterministic source keyed by the seed, the
operation, the type and the ring degree.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "YAML configuration file (default: built-in configuration)")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newBenchCommand(o), newConfigCommand(o))

	return root
}

// config loads the configuration file and applies the flags explicitly set on cmd.
func (o *options) config(cmd *cobra.Command) (cfg Config, err error) {

	if cfg, err = LoadConfig(o.configPath); err != nil {
		return
	}

	flags := cmd.Flags()

	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("trials") {
		cfg.Trials = o.trials
	}
	if flags.Changed("degrees") {
		cfg.Degrees = o.degrees
	}
	if flags.Changed("types") {
		cfg.Types = o.types
	}
	if flags.Changed("operations") {
		cfg.Ops = o.ops
	}
	if flags.Changed("chart") {
		cfg.Chart = o.chart
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
