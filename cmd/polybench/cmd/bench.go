package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyring/ring"
	"github.com/tuneinsight/polyring/utils/sampling"
)

// Result is the timing of one operation for one coefficient type and ring degree.
type Result struct {
	Op   string
	Type string
	N    int
	Min  time.Duration
	Mean time.Duration
}

type runner func(ctx context.Context, cfg Config, typ, op string, N int) (Result, error)

var runners = map[string]runner{
	"float32":    runnerFor(ring.DrawFloat32),
	"float64":    runnerFor(ring.DrawFloat64),
	"complex64":  runnerFor(ring.DrawComplex(ring.DrawFloat32)),
	"complex128": runnerFor(ring.DrawComplex(ring.DrawFloat64)),
	"moduint32":  runnerFor(ring.DrawModUint32),
	"moduint64":  runnerFor(ring.DrawModUint64),
	"moduint256": runnerFor(ring.DrawModUint256),
}

func runnerFor[T ring.Element[T]](draw func(s *sampling.Source) T) runner {
	return func(ctx context.Context, cfg Config, typ, op string, N int) (res Result, err error) {

		var source *sampling.Source
		if source, err = sampling.NewKeyedSource([]byte(cfg.Seed), op, typ, strconv.Itoa(N)); err != nil {
			return
		}

		sampler := ring.NewSampler(source, draw)

		var f func() error

		switch op {
		case OpAdd:
			p0, p1 := sampler.ReadPolyNew(N), sampler.ReadPolyNew(N)
			f = func() (err error) {
				_, err = p0.Add(p1)
				return
			}
		case OpMul:
			p0, p1 := sampler.ReadPolyNew(N), sampler.ReadPolyNew(N)
			f = func() (err error) {
				_, err = p0.Mul(p1)
				return
			}
		case OpMulByX:
			p0 := sampler.ReadPolyNew(N)
			f = func() error {
				_ = p0.MulByX()
				return nil
			}
		case OpMulByLeftVector:
			m := sampler.ReadMatrixNew(N, cfg.Matrix.Rows, cfg.Matrix.Cols)
			v := sampler.ReadVectorNew(N, cfg.Matrix.Rows)
			f = func() (err error) {
				_, err = m.MulByLeftVector(v)
				return
			}
		default:
			return res, fmt.Errorf("invalid operation: %q", op)
		}

		var elapsed []float64
		if elapsed, err = timeTrials(ctx, cfg.Trials, f); err != nil {
			return
		}

		res = Result{Op: op, Type: typ, N: N}

		var minNs, meanNs float64
		if minNs, err = stats.Min(elapsed); err != nil {
			return
		}
		if meanNs, err = stats.Mean(elapsed); err != nil {
			return
		}

		res.Min = time.Duration(minNs)
		res.Mean = time.Duration(meanNs)

		return res, nil
	}
}

// timeTrials returns the duration in nanoseconds of each of the trials calls to f.
func timeTrials(ctx context.Context, trials int, f func() error) (elapsed []float64, err error) {
	elapsed = make([]float64, trials)
	for i := range elapsed {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if err = f(); err != nil {
			return nil, err
		}
		elapsed[i] = float64(time.Since(start).Nanoseconds())
	}
	return
}

// degreesOf returns the ring degrees op is run at.
func degreesOf(cfg Config, op string) []int {
	if op == OpMulByLeftVector {
		return []int{cfg.Matrix.Degree}
	}
	return cfg.Degrees
}

// Run times every configured operation, type and ring degree, in this order.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (results []Result, err error) {

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot Run: %w", err)
	}

	for _, op := range cfg.Ops {
		for _, typ := range cfg.Types {
			for _, N := range degreesOf(cfg, op) {

				logger.Debug("running", "op", op, "type", typ, "N", N, "trials", cfg.Trials)

				var res Result
				if res, err = runners[typ](ctx, cfg, typ, op, N); err != nil {
					return nil, fmt.Errorf("cannot Run: %s/%s/N=%d: %w", op, typ, N, err)
				}

				logger.Info("done", "op", op, "type", typ, "N", N, "min", res.Min, "mean", res.Mean)

				results = append(results, res)
			}
		}
	}

	return
}

// WriteTable writes results on w as an aligned table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tTYPE\tN\tMIN\tMEAN")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.Op, r.Type, r.N, r.Min, r.Mean)
	}
	return tw.Flush()
}

func newBenchCommand(o *options) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Runs the benchmarks and prints a table of timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), level)

			results, err := Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			if err = WriteTable(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			if cfg.Chart != "" {
				if err = WriteCharts(cfg.Chart, cfg, results); err != nil {
					return err
				}
				logger.Info("chart written", "path", cfg.Chart)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.seed, "seed", "", "seed of the operand generator")
	flags.IntVar(&o.trials, "trials", 0, "number of timed calls per benchmark")
	flags.IntSliceVar(&o.degrees, "degrees", nil, "ring degrees")
	flags.StringSliceVar(&o.types, "types", nil, "coefficient types")
	flags.StringSliceVar(&o.ops, "operations", nil, "operations")
	flags.StringVar(&o.chart, "chart", "", "path of the HTML chart to write")

	return cmd
}
