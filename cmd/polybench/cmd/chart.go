package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func milliseconds(r Result) float64 {
	return float64(r.Mean.Microseconds()) / 1e3
}

// RenderCharts renders on w an HTML page with one chart per operation:
// a line per type over the ring degrees, or a bar per type for the matrix operation.
func RenderCharts(w io.Writer, cfg Config, results []Result) error {

	index := map[string]Result{}
	for _, r := range results {
		index[fmt.Sprintf("%s/%s/%d", r.Op, r.Type, r.N)] = r
	}

	lookup := func(op, typ string, N int) (Result, bool) {
		r, ok := index[fmt.Sprintf("%s/%s/%d", op, typ, N)]
		return r, ok
	}

	page := components.NewPage().SetPageTitle("polybench")

	for _, op := range cfg.Ops {

		global := []charts.GlobalOpts{
			charts.WithTitleOpts(opts.Title{Title: op, Subtitle: fmt.Sprintf("mean of %d trials", cfg.Trials)}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
		}

		if op == OpMulByLeftVector {

			N := cfg.Matrix.Degree
			items := make([]opts.BarData, 0, len(cfg.Types))
			for _, typ := range cfg.Types {
				if r, ok := lookup(op, typ, N); ok {
					items = append(items, opts.BarData{Name: typ, Value: milliseconds(r)})
				}
			}

			bar := charts.NewBar()
			bar.SetGlobalOptions(append(global,
				charts.WithXAxisOpts(opts.XAxis{Name: fmt.Sprintf("N=%d %dx%d", N, cfg.Matrix.Rows, cfg.Matrix.Cols)}))...)
			bar.SetXAxis(cfg.Types).AddSeries(op, items)
			page.AddCharts(bar)
			continue
		}

		xs := make([]string, len(cfg.Degrees))
		for i, N := range cfg.Degrees {
			xs[i] = strconv.Itoa(N)
		}

		line := charts.NewLine()
		line.SetGlobalOptions(append(global, charts.WithXAxisOpts(opts.XAxis{Name: "N"}))...)
		line.SetXAxis(xs)

		for _, typ := range cfg.Types {
			items := make([]opts.LineData, len(cfg.Degrees))
			for i, N := range cfg.Degrees {
				if r, ok := lookup(op, typ, N); ok {
					items[i] = opts.LineData{Value: milliseconds(r)}
				}
			}
			line.AddSeries(typ, items)
		}

		page.AddCharts(line)
	}

	return page.Render(w)
}

// WriteCharts writes the output of RenderCharts on the file at path.
func WriteCharts(path string, cfg Config, results []Result) (err error) {

	var f *os.File
	if f, err = os.Create(path); err != nil {
		return fmt.Errorf("cannot WriteCharts: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = RenderCharts(f, cfg, results); err != nil {
		return fmt.Errorf("cannot WriteCharts: %w", err)
	}

	return nil
}
