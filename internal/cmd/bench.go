package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/seatbook/internal/metrics"
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
	"github.com/Iron-Ham/seatbook/internal/strategy"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Fire concurrent random requests at a strategy",
	Long: `Run a burst of random book and cancel requests against an in-memory grid of
the configured size and report how each request ended. The seat chart is not
read or written.

Every strategy under test receives the same request script, so with --all the
numbers are directly comparable.`,
	Example: `  seatbook bench --requests 10000 --workers 32
  seatbook bench --all --seed 7`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

var (
	benchRequests int
	benchWorkers  int
	benchSeed     uint64
	benchAll      bool
)

func init() {
	benchCmd.Flags().IntVarP(&benchRequests, "requests", "n", 0, "number of requests (default from bench.requests)")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", 0, "concurrent workers (default from bench.workers)")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "random seed for the request script")
	benchCmd.Flags().BoolVar(&benchAll, "all", false, "benchmark every strategy")
	rootCmd.AddCommand(benchCmd)
}

// benchResult is one strategy's run.
type benchResult struct {
	kind    strategy.Kind
	totals  metrics.Totals
	elapsed time.Duration
	booked  int
}

func runBench(cmd *cobra.Command, args []string) error {
	rt, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	requests := rt.cfg.Bench.Requests
	if cmd.Flags().Changed("requests") {
		requests = benchRequests
	}
	workers := rt.cfg.Bench.Workers
	if cmd.Flags().Changed("workers") {
		workers = benchWorkers
	}
	if requests < 1 || workers < 1 {
		return fmt.Errorf("requests and workers must be at least 1 (got %d and %d)", requests, workers)
	}

	mode, err := reservation.ParseMode(rt.cfg.Reservation.Mode)
	if err != nil {
		return err
	}
	bounds := reservation.Bounds{Rows: rt.cfg.Chart.Rows, Cols: rt.cfg.Chart.Cols}
	script, err := benchScript(benchSeed, requests, mode, bounds)
	if err != nil {
		return err
	}

	kinds := strategy.Kinds()
	if !benchAll {
		kind, err := strategy.ParseKind(rt.cfg.Reservation.Strategy)
		if err != nil {
			return err
		}
		kinds = []strategy.Kind{kind}
	}

	results := make([]benchResult, 0, len(kinds))
	for _, kind := range kinds {
		res, err := benchStrategy(rt, kind, bounds, script, workers)
		if err != nil {
			return err
		}
		rt.logger.Info("bench finished",
			"strategy", string(kind),
			"requests", res.totals.Requests(),
			"applied", res.totals.Applied,
			"elapsed", res.elapsed.String(),
		)
		results = append(results, res)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s requests, %d workers, %s mode, %dx%d grid\n",
		humanize.Comma(int64(requests)), workers, mode, bounds.Rows, bounds.Cols)
	fmt.Fprintln(cmd.OutOrStdout(), benchTable(results))
	return nil
}

// benchScript builds a deterministic mix of bookings and cancellations. About
// one request in four is a cancellation so the grid does not simply fill up.
func benchScript(seed uint64, n int, mode reservation.Mode, b reservation.Bounds) ([]reservation.Request, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	script := make([]reservation.Request, 0, n)
	for len(script) < n {
		kind := reservation.Book
		if rng.IntN(4) == 0 {
			kind = reservation.Cancel
		}
		row := rng.IntN(b.Rows)
		col := rng.IntN(b.Cols)
		maxCount := min(3, b.Cols)
		if kind == reservation.Cancel || mode == reservation.Contiguous {
			maxCount = min(maxCount, b.Cols-col)
		}
		req, err := reservation.NewRequest(kind, mode, row, col, 1+rng.IntN(maxCount), b)
		if err != nil {
			return nil, err
		}
		script = append(script, req)
	}
	return script, nil
}

func benchStrategy(rt *cmdEnv, kind strategy.Kind, b reservation.Bounds, script []reservation.Request, workers int) (benchResult, error) {
	grid, err := seating.New(b.Rows, b.Cols)
	if err != nil {
		return benchResult{}, err
	}

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	opts := append(rt.strategyOptions(), strategy.WithMetrics(m))
	exec, err := strategy.New(kind, grid, opts...)
	if err != nil {
		return benchResult{}, err
	}

	p := pool.New().WithMaxGoroutines(workers)
	start := time.Now()
	for _, req := range script {
		p.Go(func() {
			// Failures are counted by the metrics; the run continues.
			_, _ = exec.Execute(req)
		})
	}
	p.Wait()
	elapsed := time.Since(start)

	totals, err := m.Totals(string(kind))
	if err != nil {
		return benchResult{}, err
	}
	return benchResult{
		kind:    kind,
		totals:  totals,
		elapsed: elapsed,
		booked:  exec.Snapshot().Reserved(),
	}, nil
}

func benchTable(results []benchResult) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "APPLIED", "UNAVAILABLE", "ERRORS", "RETRIES", "BOOKED", "ELAPSED", "REQ/S")
	for _, r := range results {
		rate := 0.0
		if r.elapsed > 0 {
			rate = float64(r.totals.Requests()) / r.elapsed.Seconds()
		}
		t.Row(
			string(r.kind),
			humanize.Comma(int64(r.totals.Applied)),
			humanize.Comma(int64(r.totals.Unavailable)),
			humanize.Comma(int64(r.totals.Errors)),
			humanize.Comma(int64(r.totals.Retries)),
			humanize.Comma(int64(r.booked)),
			r.elapsed.Round(time.Microsecond).String(),
			humanize.CommafWithDigits(rate, 0),
		)
	}
	return t.String()
}
