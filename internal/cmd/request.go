package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Iron-Ham/seatbook/internal/chart"
	"github.com/Iron-Ham/seatbook/internal/config"
	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/logging"
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
	"github.com/Iron-Ham/seatbook/internal/strategy"
	"github.com/spf13/cobra"
)

// cmdEnv holds what every command needs after configuration is loaded.
type cmdEnv struct {
	cfg    *config.Config
	logger *logging.Logger
	store  *chart.Store
}

func loadEnv(cmd *cobra.Command) (*cmdEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = newLogger(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	return &cmdEnv{
		cfg:    cfg,
		logger: logger.WithCommand(cmd.Name()),
		store:  chart.NewStore(cfg.Chart.Path, cfg.Chart.Rows, cfg.Chart.Cols),
	}, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLoggerWithRotation(cfg.Logging.Dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

func (rt *cmdEnv) close() {
	_ = rt.logger.Close()
}

func (rt *cmdEnv) strategyOptions() []strategy.Option {
	return []strategy.Option{
		strategy.WithLogger(rt.logger),
		strategy.WithMaxRetries(rt.cfg.Reservation.MaxRetries),
	}
}

// requestBuilder turns command arguments into a request once the grid
// dimensions are known.
type requestBuilder func(mode reservation.Mode, b reservation.Bounds) (reservation.Request, error)

// runRequest performs one locked load, execute, save cycle against the chart
// and reports the outcome on the command's output.
func runRequest(cmd *cobra.Command, build requestBuilder) error {
	rt, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	kind, err := strategy.ParseKind(rt.cfg.Reservation.Strategy)
	if err != nil {
		return err
	}
	mode, err := reservation.ParseMode(rt.cfg.Reservation.Mode)
	if err != nil {
		return err
	}

	unlock, err := rt.store.Lock()
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	grid, _, err := rt.store.Load()
	if err != nil {
		return err
	}

	req, err := build(mode, reservation.BoundsOf(grid))
	if err != nil {
		return err
	}

	exec, err := strategy.New(kind, grid, rt.strategyOptions()...)
	if err != nil {
		return err
	}

	out, err := exec.Execute(req)
	if err != nil {
		rt.logger.Error("request failed", "request", req.String(), "error", err)
		return err
	}

	w := cmd.OutOrStdout()
	if !out.Applied {
		rt.logger.Info("request not applied", "request", req.String())
		fmt.Fprintln(w, "FAIL")
		return ErrNotApplied
	}

	if err := rt.store.Save(exec.Snapshot()); err != nil {
		return errors.Wrap(err, "failed to save seat chart")
	}
	rt.logger.Info("request applied", "request", req.String(), "seats", len(out.Seats))
	printSuccess(w, req.Row(), out.Seats)
	return nil
}

// printSuccess writes "SUCCESS" followed by the touched seats in column order.
func printSuccess(w io.Writer, row int, cols []int) {
	sorted := slices.Clone(cols)
	slices.Sort(sorted)

	seats := make([]string, len(sorted))
	for i, c := range sorted {
		seats[i] = reservation.FormatSeat(row, c)
	}
	fmt.Fprintf(w, "SUCCESS %s\n", strings.Join(seats, " "))
}

// loadGrid reads the chart under its lock without modifying it.
func (rt *cmdEnv) loadGrid() (*seating.Grid, bool, error) {
	unlock, err := rt.store.Lock()
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = unlock() }()
	return rt.store.Load()
}
