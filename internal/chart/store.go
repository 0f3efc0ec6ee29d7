package chart

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// DefaultPath is the chart file used when none is configured.
const DefaultPath = "seating_chart.txt"

// Store reads and writes one chart file.
type Store struct {
	path string
	rows int
	cols int
}

// NewStore returns a Store for path. rows and cols size the empty grid
// returned when the file does not exist yet; values below 1 fall back to the
// seating defaults.
func NewStore(path string, rows, cols int) *Store {
	if path == "" {
		path = DefaultPath
	}
	if rows < 1 {
		rows = seating.DefaultRows
	}
	if cols < 1 {
		cols = seating.DefaultCols
	}
	return &Store{path: path, rows: rows, cols: cols}
}

// Path returns the chart file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the chart. A missing file is not an error: Load returns an empty
// grid of the configured size and exists == false.
func (s *Store) Load() (g *seating.Grid, exists bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		empty, err := seating.New(s.rows, s.cols)
		if err != nil {
			return nil, false, errors.NewChartError("create empty chart", err).WithPath(s.path)
		}
		return empty, false, nil
	}
	if err != nil {
		return nil, false, errors.NewChartError("read chart", err).WithPath(s.path)
	}

	g, err = Parse(bytes.NewReader(data))
	if err != nil {
		var ce *errors.ChartError
		if errors.As(err, &ce) {
			return nil, true, ce.WithPath(s.path)
		}
		return nil, true, err
	}
	return g, true, nil
}

// Save atomically replaces the chart with g.
func (s *Store) Save(g *seating.Grid) error {
	var buf bytes.Buffer
	if err := Format(&buf, g); err != nil {
		return errors.NewChartError("format chart", err).WithPath(s.path)
	}
	if err := writeAtomic(s.path, buf.Bytes()); err != nil {
		return errors.NewChartError("save chart", err).WithPath(s.path)
	}
	return nil
}

// Lock blocks until this process holds the exclusive advisory lock for the
// chart and returns the function that releases it.
func (s *Store) Lock() (unlock func() error, err error) {
	lockPath := s.path + ".lock"
	if dir := filepath.Dir(lockPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.NewChartError("create chart directory", err).WithPath(s.path)
		}
	}
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.NewChartError("open lock file", err).WithPath(lockPath)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, errors.NewChartError("acquire lock", errors.Join(errors.ErrChartLocked, err)).
			WithPath(lockPath).
			WithRetryable(true)
	}

	return func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return errors.NewChartError("release lock", unlockErr).WithPath(lockPath)
		}
		return closeErr
	}, nil
}

// writeAtomic writes payload next to dest and renames it into place so
// readers never observe a partially written chart.
func writeAtomic(dest string, payload []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".seatbook-chart-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return syncDir(dir)
}

func syncDir(path string) error {
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	defer dir.Close()
	return dir.Sync()
}
