// Package testutil provides testing utilities for seatbook tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Grid builds a grid from one string per row, using 'R' or 'X' for a booked
// seat and 'E' or '.' for a free one. Separators (',' and spaces) are
// ignored, so "R,E,E" and "X.." describe the same row.
func Grid(t *testing.T, rows ...string) *seating.Grid {
	t.Helper()

	flags := make([][]bool, len(rows))
	for r, row := range rows {
		for _, ch := range row {
			switch ch {
			case 'R', 'X':
				flags[r] = append(flags[r], true)
			case 'E', '.':
				flags[r] = append(flags[r], false)
			case ',', ' ':
			default:
				t.Fatalf("testutil.Grid: unknown seat %q in row %d", ch, r)
			}
		}
	}

	g, err := seating.FromSnapshot(flags)
	if err != nil {
		t.Fatalf("testutil.Grid: %v", err)
	}
	return g
}

// SetupChart writes content to a chart file in a fresh temporary directory
// and returns its path. The file is removed when the test completes.
func SetupChart(t *testing.T, content string) string {
	t.Helper()

	path := ChartPath(t)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write chart: %v", err)
	}
	return path
}

// ChartPath returns a chart path in a fresh temporary directory without
// creating the file.
func ChartPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "seating_chart.txt")
}

// ReadChart returns the chart file at path.
func ReadChart(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read chart: %v", err)
	}
	return string(data)
}

// RequireNoChart fails the test if a chart file exists at path.
func RequireNoChart(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no chart at %s (stat error: %v)", path, err)
	}
}
