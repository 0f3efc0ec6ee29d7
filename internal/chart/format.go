package chart

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Seat symbols and the separator used in the chart file.
const (
	ReservedSymbol = "R"
	EmptySymbol    = "E"
	Delimiter      = ","
)

// Parse reads a chart. Lines may end in \r\n and surrounding whitespace around
// symbols is ignored. An empty chart, an unknown symbol or rows of differing
// length fail with a *errors.ChartError wrapping errors.ErrMalformedChart.
func Parse(r io.Reader) (*seating.Grid, error) {
	var flags [][]bool

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			return nil, errors.NewChartError("empty row", errors.ErrMalformedChart).WithLine(line)
		}

		symbols := strings.Split(text, Delimiter)
		row := make([]bool, len(symbols))
		for i, sym := range symbols {
			switch strings.TrimSpace(sym) {
			case ReservedSymbol:
				row[i] = true
			case EmptySymbol:
			default:
				return nil, errors.NewChartError(fmt.Sprintf("unknown seat symbol %q in column %d", sym, i), errors.ErrMalformedChart).
					WithLine(line)
			}
		}

		if len(flags) > 0 && len(row) != len(flags[0]) {
			return nil, errors.NewChartError(fmt.Sprintf("row has %d seats, want %d", len(row), len(flags[0])), errors.ErrMalformedChart).
				WithLine(line)
		}
		flags = append(flags, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewChartError("read chart", err)
	}
	if len(flags) == 0 {
		return nil, errors.NewChartError("chart has no rows", errors.ErrMalformedChart)
	}

	g, err := seating.FromSnapshot(flags)
	if err != nil {
		return nil, errors.NewChartError("build grid", errors.Join(errors.ErrMalformedChart, err))
	}
	return g, nil
}

// Format writes g in chart form, one line per row.
func Format(w io.Writer, g *seating.Grid) error {
	bw := bufio.NewWriter(w)
	symbols := make([]string, g.Cols())
	for _, row := range g.Snapshot() {
		for c, reserved := range row {
			if reserved {
				symbols[c] = ReservedSymbol
			} else {
				symbols[c] = EmptySymbol
			}
		}
		if _, err := bw.WriteString(strings.Join(symbols, Delimiter) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
