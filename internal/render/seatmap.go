package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Seat glyphs. The plain map uses ASCII so it survives pipes and logs.
const (
	plainReserved = "X"
	plainFree     = "."
	colorReserved = "■"
	colorFree     = "□"
)

// SeatMap writes g as a table with a column header and one line per row
// labelled with its seat-notation letter. With color set it is drawn with
// lipgloss styles inside a rounded border; otherwise it is plain ASCII.
func SeatMap(w io.Writer, g *seating.Grid, color bool) error {
	var out string
	if color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.TrueColor)
		out = colorMap(g, newStyles(r))
	} else {
		out = plainMap(g)
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// Summary returns a one-line occupancy summary, e.g. "3 of 160 seats reserved".
// Rows with no free seat left are listed after it.
func Summary(g *seating.Grid) string {
	total := g.Rows() * g.Cols()
	line := fmt.Sprintf("%d of %d seats reserved", g.Reserved(), total)

	var full []string
	for row := 0; row < g.Rows(); row++ {
		if free, err := g.Available(row); err == nil && free == 0 {
			full = append(full, rowLabel(row))
		}
	}
	if len(full) > 0 {
		line += "; full rows: " + strings.Join(full, " ")
	}
	return line
}

// rowLabel returns the seat-notation letter for row, or its number past Z.
func rowLabel(row int) string {
	if row < 26 {
		return string(rune('A' + row))
	}
	return strconv.Itoa(row)
}

// cellWidth fits the widest column index and the widest row label.
func cellWidth(g *seating.Grid) (label, cell int) {
	label = len(rowLabel(g.Rows() - 1))
	cell = len(strconv.Itoa(g.Cols() - 1))
	return label, cell
}

func plainMap(g *seating.Grid) string {
	labelW, cellW := cellWidth(g)
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", labelW))
	for col := 0; col < g.Cols(); col++ {
		fmt.Fprintf(&b, " %*d", cellW, col)
	}
	b.WriteString("\n")

	for row, flags := range g.Snapshot() {
		fmt.Fprintf(&b, "%-*s", labelW, rowLabel(row))
		for _, reserved := range flags {
			glyph := plainFree
			if reserved {
				glyph = plainReserved
			}
			fmt.Fprintf(&b, " %*s", cellW, glyph)
		}
		b.WriteString("\n")
	}
	b.WriteString(Summary(g))
	return b.String()
}

func colorMap(g *seating.Grid, st styles) string {
	labelW, cellW := cellWidth(g)
	lines := make([]string, 0, g.Rows()+2)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelW))
	for col := 0; col < g.Cols(); col++ {
		fmt.Fprintf(&header, " %*d", cellW, col)
	}
	lines = append(lines, st.header.Render(header.String()))

	for row, flags := range g.Snapshot() {
		var line strings.Builder
		line.WriteString(st.header.Render(fmt.Sprintf("%-*s", labelW, rowLabel(row))))
		for _, reserved := range flags {
			pad := strings.Repeat(" ", cellW)
			if reserved {
				line.WriteString(pad + st.reserved.Render(colorReserved))
			} else {
				line.WriteString(pad + st.free.Render(colorFree))
			}
		}
		lines = append(lines, line.String())
	}

	body := st.box.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Seat map"),
		body,
		st.summary.Render(Summary(g)),
	)
}
