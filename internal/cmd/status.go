package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/seatbook/internal/render"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the seat map",
	Long: `Display every seat in the chart, one line per row. Booked seats are marked
X (■ in color) and free seats . (□ in color).

Color follows display.color: "auto" uses color only when stdout is a terminal
and NO_COLOR is unset.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	grid, exists, err := rt.loadGrid()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !exists {
		fmt.Fprintf(w, "No chart at %s yet; showing an empty %dx%d grid.\n\n", rt.store.Path(), grid.Rows(), grid.Cols())
	}

	// Color only makes sense when writing straight to a file descriptor.
	f, _ := w.(*os.File)
	return render.SeatMap(w, grid, render.UseColor(rt.cfg.Display.Color, f))
}
