package cmd

import (
	"fmt"

	"github.com/Iron-Ham/seatbook/internal/seating"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every booking",
	Long: `Replace the seat chart with an empty grid of the configured size
(chart.rows x chart.cols).`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	rt, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	grid, err := seating.New(rt.cfg.Chart.Rows, rt.cfg.Chart.Cols)
	if err != nil {
		return err
	}

	unlock, err := rt.store.Lock()
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	if err := rt.store.Save(grid); err != nil {
		return err
	}
	rt.logger.Info("chart reset", "path", rt.store.Path(), "rows", grid.Rows(), "cols", grid.Cols())
	fmt.Fprintf(cmd.OutOrStdout(), "Reset %s to an empty %dx%d grid\n", rt.store.Path(), grid.Rows(), grid.Cols())
	return nil
}
