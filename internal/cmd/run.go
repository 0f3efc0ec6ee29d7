package cmd

import (
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <BOOK|CANCEL> <seat> <count>",
	Short: "Execute a request in the three-argument form",
	Long: `Execute a booking or cancellation given as an action, a seat and a count.
The action is case-insensitive. Equivalent to the book and cancel commands.`,
	Example: `  seatbook run BOOK A1 3
  seatbook run CANCEL A1 3`,
	Args: cobra.ExactArgs(3),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	return runRequest(cmd, func(mode reservation.Mode, b reservation.Bounds) (reservation.Request, error) {
		return reservation.ParseArgs(args, mode, b)
	})
}
