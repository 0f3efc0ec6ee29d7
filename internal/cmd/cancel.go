package cmd

import (
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <seat> <count>",
	Short: "Cancel booked seats",
	Long: `Cancel count seats starting at seat. Every seat in the range must be booked,
otherwise nothing changes and FAIL is printed.`,
	Example: `  seatbook cancel A1 3`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCancel,
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	return runRequest(cmd, func(mode reservation.Mode, b reservation.Bounds) (reservation.Request, error) {
		return reservation.Parse(reservation.Cancel, mode, args[0], args[1], b)
	})
}
