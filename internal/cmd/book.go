package cmd

import (
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book <seat> <count>",
	Short: "Book seats",
	Long: `Book count seats starting at seat.

In contiguous mode the seats seat..seat+count-1 must all be free. In nearest
mode the seats closest to seat in the same row are taken, preferring seats to
the left before seats to the right.

Prints SUCCESS and the booked seats, or FAIL when the seats are not available.`,
	Example: `  seatbook book A1 3
  seatbook book C4 2 --mode contiguous`,
	Args: cobra.ExactArgs(2),
	RunE: runBook,
}

func init() {
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	return runRequest(cmd, func(mode reservation.Mode, b reservation.Bounds) (reservation.Request, error) {
		return reservation.Parse(reservation.Book, mode, args[0], args[1], b)
	})
}
