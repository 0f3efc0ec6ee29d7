package main

import (
	"os"

	"github.com/Iron-Ham/seatbook/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger := cmd.ReportLogger()
		cmd.Report(os.Stderr, logger, err)
		_ = logger.Close()
		os.Exit(cmd.ExitCode(err))
	}
}
