package cmd

import (
	"strings"

	"github.com/Iron-Ham/seatbook/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "seatbook",
	Short: "Seat reservations for a single flight",
	Long: `Seatbook books and cancels seats on a flight's seating grid.

Seat state is kept in a chart file between invocations. Requests are executed
through a concurrency strategy: a whole-grid lock, per-row locks, or an
optimistic compare-and-swap.

Seats are written as a row letter followed by a zero-based column number,
e.g. A0, C7 or B10.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// flagKeys maps persistent flags to the configuration keys they override.
var flagKeys = map[string]string{
	"config":    "config",
	"chart":     "chart.path",
	"strategy":  "reservation.strategy",
	"mode":      "reservation.mode",
	"log-level": "logging.level",
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/seatbook/config.yaml)")
	flags.String("chart", "", "seat chart file (default is ./seating_chart.txt)")
	flags.String("strategy", "", "concurrency strategy: lock, row-lock or optimistic")
	flags.String("mode", "", "booking mode: contiguous or nearest")
	flags.String("log-level", "", "log level: debug, info, warn or error")
}

// bindFlags connects the persistent flags to viper. It runs on every
// initialization so a reset viper instance sees the flags again.
func bindFlags() {
	for flag, key := range flagKeys {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
}

func initConfig() {
	bindFlags()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SEATBOOK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SEATBOOK_RESERVATION_STRATEGY for reservation.strategy
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
