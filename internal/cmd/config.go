package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/seatbook/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify seatbook configuration",
	Long: `View or modify seatbook configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  seatbook config set reservation.strategy row-lock
  seatbook config set chart.path /var/lib/seatbook/chart.txt
  seatbook config set logging.enabled true

Run 'seatbook config show' to list every key.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/seatbook/config.yaml with all available options.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	w := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(w, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(w, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// defaultValues returns the default for every key, typed as YAML decodes it.
func defaultValues() (map[string]any, error) {
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return nil, err
	}
	var sections map[string]map[string]any
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	values := make(map[string]any)
	for section, fields := range sections {
		for field, v := range fields {
			values[section+"."+field] = v
		}
	}
	return values, nil
}

// typedValue converts raw to the type of the key's default value.
func typedValue(key, raw string, def any) (any, error) {
	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return raw, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	raw := args[1]

	defaults, err := defaultValues()
	if err != nil {
		return err
	}
	def, ok := defaults[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, strings.Join(config.Keys(), ", "))
	}
	value, err := typedValue(key, raw, def)
	if err != nil {
		return err
	}

	// Validate against the merged configuration before touching the file.
	viper.Set(key, value)
	if _, err := config.Load(); err != nil {
		return err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	doc := map[string]map[string]any{}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	section, field, _ := strings.Cut(key, ".")
	if doc[section] == nil {
		doc[section] = map[string]any{}
	}
	doc[section][field] = value

	if err := writeConfigFile(configFile, doc); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Set %s = %v\n", key, value)
	fmt.Fprintf(w, "Config saved to %s\n", configFile)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists at %s\nUse 'seatbook config set' to modify values or --force to overwrite", configFile)
	}

	if err := writeConfigFile(configFile, config.Default()); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Created config file at %s\n", configFile)
	fmt.Fprintln(w, "Edit this file to customize seatbook's behavior.")
	return nil
}

func writeConfigFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	content := "# seatbook configuration\n# Environment variables SEATBOOK_<SECTION>_<KEY> override these values.\n\n" + string(data)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(w, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(w, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(w, "\nSearch paths:")
	fmt.Fprintf(w, "  1. %s\n", configFile)
	fmt.Fprintln(w, "  2. ./config.yaml (current directory)")

	fmt.Fprintf(w, "\nEnvironment variables: SEATBOOK_* (e.g., %s)\n", envName("reservation.strategy"))
	return nil
}

// envName returns the environment variable that overrides key.
func envName(key string) string {
	return "SEATBOOK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
