package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ShayCichocki/guess/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify guess configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/guess/config.yaml
Project-specific overrides can be placed in .guess.yaml
Environment overrides use the GUESS_ prefix, e.g. GUESS_LOG_FILE.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		out := cmd.OutOrStdout()
		switch len(args) {
		case 0:
			displayAllConfig(out, cfg, config.GetUserConfigPath(), config.GetProjectConfigPath())
			return nil
		case 1:
			value, err := getConfigValue(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
			return nil
		default:
			if err := setConfigValue(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(out, "Set %s = %s\n", args[0], args[1])
			return nil
		}
	},
}

// displayAllConfig prints all configuration values followed by the
// config files they were read from.
func displayAllConfig(out io.Writer, cfg *config.Config, userPath, projectPath string) {
	fmt.Fprintf(out, "output.color: %t\n", cfg.Output.Color)
	fmt.Fprintf(out, "log.file: %s\n", orNotSet(cfg.Log.File))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "user config: %s\n", userPath)
	fmt.Fprintf(out, "project config: %s\n", orNotSet(projectPath))
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "output.color":
		return strconv.FormatBool(cfg.Output.Color), nil
	case "log.file":
		return orNotSet(cfg.Log.File), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "output.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for output.color: %w", err)
		}
		cfg.Output.Color = b
	case "log.file":
		cfg.Log.File = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
