package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ShayCichocki/guess/internal/config"
	"github.com/ShayCichocki/guess/internal/game"
	"github.com/ShayCichocki/guess/internal/logging"
	"github.com/spf13/cobra"
)

var (
	rootNoColor bool
	rootLogFile string
)

// newSecretSource is swapped out in tests for a deterministic source.
var newSecretSource = func() game.SecretSource {
	return game.NewRandomSource()
}

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the number",
	Long: `Guess picks a secret number between 1 and 100 and asks you to guess it.

Type one number per line. After each guess you are told whether it was too
small, too big, or right. Lines that are not a whole number are ignored.
The game ends when you guess the number.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&rootLogFile, "log-file", "", "Write a debug log of the session to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("no-color") {
		cfg.Output.Color = !rootNoColor
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = rootLogFile
	}

	return playGame(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
}

// playGame runs one game over the given streams using cfg for rendering and logging.
func playGame(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) error {
	logger := logging.NopLogger()
	if cfg.Log.File != "" {
		var err error
		logger, err = logging.NewDebugLogger(cfg.Log.File)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
	}
	defer logger.Close()

	g := game.New(in, out, newSecretSource(),
		game.WithLogger(logger),
		game.WithColor(cfg.Output.Color),
	)

	if _, err := g.Play(ctx); err != nil {
		return err
	}
	return nil
}
