package main

import (
	"fmt"

	"github.com/ShayCichocki/guess/internal/version"
	"github.com/spf13/cobra"
)

// versionTemplate is shared by `guess version` and `guess --version`.
const versionTemplate = "guess version {{.Version}}\n"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "guess version %s\n", cmd.Root().Version)
	},
}

func init() {
	rootCmd.Version = version.Get()
	rootCmd.SetVersionTemplate(versionTemplate)
}
