// Command arenasim runs seeded elimination-tournament simulations and
// manages the run archive.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "arenasim",
		Short: "Deterministic elimination tournament simulator",
		Long: `arenasim simulates a seed-driven elimination tournament: a tribute
field enters a procedurally described arena and a weighted event engine
narrates each day and night until a victor emerges.

The same seed, roster, and content always produce the same transcript.`,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug diagnostics")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newRunsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arenasim version %s\n", version)
		},
	}
}
