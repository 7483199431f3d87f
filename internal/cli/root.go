// Package cli implements the habitquest command-line interface using
// Cobra. Each subcommand maps to one tracker operation (today, goal,
// mission, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "habitquest",
	Short: "HabitQuest — Track daily habits, earn XP, unlock achievements",
	Long: `HabitQuest is a local-first habit tracker.
Log your daily goals and missions, collect badges, level up.
All data stays on your machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
