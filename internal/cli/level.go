package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(levelCmd)
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show level and XP progress",
	RunE:  runLevel,
}

func runLevel(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	p := eng.ProgressionView()

	fmt.Printf("Level %d — %s\n", p.Level, p.Title)
	fmt.Printf("Total XP: %d\n", p.TotalXP)
	if p.IsMaxLevel {
		fmt.Println("Maximum level reached!")
		return nil
	}

	fmt.Printf("Next level: %d XP to go (%.0f%%)\n", p.XPRemaining, p.Progress)
	return nil
}
