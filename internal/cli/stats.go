package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	s := eng.Statistics()

	fmt.Printf("Days tracked:     %d\n", s.TotalDays)
	fmt.Printf("Perfect days:     %d\n", s.PerfectDays)
	fmt.Printf("Current streak:   %d\n", s.CurrentStreak)
	fmt.Printf("Longest streak:   %d\n", s.LongestStreak)
	fmt.Printf("Missions done:    %d\n", s.TotalMissions)
	return nil
}
