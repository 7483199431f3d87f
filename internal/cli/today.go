package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(todayCmd)
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's goals and missions",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	view := eng.Today()

	fmt.Printf("📅 %s\n\n", view.Date)

	fmt.Printf("Goals (%d/%d)\n", view.GoalsDone, len(view.Goals))
	for _, g := range view.Goals {
		progress := fmt.Sprintf("%d/%d %s", g.Value, g.Target, g.Unit)
		if g.Unit == "" {
			progress = fmt.Sprintf("%d/%d", g.Value, g.Target)
		}
		fmt.Printf("  %s %s %s  %s\n", checkmark(g.Done), g.Icon, g.Title, progress)
	}

	fmt.Printf("\nMissions (%d/%d)\n", view.MissionsDone, len(view.Missions))
	for _, m := range view.Missions {
		fmt.Printf("  %s %s %s — %s\n", checkmark(m.Completed), m.Icon, m.Title, m.Description)
	}

	if view.Mood.Emoji != "" {
		fmt.Printf("\nMood: %s %s\n", view.Mood.Emoji, view.Mood.Text)
	}

	if view.Completed {
		fmt.Println("\n🎉 Perfect day!")
	}
	return nil
}
