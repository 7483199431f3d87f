package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement ladders and progress",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, a := range eng.AchievementsView() {
		fmt.Printf("%s %s — level %d/%d\n", a.Icon, a.Name, a.CurrentLevel, a.MaxLevel)
		if a.Current != nil {
			fmt.Printf("    current: %s\n", a.Current.Reward)
		}
		if a.Next != nil {
			fmt.Printf("    next: %s (%d/%d, %.0f%%)\n",
				a.Next.Reward, a.CurrentCount, a.Next.Threshold, a.Progress)
		} else {
			fmt.Println("    maxed out!")
		}
	}
	return nil
}
