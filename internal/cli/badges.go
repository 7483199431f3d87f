package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	badgesCmd.Flags().BoolVar(&badgesAll, "all", false, "Show the full collection including locked badges")
	rootCmd.AddCommand(badgesCmd)
}

var badgesAll bool

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	if badgesAll {
		unlocked := 0
		for _, b := range eng.AllBadges() {
			marker := "🔒"
			detail := ""
			if b.Unlocked {
				marker = b.Icon
				detail = fmt.Sprintf("  ×%d, first %s", b.TimesEarned, b.FirstDate)
				unlocked++
			}
			fmt.Printf("  %s %s%s\n", marker, b.Name, detail)
		}
		fmt.Printf("\n%d unlocked\n", unlocked)
		return nil
	}

	badges := eng.TodaysBadges()
	if len(badges) == 0 {
		fmt.Println("No badges earned today yet. Complete a goal or mission!")
		return nil
	}

	fmt.Println("Today's badges:")
	for _, b := range badges {
		fmt.Printf("  %s %s\n", b.Icon, b.Name)
	}
	return nil
}
