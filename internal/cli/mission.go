package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	missionCmd.AddCommand(missionToggleCmd)
	rootCmd.AddCommand(missionCmd)
}

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Work with today's missions",
}

var missionToggleCmd = &cobra.Command{
	Use:   "toggle <mission>",
	Short: "Toggle a mission's completion for today",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionToggle,
}

func runMissionToggle(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := eng.ToggleMission(args[0])
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Printf("%q is not one of today's missions. Today's lineup:\n", args[0])
		for _, m := range eng.Today().Missions {
			fmt.Printf("  %s %s (%s)\n", checkmark(m.Completed), m.Title, m.ID)
		}
		return nil
	}

	if result.Completed {
		fmt.Printf("%s completed! +%d XP\n", result.MissionID, result.XPGranted)
	} else {
		fmt.Printf("%s unmarked\n", result.MissionID)
	}
	printRewards(result.NewBadges, result.PerfectDay, result.LevelUp)
	return nil
}
