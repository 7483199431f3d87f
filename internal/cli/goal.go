package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/habitquest/habitquest/internal/app/tracker"
	"github.com/habitquest/habitquest/internal/domain"
)

func init() {
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalAddCmd)
	rootCmd.AddCommand(goalCmd)
}

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Update today's goal progress",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <goal> <value>",
	Short: "Set a goal's value for today",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalSet,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <goal> [amount]",
	Short: "Add to a goal's value for today (default 1)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGoalAdd,
}

func runGoalSet(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}

	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	return applyGoal(eng, args[0], value)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	delta := 1
	if len(args) == 2 {
		var err error
		delta, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
	}

	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	current := 0
	for _, g := range eng.Today().Goals {
		if g.ID == args[0] {
			current = g.Value
		}
	}

	return applyGoal(eng, args[0], current+delta)
}

func applyGoal(eng *tracker.Engine, goalID string, value int) error {
	result, err := eng.UpdateGoal(goalID, value)
	if err != nil {
		return err
	}
	if !result.Applied {
		return fmt.Errorf("%w: %q (try: water, stretch, duolingo, reading)", domain.ErrUnknownGoal, goalID)
	}

	fmt.Printf("%s = %d\n", result.GoalID, result.Value)
	if result.Completed {
		fmt.Printf("  Goal completed! +%d XP\n", result.XPGranted)
	}
	printRewards(result.NewBadges, result.PerfectDay, result.LevelUp)
	return nil
}
