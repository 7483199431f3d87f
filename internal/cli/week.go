package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/habitquest/habitquest/internal/domain"
)

func init() {
	weekCmd.Flags().IntVar(&weekDays, "days", 7, "Number of days to show")
	rootCmd.AddCommand(weekCmd)
}

var weekDays int

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last week at a glance",
	RunE:  runWeek,
}

func runWeek(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	days := eng.WeekView(weekDays)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tDATE\tGOALS\tMISSIONS\tSTATUS")
	for _, d := range days {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d/%d\t%s\n",
			d.DayName,
			d.Date,
			d.GoalsCompleted, d.TotalGoals,
			d.MissionsCompleted, d.TotalMissions,
			statusMarker(d.Status),
		)
	}
	return w.Flush()
}

func statusMarker(s domain.DayStatus) string {
	switch s {
	case domain.DayCompleted:
		return "🎉 perfect"
	case domain.DayPartial:
		return "◐ partial"
	default:
		return "· missed"
	}
}
