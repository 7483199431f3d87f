package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(moodCmd)
}

var moodCmd = &cobra.Command{
	Use:   "mood <emoji> [note...]",
	Short: "Record how today felt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMood,
}

func runMood(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	emoji := args[0]
	text := strings.Join(args[1:], " ")

	if err := eng.SetMood(emoji, text); err != nil {
		return err
	}

	fmt.Printf("Mood recorded: %s %s\n", emoji, text)
	return nil
}
