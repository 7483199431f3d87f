package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a JSON snapshot",
	Long: `Replace all data with a previously exported JSON snapshot.
The snapshot is validated first; a bad snapshot changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := eng.Import(data); err != nil {
		return err
	}

	s := eng.Statistics()
	fmt.Printf("Imported %d days, %d perfect\n", s.TotalDays, s.PerfectDays)
	return nil
}
