package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as a JSON snapshot",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	eng, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := eng.Export()
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportOut, data, 0600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported to %s\n", exportOut)
	return nil
}
