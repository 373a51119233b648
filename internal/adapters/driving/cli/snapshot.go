package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Disk snapshot commands",
	Long: `Commands for the on-disk snapshot of the heroes page and picker
feed. A saved snapshot lets later runs start offline via --offline.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the current page and feed to disk",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotSave,
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshotSave(cmd *cobra.Command, _ []string) error {
	if err := catalogService.SaveSnapshot(cmd.Context()); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	cmd.Println("Snapshot saved.")
	return nil
}
