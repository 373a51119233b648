package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var iconOutput string

var iconCmd = &cobra.Command{
	Use:   "icon <name>",
	Short: "Download a hero's portrait icon",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIcon,
}

func init() {
	iconCmd.Flags().StringVarP(&iconOutput, "output", "o", "", "destination path (default <key>.png)")
	rootCmd.AddCommand(iconCmd)
}

func runIcon(cmd *cobra.Command, args []string) error {
	hero, err := findHero(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	if err := catalogService.SaveIcon(cmd.Context(), hero, iconOutput); err != nil {
		return fmt.Errorf("saving icon: %w", err)
	}

	path := iconOutput
	if path == "" {
		path = hero.Key + ".png"
	}
	cmd.Printf("Saved %s icon to %s\n", hero.Name, path)

	return nil
}
