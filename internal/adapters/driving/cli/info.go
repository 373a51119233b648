package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a hero's summary line",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output the full hero record as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	hero, err := findHero(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	if infoJSON {
		data, err := json.MarshalIndent(hero, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal hero: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(hero.Summary())
	if hero.Icon != "" {
		cmd.Printf("Icon: %s\n", hero.Icon)
	}

	return nil
}
