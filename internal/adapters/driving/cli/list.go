package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heropedia/heropedia/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every hero in the catalogue",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output heroes as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	heroes, err := catalogService.Heroes(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing heroes: %w", err)
	}

	if listJSON {
		return outputHeroesJSON(cmd, heroes)
	}

	return outputHeroesTable(cmd, heroes)
}

func outputHeroesJSON(cmd *cobra.Command, heroes []domain.Hero) error {
	data, err := json.MarshalIndent(heroes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal heroes: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHeroesTable(cmd *cobra.Command, heroes []domain.Hero) error {
	if len(heroes) == 0 {
		cmd.Println("No heroes found.")
		return nil
	}

	for _, h := range heroes {
		cmd.Printf("  %s\n", h.Summary())
	}
	cmd.Println()
	cmd.Printf("%d heroes\n", len(heroes))

	return nil
}
