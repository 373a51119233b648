package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heropedia/heropedia/internal/adapters/driving/shell"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find <key=value> ...",
	Short: "Find heroes matching criteria",
	Long: `Filters the roster by key=value criteria. All supplied criteria
must match.

Criteria:
  name=<name or key>      Exact match; underscores read as spaces
  attribute=<value>       Strength, Agility or Intelligence
  role=<role,role,...>    Hero must have every listed role
  attack=<value>          Melee or Ranged

Examples:
  heropedia find role=Carry,Durable attribute=Strength
  heropedia find attack=Ranged --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output heroes as JSON")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	criteria, err := shell.ParseCriteria(args)
	if err != nil {
		return err
	}

	heroes, err := catalogService.Find(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("finding heroes: %w", err)
	}

	if findJSON {
		return outputHeroesJSON(cmd, heroes)
	}

	if len(heroes) == 0 {
		cmd.Println("No heroes match.")
		return nil
	}

	return outputHeroesTable(cmd, heroes)
}
