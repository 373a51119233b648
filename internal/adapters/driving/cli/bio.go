package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heropedia/heropedia/internal/core/domain"
)

var bioCmd = &cobra.Command{
	Use:   "bio <name>",
	Short: "Show a hero's biography",
	Long: `Prints the biography of a single hero, matched by exact display
name or internal key. Multi-word names need no quoting:

  heropedia bio Naga Siren
  heropedia bio npc_dota_hero_axe`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBio,
}

func init() {
	rootCmd.AddCommand(bioCmd)
}

func runBio(cmd *cobra.Command, args []string) error {
	hero, err := findHero(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	cmd.Println(hero.Name)
	cmd.Println(strings.Repeat("-", 20))
	cmd.Println(hero.Bio)

	return nil
}

// findHero resolves a display name or internal key to a single hero.
func findHero(ctx context.Context, name string) (domain.Hero, error) {
	hero, err := catalogService.FindFirst(ctx, domain.FilterCriteria{Name: name})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Hero{}, fmt.Errorf("hero %q not found", name)
	}
	if err != nil {
		return domain.Hero{}, fmt.Errorf("looking up hero: %w", err)
	}
	return hero, nil
}
