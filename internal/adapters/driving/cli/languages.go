package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the content languages the heroes page offers",
	Long: `Lists every language advertised by the heroes page, as a human
name and the query tag to pass via --lang.`,
	Args: cobra.NoArgs,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	languages, err := catalogService.Languages(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing languages: %w", err)
	}

	if len(languages) == 0 {
		cmd.Println("No languages advertised.")
		return nil
	}

	for _, l := range languages {
		cmd.Printf("  %-24s %s\n", l.Name, l.Tag)
	}

	return nil
}
