package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/heropedia/heropedia/internal/adapters/driving/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive hero browser",
	Long: `Launch the line-oriented interactive browser.

Commands are read one line at a time; output scrolls above the prompt.

Controls:
  Enter        - Run the typed command
  Ctrl+C, Esc  - Quit
  help         - List shell commands`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	// Panic recovery to get stack traces out of the bubbletea loop
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in shell: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the shell needs an interactive terminal; use 'heropedia list' for scripted output")
	}

	model := shell.NewModel(catalogService).WithContext(cmd.Context())

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	return nil
}
