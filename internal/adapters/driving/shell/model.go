package shell

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heropedia/heropedia/internal/core/ports/driving"
)

// Styles holds the lipgloss styles for the REPL.
type Styles struct {
	Prompt lipgloss.Style
	Banner lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the default REPL styling.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// Model is the Bubbletea model for the interactive hero browser.
// It renders only the prompt line; evaluated output is printed into the
// terminal scrollback with tea.Println, keeping the session
// line-oriented.
type Model struct {
	eval   *Evaluator
	ctx    context.Context
	input  textinput.Model
	styles Styles

	// busy is true while a command evaluates; input is held until the
	// result arrives so at most one request is outstanding.
	busy bool
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// resultMsg carries a finished evaluation back into the update loop.
type resultMsg struct {
	result Result
}

// NewModel creates the REPL model around a catalogue service.
func NewModel(catalog driving.CatalogService) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.CharLimit = 256
	ti.Focus()

	return &Model{
		eval:   NewEvaluator(catalog),
		ctx:    context.Background(),
		input:  ti,
		styles: DefaultStyles(),
	}
}

// WithContext sets the context used for command evaluation.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(m.styles.Banner.Render("Interactive hero browser")),
		tea.Println(m.styles.Muted.Render("Type 'help' for commands, 'exit' to leave.")),
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()
			m.busy = true
			echo := tea.Println(m.styles.Prompt.Render("> ") + line)
			return m, tea.Batch(echo, m.evalCmd(line))
		}

	case resultMsg:
		m.busy = false
		var cmds []tea.Cmd
		if msg.result.Output != "" {
			out := msg.result.Output
			if msg.result.IsError {
				out = m.styles.Error.Render(out)
			}
			cmds = append(cmds, tea.Println(out))
		}
		if msg.result.Quit {
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model. Only the prompt is managed; history lives
// in the terminal scrollback.
func (m *Model) View() string {
	if m.busy {
		return m.styles.Muted.Render("...")
	}
	return m.input.View()
}

// evalCmd evaluates one line off the update loop.
func (m *Model) evalCmd(line string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.eval.Eval(m.ctx, line)}
	}
}
