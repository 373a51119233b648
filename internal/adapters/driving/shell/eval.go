package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/core/ports/driving"
)

const helpText = `Commands:
  list                      List all heroes
  bio <name>                Show a hero's biography
  info <name>               Show a one-line hero summary
  find <key=value> ...      Filter heroes by criteria
  help                      Show this help
  exit, quit                Leave the browser

Find criteria (all supplied criteria must match):
  name=<name or key>        Exact match; underscores read as spaces
  attribute=<value>         Strength, Agility or Intelligence
  role=<role,role,...>      Hero must have every listed role
  attack=<value>            Melee or Ranged

Examples:
  find role=Carry,Durable attribute=Strength attack=Melee
  bio Windrunner
  info npc_dota_hero_naga_siren`

// Evaluator executes shell commands against the catalogue.
type Evaluator struct {
	catalog driving.CatalogService
}

// NewEvaluator creates a command evaluator.
func NewEvaluator(catalog driving.CatalogService) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Result is the outcome of one evaluated line.
type Result struct {
	// Output is the text to print, already newline-joined.
	Output string

	// IsError marks output that should render in the error style.
	IsError bool

	// Quit requests the loop to end.
	Quit bool
}

// Eval executes one input line. Errors never escape: every failure,
// from a typo to a network fault, comes back as a printable Result so
// the loop always continues.
func (e *Evaluator) Eval(ctx context.Context, line string) Result {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Result{}
	}

	command, args := strings.ToLower(words[0]), words[1:]
	switch command {
	case "exit", "quit":
		return Result{Output: "Bye.", Quit: true}
	case "help", "?":
		return Result{Output: helpText}
	case "list", "l":
		return e.list(ctx)
	case "bio", "b":
		return e.bio(ctx, args)
	case "find", "search", "f":
		return e.find(ctx, args)
	case "info", "i", "about":
		return e.info(ctx, args)
	default:
		return errResult(fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.", command))
	}
}

func (e *Evaluator) list(ctx context.Context) Result {
	heroes, err := e.catalog.Heroes(ctx)
	if err != nil {
		return failure(err)
	}

	lines := make([]string, 0, len(heroes))
	for _, h := range heroes {
		lines = append(lines, h.String())
	}
	return Result{Output: strings.Join(lines, "\n")}
}

func (e *Evaluator) bio(ctx context.Context, args []string) Result {
	criteria, err := nameCriteria(args)
	if err != nil {
		return failure(err)
	}

	hero, err := e.catalog.FindFirst(ctx, criteria)
	if errors.Is(err, domain.ErrNotFound) {
		return errResult(fmt.Sprintf("Hero %q not found.", criteria.Name))
	}
	if err != nil {
		return failure(err)
	}

	return Result{Output: fmt.Sprintf("%s\n%s\n%s", hero.Name, strings.Repeat("-", 20), hero.Bio)}
}

func (e *Evaluator) info(ctx context.Context, args []string) Result {
	criteria, err := nameCriteria(args)
	if err != nil {
		return failure(err)
	}

	hero, err := e.catalog.FindFirst(ctx, criteria)
	if errors.Is(err, domain.ErrNotFound) {
		return errResult(fmt.Sprintf("Hero %q not found.", criteria.Name))
	}
	if err != nil {
		return failure(err)
	}

	return Result{Output: hero.Summary()}
}

func (e *Evaluator) find(ctx context.Context, args []string) Result {
	criteria, err := ParseCriteria(args)
	if err != nil {
		return failure(err)
	}

	heroes, err := e.catalog.Find(ctx, criteria)
	if err != nil {
		return failure(err)
	}
	if len(heroes) == 0 {
		return Result{Output: "No heroes match."}
	}

	lines := make([]string, 0, len(heroes))
	for _, h := range heroes {
		lines = append(lines, h.String())
	}
	return Result{Output: strings.Join(lines, "\n")}
}

func errResult(msg string) Result {
	return Result{Output: msg, IsError: true}
}

// failure renders an error as a printable result. Usage errors show
// their message with a help hint; everything else is reported verbatim.
func failure(err error) Result {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return errResult(usageErr.Message + " (type 'help' for syntax)")
	}
	return errResult("Error: " + err.Error())
}
