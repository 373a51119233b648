package driving

import (
	"context"

	"github.com/heropedia/heropedia/internal/core/domain"
)

// CatalogService provides the merged hero catalogue to external actors.
type CatalogService interface {
	// Heroes builds the full hero collection for the active language,
	// ordered by key. A missing page fragment surfaces as an error
	// wrapping domain.ErrNoFragment alongside the heroes built so far.
	Heroes(ctx context.Context) ([]domain.Hero, error)

	// Find returns the heroes matching all set criteria, preserving
	// collection order.
	Find(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Hero, error)

	// FindFirst returns the first matching hero, or domain.ErrNotFound.
	FindFirst(ctx context.Context, criteria domain.FilterCriteria) (domain.Hero, error)

	// Language returns the active language tag; empty means English.
	Language() string

	// SetLanguage switches the active language, refetching the cached
	// page and feed when the tag differs. Identical tags are a no-op.
	SetLanguage(ctx context.Context, language string) error

	// Languages lists the languages offered by the heroes page.
	Languages(ctx context.Context) ([]domain.Language, error)

	// SaveSnapshot writes the current cache state to disk, fetching any
	// missing payload first.
	SaveSnapshot(ctx context.Context) error

	// LoadSnapshot seeds the cache from disk. A missing snapshot returns
	// domain.ErrSnapshotUnavailable and leaves the cache untouched.
	LoadSnapshot(ctx context.Context) error

	// SaveIcon downloads a hero's portrait to the given path. An empty
	// path defaults to "<key>.png".
	SaveIcon(ctx context.Context, hero domain.Hero, path string) error
}
