package driven

import (
	"context"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/htmldoc"
)

// Snapshot is the cache state captured on disk: the feed, the parsed
// page, and the language both were fetched under.
type Snapshot struct {
	Feed     domain.Feed
	Page     *htmldoc.Document
	Language string
}

// SnapshotStore persists and restores the cache snapshot as a pair of
// flat files (feed serialisation + page dump with a language marker).
type SnapshotStore interface {
	// Save writes the snapshot, overwriting existing files. Write
	// failures surface to the caller.
	Save(ctx context.Context, snap Snapshot) error

	// Load reads the snapshot. Both files must be readable: any failure
	// returns domain.ErrSnapshotUnavailable with no partial result.
	Load(ctx context.Context) (Snapshot, error)
}
