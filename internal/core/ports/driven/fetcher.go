package driven

import (
	"context"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/htmldoc"
)

// Fetcher retrieves upstream hero data. The language parameter is the
// site's query tag; empty means the site default (English).
type Fetcher interface {
	// FetchPage retrieves and parses the heroes listing page.
	FetchPage(ctx context.Context, language string) (*htmldoc.Document, error)

	// FetchFeed retrieves and decodes the hero-picker feed.
	FetchFeed(ctx context.Context, language string) (domain.Feed, error)
}

// IconFetcher downloads a hero portrait image.
type IconFetcher interface {
	// FetchIcon retrieves the image bytes at the given URL.
	FetchIcon(ctx context.Context, url string) ([]byte, error)
}
