// Package snapshot persists the catalogue cache as a pair of flat
// files: the feed as JSON and the heroes page as an HTML dump carrying
// a LANGUAGE comment marker inside its head. Implements
// driven.SnapshotStore.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/core/ports/driven"
	"github.com/heropedia/heropedia/internal/htmldoc"
	"github.com/heropedia/heropedia/internal/logger"
)

const (
	// FeedFile is the default feed snapshot filename.
	FeedFile = "cached_feed.json"

	// PageFile is the default page snapshot filename.
	PageFile = "cached_page.html"

	// LanguageMarker prefixes the language comment embedded in the page
	// dump.
	LanguageMarker = "LANGUAGE="
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Store reads and writes the snapshot file pair.
type Store struct {
	feedPath string
	pagePath string
}

// NewStore creates a snapshot store under dir, using the default
// filenames. If dir is empty, defaults to ~/.heropedia.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".heropedia")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{
		feedPath: filepath.Join(dir, FeedFile),
		pagePath: filepath.Join(dir, PageFile),
	}, nil
}

// NewStoreWithPaths creates a snapshot store with explicit file paths.
func NewStoreWithPaths(feedPath, pagePath string) *Store {
	return &Store{feedPath: feedPath, pagePath: pagePath}
}

// FeedPath returns the feed snapshot file path.
func (s *Store) FeedPath() string { return s.feedPath }

// PagePath returns the page snapshot file path.
func (s *Store) PagePath() string { return s.pagePath }

// Save writes both snapshot files, overwriting existing ones. The
// active language is recorded as a comment inside the page head so a
// later Load can restore it without a side file.
func (s *Store) Save(_ context.Context, snap driven.Snapshot) error {
	feedData, err := json.MarshalIndent(snap.Feed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}

	snap.Page.SetHeadComment(LanguageMarker, LanguageMarker+snap.Language)
	var pageBuf bytes.Buffer
	if err := snap.Page.Render(&pageBuf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	if err := os.WriteFile(s.feedPath, feedData, 0644); err != nil {
		return fmt.Errorf("write feed snapshot: %w", err)
	}
	if err := os.WriteFile(s.pagePath, pageBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write page snapshot: %w", err)
	}

	logger.Info("snapshot saved (%s, %s)", s.feedPath, s.pagePath)
	return nil
}

// Load reads both snapshot files. The pair is all-or-nothing: any read
// or parse failure returns domain.ErrSnapshotUnavailable and no partial
// snapshot, so the caller's cache stays untouched.
func (s *Store) Load(_ context.Context) (driven.Snapshot, error) {
	feedData, err := os.ReadFile(s.feedPath)
	if err != nil {
		return driven.Snapshot{}, unavailable("read feed snapshot", err)
	}
	pageData, err := os.ReadFile(s.pagePath)
	if err != nil {
		return driven.Snapshot{}, unavailable("read page snapshot", err)
	}

	var feed domain.Feed
	if err := json.Unmarshal(feedData, &feed); err != nil {
		return driven.Snapshot{}, unavailable("decode feed snapshot", err)
	}

	page, err := htmldoc.Parse(bytes.NewReader(pageData))
	if err != nil {
		return driven.Snapshot{}, unavailable("parse page snapshot", err)
	}

	language := ""
	if marker, ok := page.Comment(LanguageMarker); ok {
		language = strings.TrimPrefix(marker, LanguageMarker)
	} else {
		logger.Warn("page snapshot has no language marker, assuming default")
	}

	return driven.Snapshot{Feed: feed, Page: page, Language: language}, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrSnapshotUnavailable, err)
}
