package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/core/ports/driven"
	"github.com/heropedia/heropedia/internal/core/ports/driving"
	"github.com/heropedia/heropedia/internal/htmldoc"
	"github.com/heropedia/heropedia/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// Layout column classes on the heroes page. Which column encloses a
// hero's fragment determines its primary attribute.
const (
	colStrength     = "heroColLeft"
	colAgility      = "heroColMiddle"
	colIntelligence = "heroColRight"
)

// Catalog owns the page/feed cache and merges both sources into hero
// records. The cache is explicit state threaded through construction,
// never package-level. A mutex guards it because the MCP adapter can
// drive the catalogue from concurrent tool calls.
type Catalog struct {
	mu        sync.Mutex
	fetcher   driven.Fetcher
	snapshots driven.SnapshotStore
	icons     driven.IconFetcher

	// Cached state. page and feed, when non-nil, were fetched under
	// language. A language change invalidates both before refetch.
	language string
	page     *htmldoc.Document
	feed     domain.Feed
}

// NewCatalog creates a catalogue service. The snapshot store and icon
// fetcher are optional (can be nil); the corresponding operations
// report domain.ErrInvalidInput when unconfigured.
func NewCatalog(fetcher driven.Fetcher, snapshots driven.SnapshotStore, icons driven.IconFetcher) *Catalog {
	return &Catalog{
		fetcher:   fetcher,
		snapshots: snapshots,
		icons:     icons,
	}
}

// WithLanguage sets the initial language without fetching anything.
// Meant for construction time, before the catalogue is shared;
// SetLanguage handles switches on a live catalogue.
func (c *Catalog) WithLanguage(language string) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = language
	return c
}

// Language returns the active language tag; empty means English.
func (c *Catalog) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// SetLanguage switches the active language. A differing tag invalidates
// the cache and eagerly refetches both payloads; an identical tag
// (including the empty default) performs no fetch.
func (c *Catalog) SetLanguage(ctx context.Context, language string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if language == c.language {
		logger.Debug("language already %q, keeping cache", language)
		return nil
	}

	logger.Info("switching language %q -> %q", c.language, language)
	c.language = language
	c.page = nil
	c.feed = nil

	if _, err := c.pageLocked(ctx); err != nil {
		return err
	}
	_, err := c.feedLocked(ctx)
	return err
}

// Page returns the parsed heroes page for the given language. Empty
// means the active language. A differing non-empty language invalidates
// both cached payloads before the fetch.
func (c *Catalog) Page(ctx context.Context, language string) (*htmldoc.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateForLocked(language)
	return c.pageLocked(ctx)
}

// Feed returns the hero-picker feed for the given language, symmetric
// to Page.
func (c *Catalog) Feed(ctx context.Context, language string) (domain.Feed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateForLocked(language)
	return c.feedLocked(ctx)
}

// invalidateForLocked drops both payloads when a differing non-empty
// language is requested, keeping the cache invariant: page and feed
// always belong to c.language.
func (c *Catalog) invalidateForLocked(language string) {
	if language == "" || language == c.language {
		return
	}
	logger.Debug("cache invalidated: language %q requested, had %q", language, c.language)
	c.language = language
	c.page = nil
	c.feed = nil
}

func (c *Catalog) pageLocked(ctx context.Context) (*htmldoc.Document, error) {
	if c.page != nil {
		return c.page, nil
	}
	page, err := c.fetcher.FetchPage(ctx, c.language)
	if err != nil {
		return nil, fmt.Errorf("heroes page: %w", err)
	}
	c.page = page
	return page, nil
}

func (c *Catalog) feedLocked(ctx context.Context) (domain.Feed, error) {
	if c.feed != nil {
		return c.feed, nil
	}
	feed, err := c.fetcher.FetchFeed(ctx, c.language)
	if err != nil {
		return nil, fmt.Errorf("hero feed: %w", err)
	}
	c.feed = feed
	return feed, nil
}

// Heroes builds one hero record per feed key, ordered by key. If a key
// has no matching page fragment, the heroes merged so far are returned
// together with an error wrapping domain.ErrNoFragment; the merge does
// not silently skip.
func (c *Catalog) Heroes(ctx context.Context) ([]domain.Hero, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger.Section("Hero Merge")

	feed, err := c.feedLocked(ctx)
	if err != nil {
		return nil, err
	}
	page, err := c.pageLocked(ctx)
	if err != nil {
		return nil, err
	}

	keys := feed.Keys()
	sort.Strings(keys)

	heroes := make([]domain.Hero, 0, len(keys))
	for _, key := range keys {
		hero, err := mergeHero(page, key, feed[key])
		if err != nil {
			return heroes, err
		}
		heroes = append(heroes, hero)
	}

	logger.Info("merged %d heroes (language %q)", len(heroes), c.language)
	return heroes, nil
}

// Find returns the heroes matching all set criteria, in key order.
func (c *Catalog) Find(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Hero, error) {
	heroes, err := c.Heroes(ctx)
	if err != nil {
		return nil, err
	}
	return FindHeroes(heroes, criteria), nil
}

// FindFirst returns the first matching hero, or domain.ErrNotFound.
func (c *Catalog) FindFirst(ctx context.Context, criteria domain.FilterCriteria) (domain.Hero, error) {
	heroes, err := c.Heroes(ctx)
	if err != nil {
		return domain.Hero{}, err
	}
	return FindFirstHero(heroes, criteria)
}

// Languages scrapes the page's language menu: anchor text is the human
// name, the href's "l" query parameter is the tag the site expects.
func (c *Catalog) Languages(ctx context.Context) ([]domain.Language, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	page, err := c.pageLocked(ctx)
	if err != nil {
		return nil, err
	}

	items := page.FindAll(func(n *htmldoc.Node) bool {
		return n.Tag() == "a" && n.HasClass("languageItem")
	})

	languages := make([]domain.Language, 0, len(items))
	for _, item := range items {
		href, _ := item.Attr("href")
		languages = append(languages, domain.Language{
			Name: item.Text(),
			Tag:  languageTag(href),
		})
	}
	return languages, nil
}

// languageTag extracts the "l" query parameter from a language menu
// href such as "?l=german".
func languageTag(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return strings.TrimPrefix(href, "?l=")
	}
	return u.Query().Get("l")
}

// SaveSnapshot captures the cache to disk, fetching any missing payload
// first so a cold catalogue still produces a complete snapshot.
func (c *Catalog) SaveSnapshot(ctx context.Context) error {
	if c.snapshots == nil {
		return fmt.Errorf("snapshot store not configured: %w", domain.ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	feed, err := c.feedLocked(ctx)
	if err != nil {
		return err
	}
	page, err := c.pageLocked(ctx)
	if err != nil {
		return err
	}

	return c.snapshots.Save(ctx, driven.Snapshot{
		Feed:     feed,
		Page:     page,
		Language: c.language,
	})
}

// LoadSnapshot seeds the cache from disk. On any load failure the cache
// is left untouched and the error (wrapping
// domain.ErrSnapshotUnavailable for a missing snapshot) surfaces so the
// caller can fall back to the network.
func (c *Catalog) LoadSnapshot(ctx context.Context) error {
	if c.snapshots == nil {
		return fmt.Errorf("snapshot store not configured: %w", domain.ErrInvalidInput)
	}

	snap, err := c.snapshots.Load(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.feed = snap.Feed
	c.page = snap.Page
	c.language = snap.Language
	logger.Info("cache seeded from snapshot (language %q)", snap.Language)
	return nil
}

// SaveIcon downloads the hero's portrait to path, defaulting to
// "<key>.png" in the working directory.
func (c *Catalog) SaveIcon(ctx context.Context, hero domain.Hero, path string) error {
	if c.icons == nil {
		return fmt.Errorf("icon fetcher not configured: %w", domain.ErrInvalidInput)
	}
	if hero.Icon == "" {
		return fmt.Errorf("hero %s has no icon URL: %w", hero.Key, domain.ErrInvalidInput)
	}
	if path == "" {
		path = hero.Key + ".png"
	}

	data, err := c.icons.FetchIcon(ctx, hero.Icon)
	if err != nil {
		return fmt.Errorf("icon for %s: %w", hero.Key, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	logger.Info("saved icon for %s to %s", hero.Key, path)
	return nil
}

// mergeHero assembles one hero record from its feed entry and its
// fragment on the heroes page.
func mergeHero(page *htmldoc.Document, key string, entry domain.FeedEntry) (domain.Hero, error) {
	frag := page.Find(func(n *htmldoc.Node) bool {
		id, ok := n.Attr("id")
		return n.Tag() == "a" && ok && strings.Contains(id, key)
	})
	if frag == nil {
		return domain.Hero{}, fmt.Errorf("hero %q: %w", key, domain.ErrNoFragment)
	}

	hero := domain.Hero{
		Name:   entry.Name,
		Key:    key,
		Bio:    entry.Bio,
		Roles:  entry.Roles,
		Attack: domain.ParseAttackType(entry.Attack),
	}

	if img := frag.Descendant("img"); img != nil {
		hero.Icon, _ = img.Attr("src")
	}

	// The enclosing layout column determines the primary attribute.
	// Fragments outside a recognised column keep both attribute and
	// faction unset.
	column := frag.Ancestor(func(n *htmldoc.Node) bool {
		return n.HasClass(colStrength) || n.HasClass(colAgility) || n.HasClass(colIntelligence)
	})
	if column == nil {
		logger.Warn("hero %q not under a recognised layout column", key)
		return hero, nil
	}

	switch {
	case column.HasClass(colStrength):
		hero.Attribute = domain.AttributeStrength
	case column.HasClass(colAgility):
		hero.Attribute = domain.AttributeAgility
	case column.HasClass(colIntelligence):
		hero.Attribute = domain.AttributeIntelligence
	}

	// Radiant heroes are listed before Dire: a hero is Radiant exactly
	// when its column is the first element with that class attribute in
	// page order.
	class := column.Class()
	first := page.Find(func(n *htmldoc.Node) bool {
		return n.Tag() == column.Tag() && n.Class() == class
	})
	if column.Same(first) {
		hero.Faction = domain.FactionRadiant
	} else {
		hero.Faction = domain.FactionDire
	}

	return hero, nil
}
