// Package file provides a TOML file-backed implementation of the
// driven.ConfigStore port. Configuration lives at
// ~/.heropedia/config.toml by default; nested tables flatten into
// dot-notation keys (e.g. "fetch.page_url").
//
// Recognised keys:
//
//   - language: default language tag applied at startup
//   - cache.dir: directory for snapshot files
//   - fetch.page_url: heroes page URL override
//   - fetch.feed_url: hero-picker feed URL override
//   - fetch.timeout_seconds: HTTP request timeout
package file
