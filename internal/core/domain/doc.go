// Package domain defines the core business entities for Heropedia.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Hero: A merged hero record (feed fields + page-derived fields)
//   - Feed: The hero-picker feed, keyed by internal hero key
//   - FilterCriteria: A parsed filter query against a hero collection
//   - Language: A display name / query tag pair scraped from the page
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
