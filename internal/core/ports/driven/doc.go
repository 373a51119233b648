// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Fetcher: Fetches the heroes page and the hero-picker feed
//   - SnapshotStore: Persists and restores the cache snapshot
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - IconFetcher: Downloads hero portrait images. Without it, the icon
//     command is disabled.
//
// # Import Rules
//
//   - Can Import: domain and htmldoc packages only
//   - Cannot Import: Any adapter package
package driven
