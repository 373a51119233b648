// Package valve fetches hero data from the Dota 2 website: the heroes
// listing page (HTML) and the hero-picker feed (JSON). It implements
// the driven.Fetcher and driven.IconFetcher ports with request
// timeouts, retries for transient failures, and a proactive
// token-bucket throttle.
package valve
