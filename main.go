package main

import (
	"fmt"
	"os"
	"time"

	"github.com/heropedia/heropedia/internal/adapters/driven/config/file"
	"github.com/heropedia/heropedia/internal/adapters/driven/snapshot"
	"github.com/heropedia/heropedia/internal/adapters/driven/valve"
	"github.com/heropedia/heropedia/internal/adapters/driving/cli"
	"github.com/heropedia/heropedia/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --config-dir decides where the config store lives, so it has to
	// be read before cobra parses flags.
	configDir := cli.ConfigDirFromArgs(os.Args[1:])

	settings, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	clientOpts := []valve.Option{
		valve.WithPageURL(settings.GetString("fetch.page_url")),
		valve.WithFeedURL(settings.GetString("fetch.feed_url")),
	}
	if secs := settings.GetInt("fetch.timeout_seconds"); secs > 0 {
		clientOpts = append(clientOpts, valve.WithTimeout(time.Duration(secs)*time.Second))
	}
	client := valve.NewClient(clientOpts...)

	cacheDir := settings.GetString("cache.dir")
	if cacheDir == "" {
		cacheDir = configDir
	}
	snapshots, err := snapshot.NewStore(cacheDir)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}

	catalog := services.NewCatalog(client, snapshots, client).
		WithLanguage(settings.GetString("language"))

	cli.SetConfig(&cli.Config{
		Catalog:  catalog,
		Settings: settings,
	})

	return cli.Execute()
}
