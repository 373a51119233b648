// Package cli implements the command-line interface for Heropedia.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heropedia/heropedia/internal/core/ports/driven"
	"github.com/heropedia/heropedia/internal/core/ports/driving"
	"github.com/heropedia/heropedia/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "0.1.0"

// Config holds the wired services the commands run against.
type Config struct {
	Catalog  driving.CatalogService
	Settings driven.ConfigStore
}

var (
	catalogService driving.CatalogService
	settingsStore  driven.ConfigStore

	verbose   bool
	language  string
	offline   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "heropedia",
	Short: "Browse the Dota 2 hero roster",
	Long: `Heropedia merges the Dota 2 heroes page with the hero picker feed
into a browsable catalogue of hero records.

Run without a subcommand to start the interactive browser, or use the
subcommands for one-shot scripted output.`,
	SilenceUsage: true,
	RunE:         runShell,
}

// SetConfig injects the services built in main. Call before Execute.
func SetConfig(config *Config) {
	if config == nil {
		return
	}
	catalogService = config.Catalog
	settingsStore = config.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ConfigDirFromArgs extracts the --config-dir value ahead of flag
// parsing. The services are wired in main before cobra runs, so the
// flag has to be read early; it stays registered on the root command
// for help output and validation.
func ConfigDirFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config-dir" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config-dir="):
			return strings.TrimPrefix(arg, "--config-dir=")
		}
	}
	return ""
}

func init() {
	rootCmd.PersistentPreRunE = initServices
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&language, "lang", "l", "", "content language tag, e.g. german (persisted as the new default)")
	flags.BoolVarP(&offline, "offline", "r", false, "seed the catalogue from the disk snapshot before any network fetch")
	flags.StringVar(&configDir, "config-dir", "", "directory holding config.toml and cached snapshots")
}

// initServices applies the persistent flags before any command runs.
// The --config-dir flag is consumed in main, since the services must be
// wired before cobra parses flags.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ctx := cmd.Context()

	if rootCmd.PersistentFlags().Changed("lang") {
		if err := catalogService.SetLanguage(ctx, language); err != nil {
			return fmt.Errorf("setting language: %w", err)
		}
		if settingsStore != nil {
			if err := settingsStore.Set("language", language); err == nil {
				if err := settingsStore.Save(); err != nil {
					logger.Warn("could not persist language: %v", err)
				}
			}
		}
	}

	if offline {
		if err := catalogService.LoadSnapshot(ctx); err != nil {
			logger.Warn("snapshot unavailable, falling back to network: %v", err)
		}
	}

	return nil
}
