package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/core/ports/driving"
)

// stubCatalog implements driving.CatalogService for command tests.
type stubCatalog struct {
	heroes    []domain.Hero
	languages []domain.Language
	language  string
	err       error

	snapshotSaves int
	snapshotLoads int
	savedIcons    []string
}

var _ driving.CatalogService = (*stubCatalog)(nil)

func (s *stubCatalog) Heroes(context.Context) ([]domain.Hero, error) {
	return s.heroes, s.err
}

func (s *stubCatalog) Find(_ context.Context, criteria domain.FilterCriteria) ([]domain.Hero, error) {
	if s.err != nil {
		return nil, s.err
	}
	var found []domain.Hero
	for _, h := range s.heroes {
		if criteria.Matches(h) {
			found = append(found, h)
		}
	}
	return found, nil
}

func (s *stubCatalog) FindFirst(_ context.Context, criteria domain.FilterCriteria) (domain.Hero, error) {
	if s.err != nil {
		return domain.Hero{}, s.err
	}
	for _, h := range s.heroes {
		if criteria.Matches(h) {
			return h, nil
		}
	}
	return domain.Hero{}, domain.ErrNotFound
}

func (s *stubCatalog) Language() string { return s.language }

func (s *stubCatalog) SetLanguage(_ context.Context, language string) error {
	s.language = language
	return s.err
}

func (s *stubCatalog) Languages(context.Context) ([]domain.Language, error) {
	return s.languages, s.err
}

func (s *stubCatalog) SaveSnapshot(context.Context) error {
	s.snapshotSaves++
	return s.err
}

func (s *stubCatalog) LoadSnapshot(context.Context) error {
	s.snapshotLoads++
	return s.err
}

func (s *stubCatalog) SaveIcon(_ context.Context, _ domain.Hero, path string) error {
	s.savedIcons = append(s.savedIcons, path)
	return s.err
}

func testHeroes() []domain.Hero {
	return []domain.Hero{
		{
			Name: "Axe", Key: "npc_dota_hero_axe", Icon: "http://cdn/axe.png",
			Attribute: domain.AttributeStrength, Faction: domain.FactionRadiant,
			Attack: domain.AttackMelee, Roles: []string{"Carry", "Durable"},
			Bio: "Mogul Khan was a soldier.",
		},
		{
			Name: "Naga Siren", Key: "npc_dota_hero_naga_siren",
			Attribute: domain.AttributeAgility, Faction: domain.FactionDire,
			Attack: domain.AttackMelee, Roles: []string{"Pusher"},
			Bio: "Slithice sings.",
		},
	}
}

// setupTestServices swaps in a stub catalogue and returns a cleanup
// that restores the previous services and resets persistent flags.
func setupTestServices() (*stubCatalog, func()) {
	oldCatalog, oldSettings := catalogService, settingsStore
	stub := &stubCatalog{heroes: testHeroes()}
	catalogService = stub
	settingsStore = nil
	return stub, func() {
		catalogService, settingsStore = oldCatalog, oldSettings
		verbose, language, offline, configDir = false, "", false, ""
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
		})
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "heropedia", rootCmd.Use)
}

func TestRootCmd_ServiceNotConfigured(t *testing.T) {
	oldCatalog := catalogService
	catalogService = nil
	defer func() {
		catalogService = oldCatalog
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog service not configured")
}

func TestRootCmd_LangFlagSetsLanguage(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-l", "german", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "german", stub.language)
}

func TestRootCmd_OfflineSeedsFromSnapshot(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-r", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 1, stub.snapshotLoads)
}

func TestRootCmd_OfflineFallsBackOnMissingSnapshot(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()
	stub.err = domain.ErrSnapshotUnavailable

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-r", "version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	// A missing snapshot must not abort the run.
	require.NoError(t, err)
	assert.Equal(t, 1, stub.snapshotLoads)
}

func TestConfigDirFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"list", "--json"}, ""},
		{"separate value", []string{"--config-dir", "/tmp/hp", "list"}, "/tmp/hp"},
		{"equals form", []string{"--config-dir=/tmp/hp"}, "/tmp/hp"},
		{"trailing flag without value", []string{"list", "--config-dir"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigDirFromArgs(tt.args))
		})
	}
}
