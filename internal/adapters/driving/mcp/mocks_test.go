package mcp

import (
	"context"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/core/ports/driving"
)

// mockCatalogService implements driving.CatalogService for tests.
type mockCatalogService struct {
	heroes   []domain.Hero
	language string
	err      error
}

var _ driving.CatalogService = (*mockCatalogService)(nil)

func (m *mockCatalogService) Heroes(context.Context) ([]domain.Hero, error) {
	return m.heroes, m.err
}

func (m *mockCatalogService) Find(_ context.Context, criteria domain.FilterCriteria) ([]domain.Hero, error) {
	if m.err != nil {
		return nil, m.err
	}
	var found []domain.Hero
	for _, h := range m.heroes {
		if criteria.Matches(h) {
			found = append(found, h)
		}
	}
	return found, nil
}

func (m *mockCatalogService) FindFirst(_ context.Context, criteria domain.FilterCriteria) (domain.Hero, error) {
	if m.err != nil {
		return domain.Hero{}, m.err
	}
	for _, h := range m.heroes {
		if criteria.Matches(h) {
			return h, nil
		}
	}
	return domain.Hero{}, domain.ErrNotFound
}

func (m *mockCatalogService) Language() string { return m.language }

func (m *mockCatalogService) SetLanguage(_ context.Context, language string) error {
	m.language = language
	return m.err
}

func (m *mockCatalogService) Languages(context.Context) ([]domain.Language, error) {
	return nil, m.err
}

func (m *mockCatalogService) SaveSnapshot(context.Context) error { return m.err }
func (m *mockCatalogService) LoadSnapshot(context.Context) error { return m.err }

func (m *mockCatalogService) SaveIcon(context.Context, domain.Hero, string) error {
	return m.err
}
