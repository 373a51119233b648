package services

import (
	"github.com/heropedia/heropedia/internal/core/domain"
)

// FindHeroes returns the heroes satisfying all set criteria, preserving
// input order. Zero criteria return the collection unchanged.
func FindHeroes(heroes []domain.Hero, criteria domain.FilterCriteria) []domain.Hero {
	if criteria.IsZero() {
		return heroes
	}

	found := make([]domain.Hero, 0, len(heroes))
	for _, h := range heroes {
		if criteria.Matches(h) {
			found = append(found, h)
		}
	}
	return found
}

// FindFirstHero returns the first hero satisfying the criteria, or
// domain.ErrNotFound. An empty result is a normal outcome, not a
// failure of the collection.
func FindFirstHero(heroes []domain.Hero, criteria domain.FilterCriteria) (domain.Hero, error) {
	for _, h := range heroes {
		if criteria.Matches(h) {
			return h, nil
		}
	}
	return domain.Hero{}, domain.ErrNotFound
}
