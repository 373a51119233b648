package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heropedia/heropedia/internal/core/domain"
)

func testHeroes() []domain.Hero {
	return []domain.Hero{
		{
			Name:      "Axe",
			Key:       "npc_dota_hero_axe",
			Attribute: domain.AttributeStrength,
			Faction:   domain.FactionRadiant,
			Attack:    domain.AttackMelee,
			Roles:     []string{"Carry", "Durable"},
		},
		{
			Name:      "Lina",
			Key:       "npc_dota_hero_lina",
			Attribute: domain.AttributeIntelligence,
			Faction:   domain.FactionRadiant,
			Attack:    domain.AttackRanged,
			Roles:     []string{"Carry", "Nuker"},
		},
		{
			Name:      "Mirana",
			Key:       "npc_dota_hero_mirana",
			Attribute: domain.AttributeAgility,
			Faction:   domain.FactionDire,
			Attack:    domain.AttackRanged,
			Roles:     []string{"Carry", "Initiator"},
		},
	}
}

func TestFindHeroes_NoCriteria(t *testing.T) {
	heroes := testHeroes()

	found := FindHeroes(heroes, domain.FilterCriteria{})

	// Unfiltered: same collection, order and length preserved.
	require.Len(t, found, len(heroes))
	for i := range heroes {
		assert.Equal(t, heroes[i].Key, found[i].Key)
	}
}

func TestFindHeroes_ByRoles(t *testing.T) {
	heroes := testHeroes()

	tests := []struct {
		name     string
		roles    []string
		expected []string
	}{
		{
			name:     "single shared role",
			roles:    []string{"Carry"},
			expected: []string{"npc_dota_hero_axe", "npc_dota_hero_lina", "npc_dota_hero_mirana"},
		},
		{
			name:     "role pair",
			roles:    []string{"Carry", "Durable"},
			expected: []string{"npc_dota_hero_axe"},
		},
		{
			name:     "unsatisfiable pair",
			roles:    []string{"Durable", "Initiator"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindHeroes(heroes, domain.FilterCriteria{Roles: tt.roles})
			keys := make([]string, 0, len(found))
			for _, h := range found {
				keys = append(keys, h.Key)
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestFindHeroes_ByNameOrKey(t *testing.T) {
	heroes := testHeroes()

	byName := FindHeroes(heroes, domain.FilterCriteria{Name: "Lina"})
	require.Len(t, byName, 1)
	assert.Equal(t, "npc_dota_hero_lina", byName[0].Key)

	byKey := FindHeroes(heroes, domain.FilterCriteria{Name: "npc_dota_hero_lina"})
	require.Len(t, byKey, 1)
	assert.Equal(t, "Lina", byKey[0].Name)
}

func TestFindHeroes_CombinedCriteria(t *testing.T) {
	heroes := testHeroes()

	found := FindHeroes(heroes, domain.FilterCriteria{
		Roles:  []string{"Carry"},
		Attack: domain.AttackRanged,
	})

	require.Len(t, found, 2)
	assert.Equal(t, "Lina", found[0].Name)
	assert.Equal(t, "Mirana", found[1].Name)
}

func TestFindFirstHero_Match(t *testing.T) {
	heroes := testHeroes()

	hero, err := FindFirstHero(heroes, domain.FilterCriteria{Attack: domain.AttackRanged})
	require.NoError(t, err)
	assert.Equal(t, "Lina", hero.Name)
}

func TestFindFirstHero_NotFound(t *testing.T) {
	heroes := testHeroes()

	_, err := FindFirstHero(heroes, domain.FilterCriteria{Name: "nonexistent_key"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindFirstHero_EmptyCollection(t *testing.T) {
	_, err := FindFirstHero(nil, domain.FilterCriteria{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
