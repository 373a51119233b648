package domain

import (
	"fmt"
	"strings"
)

// Attribute is a hero's primary attribute, derived from which layout
// column of the heroes page contains the hero.
type Attribute string

const (
	// AttributeUnknown means the hero was not found under a recognised
	// layout column.
	AttributeUnknown Attribute = ""
	// AttributeStrength is the left column.
	AttributeStrength Attribute = "Strength"
	// AttributeAgility is the middle column.
	AttributeAgility Attribute = "Agility"
	// AttributeIntelligence is the right column.
	AttributeIntelligence Attribute = "Intelligence"
)

// Faction is the side a hero is listed under on the heroes page.
// Radiant heroes are listed before Dire heroes.
type Faction string

const (
	// FactionUnknown means the hero's section could not be classified.
	FactionUnknown Faction = ""
	// FactionRadiant is the first listed section.
	FactionRadiant Faction = "Radiant"
	// FactionDire is any later section.
	FactionDire Faction = "Dire"
)

// AttackType is a hero's attack type as reported by the feed.
type AttackType string

const (
	// AttackUnknown means the feed value was absent or not recognised
	// (the feed localises the string, so non-English feeds may not map).
	AttackUnknown AttackType = ""
	// AttackMelee is a melee hero.
	AttackMelee AttackType = "Melee"
	// AttackRanged is a ranged hero.
	AttackRanged AttackType = "Ranged"
)

// ParseAttackType maps a feed attack string onto an AttackType.
// Unrecognised values map to AttackUnknown.
func ParseAttackType(s string) AttackType {
	switch strings.TrimSpace(s) {
	case string(AttackMelee):
		return AttackMelee
	case string(AttackRanged):
		return AttackRanged
	default:
		return AttackUnknown
	}
}

// ParseAttribute maps a display string onto an Attribute.
// Unrecognised values map to AttributeUnknown.
func ParseAttribute(s string) Attribute {
	switch strings.TrimSpace(s) {
	case string(AttributeStrength):
		return AttributeStrength
	case string(AttributeAgility):
		return AttributeAgility
	case string(AttributeIntelligence):
		return AttributeIntelligence
	default:
		return AttributeUnknown
	}
}

// Hero is one playable character, merged from a feed entry and the
// hero's fragment on the heroes page. Heroes are value objects: they are
// built once per merge pass and never mutated afterwards.
type Hero struct {
	// Name is the localised display name. Usually unique, not guaranteed.
	Name string `json:"name"`

	// Key is the stable internal identifier (e.g. "npc_dota_hero_axe").
	// Unique across the collection for a given language.
	Key string `json:"key"`

	// Icon is the URL of the hero's portrait image.
	Icon string `json:"icon,omitempty"`

	// Attribute is the primary attribute derived from page layout.
	Attribute Attribute `json:"attribute,omitempty"`

	// Faction is Radiant or Dire, derived from page section order.
	Faction Faction `json:"faction,omitempty"`

	// Bio is the localised biography text.
	Bio string `json:"bio,omitempty"`

	// Roles is the ordered list of localised role tags.
	Roles []string `json:"roles,omitempty"`

	// Attack is the attack type reported by the feed.
	Attack AttackType `json:"attack,omitempty"`
}

// String renders the hero as "Name (key)".
func (h Hero) String() string {
	return fmt.Sprintf("%s (%s)", h.Name, h.Key)
}

// Summary renders a one-line overview: name, faction/attribute/attack,
// and the role list.
func (h Hero) Summary() string {
	return fmt.Sprintf("%s - %s/%s/%s - %s",
		h.Name, h.Faction, h.Attribute, h.Attack, strings.Join(h.Roles, ", "))
}

// HasRoles reports whether the hero's role set contains every role in
// want. An empty want always matches.
func (h Hero) HasRoles(want []string) bool {
	for _, w := range want {
		found := false
		for _, r := range h.Roles {
			if r == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FeedEntry is one hero's record in the hero-picker feed. Field tags
// follow the upstream JSON: role and attack strings are localised.
type FeedEntry struct {
	Name   string   `json:"name"`
	Bio    string   `json:"bio"`
	Roles  []string `json:"roles_l"`
	Attack string   `json:"atk_l"`
}

// Feed is the hero-picker feed, keyed by internal hero key.
type Feed map[string]FeedEntry

// Keys returns the feed's hero keys in unspecified order.
func (f Feed) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	return keys
}
