package domain

// FilterCriteria describes a query against a hero collection. Zero-value
// fields are "don't care": a zero FilterCriteria matches every hero.
//
// Criteria are built by command parsers (shell, CLI flags, MCP input) so
// the filter engine stays independent of any command syntax.
type FilterCriteria struct {
	// Name matches either the display name or the key, exactly and
	// case-sensitively. Empty matches everything.
	Name string

	// Attribute matches the hero's primary attribute when set.
	Attribute Attribute

	// Roles, when non-empty, requires the hero's role set to be a
	// superset of these roles. Extra roles on the hero are fine.
	Roles []string

	// Attack matches the hero's attack type when set.
	Attack AttackType
}

// IsZero reports whether no criterion is set.
func (c FilterCriteria) IsZero() bool {
	return c.Name == "" && c.Attribute == AttributeUnknown &&
		len(c.Roles) == 0 && c.Attack == AttackUnknown
}

// Matches reports whether the hero satisfies ALL set criteria.
func (c FilterCriteria) Matches(h Hero) bool {
	if c.Name != "" && c.Name != h.Name && c.Name != h.Key {
		return false
	}
	if c.Attribute != AttributeUnknown && c.Attribute != h.Attribute {
		return false
	}
	if c.Attack != AttackUnknown && c.Attack != h.Attack {
		return false
	}
	return h.HasRoles(c.Roles)
}
