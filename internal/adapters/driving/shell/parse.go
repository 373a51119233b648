package shell

import (
	"fmt"
	"strings"

	"github.com/heropedia/heropedia/internal/core/domain"
)

// UsageError reports malformed command syntax. The shell prints it and
// keeps the loop running; it never terminates the session.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ParseCriteria builds filter criteria from "key=value" tokens as typed
// after the find command. Underscores in a name value read as spaces so
// multi-word names survive tokenisation. Role values are
// comma-separated.
func ParseCriteria(args []string) (domain.FilterCriteria, error) {
	var criteria domain.FilterCriteria

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return domain.FilterCriteria{}, usageErrorf("criterion %q is missing '=', expected key=value", arg)
		}
		if value == "" {
			return domain.FilterCriteria{}, usageErrorf("criterion %q has an empty value", arg)
		}

		switch strings.ToLower(key) {
		case "name":
			criteria.Name = strings.ReplaceAll(value, "_", " ")
		case "attribute", "attr":
			attr := domain.ParseAttribute(value)
			if attr == domain.AttributeUnknown {
				return domain.FilterCriteria{}, usageErrorf(
					"unknown attribute %q, expected Strength, Agility or Intelligence", value)
			}
			criteria.Attribute = attr
		case "role", "roles":
			for _, role := range strings.Split(value, ",") {
				role = strings.TrimSpace(strings.ReplaceAll(role, "_", " "))
				if role != "" {
					criteria.Roles = append(criteria.Roles, role)
				}
			}
		case "attack":
			attack := domain.ParseAttackType(value)
			if attack == domain.AttackUnknown {
				return domain.FilterCriteria{}, usageErrorf(
					"unknown attack type %q, expected Melee or Ranged", value)
			}
			criteria.Attack = attack
		default:
			return domain.FilterCriteria{}, usageErrorf(
				"unknown criterion %q, expected name, attribute, role or attack", key)
		}
	}

	return criteria, nil
}

// nameCriteria treats the remaining words of a bio/info command as one
// hero name or key, joined verbatim so multi-word names and
// underscore-bearing keys both match exactly.
func nameCriteria(words []string) (domain.FilterCriteria, error) {
	if len(words) == 0 {
		return domain.FilterCriteria{}, usageErrorf("expected a hero name or key")
	}
	return domain.FilterCriteria{Name: strings.Join(words, " ")}, nil
}
