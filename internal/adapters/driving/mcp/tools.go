package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/heropedia/heropedia/internal/core/domain"
)

// FindInput is the input schema for the find_heroes tool.
type FindInput struct {
	Name      string   `json:"name,omitempty" jsonschema:"exact hero name or internal key to match"`
	Attribute string   `json:"attribute,omitempty" jsonschema:"primary attribute: Strength, Agility or Intelligence"`
	Roles     []string `json:"roles,omitempty" jsonschema:"roles the hero must all have, e.g. Carry, Durable"`
	Attack    string   `json:"attack,omitempty" jsonschema:"attack type: Melee or Ranged"`
}

// FindOutput is the output schema for the find_heroes tool.
type FindOutput struct {
	Heroes []HeroOutput `json:"heroes"`
	Count  int          `json:"count"`
}

// HeroOutput represents a single hero record.
type HeroOutput struct {
	Name      string   `json:"name"`
	Key       string   `json:"key"`
	Icon      string   `json:"icon,omitempty"`
	Attribute string   `json:"attribute,omitempty"`
	Faction   string   `json:"faction,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Attack    string   `json:"attack,omitempty"`
}

// BioInput is the input schema for the hero_bio tool.
type BioInput struct {
	Name string `json:"name" jsonschema:"exact hero name or internal key"`
}

// BioOutput is the output schema for the hero_bio tool.
type BioOutput struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Bio  string `json:"bio"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_heroes",
		Description: "List every hero in the catalogue",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_heroes",
		Description: "Find heroes matching name, attribute, roles and attack type",
	}, s.handleFind)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hero_bio",
		Description: "Get a hero's biography by name or key",
	}, s.handleBio)
}

// handleList handles the list_heroes tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FindOutput, error) {
	heroes, err := s.ports.Catalog.Heroes(ctx)
	if err != nil {
		return nil, FindOutput{}, err
	}
	return nil, heroOutput(heroes), nil
}

// handleFind handles the find_heroes tool invocation.
func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindInput,
) (*mcp.CallToolResult, FindOutput, error) {
	criteria, err := criteriaFromInput(input)
	if err != nil {
		return nil, FindOutput{}, err
	}

	heroes, err := s.ports.Catalog.Find(ctx, criteria)
	if err != nil {
		return nil, FindOutput{}, err
	}
	return nil, heroOutput(heroes), nil
}

// handleBio handles the hero_bio tool invocation.
func (s *Server) handleBio(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BioInput,
) (*mcp.CallToolResult, BioOutput, error) {
	if input.Name == "" {
		return nil, BioOutput{}, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	hero, err := s.ports.Catalog.FindFirst(ctx, domain.FilterCriteria{Name: input.Name})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, BioOutput{}, fmt.Errorf("hero %q: %w", input.Name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, BioOutput{}, err
	}

	return nil, BioOutput{Name: hero.Name, Key: hero.Key, Bio: hero.Bio}, nil
}

// criteriaFromInput validates the tool input into filter criteria.
func criteriaFromInput(input FindInput) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		Name:  input.Name,
		Roles: input.Roles,
	}

	if input.Attribute != "" {
		attr := domain.ParseAttribute(input.Attribute)
		if attr == domain.AttributeUnknown {
			return domain.FilterCriteria{}, fmt.Errorf("unknown attribute %q: %w", input.Attribute, domain.ErrInvalidInput)
		}
		criteria.Attribute = attr
	}

	if input.Attack != "" {
		attack := domain.ParseAttackType(input.Attack)
		if attack == domain.AttackUnknown {
			return domain.FilterCriteria{}, fmt.Errorf("unknown attack type %q: %w", input.Attack, domain.ErrInvalidInput)
		}
		criteria.Attack = attack
	}

	return criteria, nil
}

func heroOutput(heroes []domain.Hero) FindOutput {
	output := FindOutput{
		Heroes: make([]HeroOutput, len(heroes)),
		Count:  len(heroes),
	}
	for i, h := range heroes {
		output.Heroes[i] = HeroOutput{
			Name:      h.Name,
			Key:       h.Key,
			Icon:      h.Icon,
			Attribute: string(h.Attribute),
			Faction:   string(h.Faction),
			Roles:     h.Roles,
			Attack:    string(h.Attack),
		}
	}
	return output
}
