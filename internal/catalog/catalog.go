// Package catalog assembles and serves the read-mostly skill catalog: the
// skill graph, role requirements, and duration estimates. A Catalog is built
// once at startup and never mutated afterwards, so any number of scoring and
// planning calls may read it concurrently.
package catalog

import (
	"fmt"
	"sort"

	"github.com/xmanojpx/SkillLens/internal/graph"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// UnknownRoleError indicates a role title absent from the catalog.
type UnknownRoleError struct {
	Title string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role: %s", e.Title)
}

// Catalog is the immutable bundle the readiness engine reads from.
type Catalog struct {
	graph     *graph.Graph
	roles     map[string]types.RoleRequirement
	durations map[string]int
}

// Graph returns the skill prerequisite graph.
func (c *Catalog) Graph() *graph.Graph {
	return c.graph
}

// Role returns the requirement set for a role title.
func (c *Catalog) Role(title string) (*types.RoleRequirement, error) {
	role, ok := c.roles[title]
	if !ok {
		return nil, &UnknownRoleError{Title: title}
	}
	return &role, nil
}

// Roles returns every role requirement, sorted by title.
func (c *Catalog) Roles() []types.RoleRequirement {
	out := make([]types.RoleRequirement, 0, len(c.roles))
	for _, role := range c.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Durations returns the skill duration table in weeks. Callers must treat the
// map as read-only.
func (c *Catalog) Durations() map[string]int {
	return c.durations
}

// Document is the on-disk JSON shape of a catalog, as validated by
// schemas/catalog.schema.json.
type Document struct {
	Skills        []types.Skill            `json:"skills"`
	Prerequisites []types.PrerequisiteEdge `json:"prerequisites"`
	Roles         []types.RoleRequirement  `json:"roles"`
	Durations     map[string]int           `json:"durations,omitempty"`
}

// FromDocument builds a Catalog from a parsed document. Graph invariants are
// enforced by the graph itself: duplicate skills, unknown edge endpoints, and
// cycle-forming edges all fail the build with their typed errors.
func FromDocument(doc *Document) (*Catalog, error) {
	g := graph.New()

	for _, skill := range doc.Skills {
		if skill.Tier <= 0 {
			skill.Tier = 1
		}
		if err := g.AddSkill(skill); err != nil {
			return nil, fmt.Errorf("catalog skill %q: %w", skill.Name, err)
		}
	}

	for _, edge := range doc.Prerequisites {
		importance := edge.Importance
		if importance == "" {
			importance = types.ImportanceRequired
		}
		if !importance.Valid() {
			return nil, fmt.Errorf("catalog edge %s -> %s: invalid importance %q",
				edge.Skill, edge.Prerequisite, importance)
		}
		if err := g.AddPrerequisite(edge.Skill, edge.Prerequisite, importance); err != nil {
			return nil, fmt.Errorf("catalog edge %s -> %s: %w", edge.Skill, edge.Prerequisite, err)
		}
	}

	roles := make(map[string]types.RoleRequirement, len(doc.Roles))
	for _, role := range doc.Roles {
		if role.Title == "" {
			return nil, fmt.Errorf("catalog role with empty title")
		}
		if _, exists := roles[role.Title]; exists {
			return nil, fmt.Errorf("duplicate catalog role: %s", role.Title)
		}
		for i, ws := range role.Skills {
			if ws.Weight <= 0 {
				role.Skills[i].Weight = 1
			}
		}
		roles[role.Title] = role
	}

	durations := make(map[string]int, len(doc.Durations))
	for skill, weeks := range doc.Durations {
		if weeks <= 0 {
			return nil, fmt.Errorf("catalog duration for %q must be positive, got %d", skill, weeks)
		}
		durations[skill] = weeks
	}

	return &Catalog{graph: g, roles: roles, durations: durations}, nil
}
