package graph

import (
	"sort"

	"github.com/xmanojpx/SkillLens/internal/types"
)

// Graph is a directed acyclic graph of skills and prerequisite edges with
// explicit forward (skill -> prerequisites) and backward (prerequisite ->
// dependents) indices.
//
// Mutation is expected only during single-writer catalog initialization. Once
// loaded, any number of readers may traverse the graph concurrently; no method
// mutates state except AddSkill and AddPrerequisite.
type Graph struct {
	skills     map[string]types.Skill
	prereqs    map[string][]types.PrerequisiteEdge
	dependents map[string][]string
}

// New creates an empty skill graph.
func New() *Graph {
	return &Graph{
		skills:     make(map[string]types.Skill),
		prereqs:    make(map[string][]types.PrerequisiteEdge),
		dependents: make(map[string][]string),
	}
}

// AddSkill registers a skill in the catalog.
// Returns DuplicateSkillError if the name already exists.
func (g *Graph) AddSkill(skill types.Skill) error {
	if _, exists := g.skills[skill.Name]; exists {
		return &DuplicateSkillError{Skill: skill.Name}
	}
	g.skills[skill.Name] = skill
	return nil
}

// AddPrerequisite adds a prerequisite edge (skill requires prerequisite).
// Returns UnknownSkillError if either endpoint is absent and CycleError if the
// edge would make the graph cyclic. A rejected edge leaves the graph exactly
// as it was.
func (g *Graph) AddPrerequisite(skill, prerequisite string, importance types.Importance) error {
	if _, exists := g.skills[skill]; !exists {
		return &UnknownSkillError{Skill: skill}
	}
	if _, exists := g.skills[prerequisite]; !exists {
		return &UnknownSkillError{Skill: prerequisite}
	}

	// The edge skill -> prerequisite closes a cycle exactly when skill is
	// already reachable from prerequisite through existing prerequisite edges.
	if skill == prerequisite || g.reachable(prerequisite, skill) {
		return &CycleError{Skill: skill, Prerequisite: prerequisite}
	}

	edge := types.PrerequisiteEdge{
		Skill:        skill,
		Prerequisite: prerequisite,
		Importance:   importance,
	}
	g.prereqs[skill] = append(g.prereqs[skill], edge)
	g.dependents[prerequisite] = append(g.dependents[prerequisite], skill)
	return nil
}

// reachable reports whether target is in the transitive prerequisite closure
// of from. Depth-first; termination is guaranteed by the DAG invariant.
func (g *Graph) reachable(from, target string) bool {
	visited := make(map[string]bool)
	stack := []string{from}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == target {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, edge := range g.prereqs[current] {
			stack = append(stack, edge.Prerequisite)
		}
	}
	return false
}

// HasSkill reports whether the named skill exists in the catalog.
func (g *Graph) HasSkill(name string) bool {
	_, exists := g.skills[name]
	return exists
}

// Skill returns the named skill. The second return value is false when the
// skill is not in the catalog.
func (g *Graph) Skill(name string) (types.Skill, bool) {
	s, exists := g.skills[name]
	return s, exists
}

// Skills returns every skill in the catalog, sorted by name.
func (g *Graph) Skills() []types.Skill {
	out := make([]types.Skill, 0, len(g.skills))
	for _, s := range g.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DirectPrerequisites returns the prerequisite edges leaving the given skill.
// Unknown skills have no edges, so the result is empty for them.
func (g *Graph) DirectPrerequisites(skill string) []types.PrerequisiteEdge {
	edges := g.prereqs[skill]
	out := make([]types.PrerequisiteEdge, len(edges))
	copy(out, edges)
	return out
}

// PrerequisitesOf returns the prerequisite names of a skill: the direct set,
// or the full de-duplicated upward closure when transitive is true. Results
// are sorted by name. Returns UnknownSkillError for skills not in the catalog.
func (g *Graph) PrerequisitesOf(skill string, transitive bool) ([]string, error) {
	if _, exists := g.skills[skill]; !exists {
		return nil, &UnknownSkillError{Skill: skill}
	}

	seen := make(map[string]bool)
	if transitive {
		var visit func(name string)
		visit = func(name string) {
			for _, edge := range g.prereqs[name] {
				if !seen[edge.Prerequisite] {
					seen[edge.Prerequisite] = true
					visit(edge.Prerequisite)
				}
			}
		}
		visit(skill)
	} else {
		for _, edge := range g.prereqs[skill] {
			seen[edge.Prerequisite] = true
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// DependentsOf returns the skills that directly list the given skill as a
// prerequisite, sorted by name. A skill that unblocks many dependents is a
// high-impact learning target. Returns UnknownSkillError for unknown skills.
func (g *Graph) DependentsOf(skill string) ([]string, error) {
	if _, exists := g.skills[skill]; !exists {
		return nil, &UnknownSkillError{Skill: skill}
	}
	deps := g.dependents[skill]
	out := make([]string, len(deps))
	copy(out, deps)
	sort.Strings(out)
	return out, nil
}

// DependentCount returns the number of direct dependents of a skill. Unknown
// skills have zero dependents.
func (g *Graph) DependentCount(skill string) int {
	return len(g.dependents[skill])
}

// Len returns the number of skills in the catalog.
func (g *Graph) Len() int {
	return len(g.skills)
}
