package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmanojpx/SkillLens/internal/types"
)

func buildGraph(t *testing.T, skills []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, name := range skills {
		require.NoError(t, g.AddSkill(types.Skill{Name: name, Tier: 1}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddPrerequisite(e[0], e[1], types.ImportanceRequired))
	}
	return g
}

func TestAddSkill_Duplicate(t *testing.T) {
	g := New()
	require.NoError(t, g.AddSkill(types.Skill{Name: "Python"}))

	err := g.AddSkill(types.Skill{Name: "Python"})
	require.Error(t, err)

	var dup *DuplicateSkillError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Python", dup.Skill)
	assert.Equal(t, 1, g.Len())
}

func TestAddPrerequisite_UnknownEndpoint(t *testing.T) {
	g := New()
	require.NoError(t, g.AddSkill(types.Skill{Name: "Docker"}))

	err := g.AddPrerequisite("Docker", "Linux", types.ImportanceRequired)
	var unknown *UnknownSkillError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Linux", unknown.Skill)

	err = g.AddPrerequisite("Kubernetes", "Docker", types.ImportanceRequired)
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Kubernetes", unknown.Skill)
}

func TestAddPrerequisite_RejectsCycle(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, nil)

	require.NoError(t, g.AddPrerequisite("A", "B", types.ImportanceRequired))

	// B requires A would close the loop A -> B -> A.
	err := g.AddPrerequisite("B", "A", types.ImportanceRequired)
	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))

	// The graph keeps only the first edge.
	prereqs, err := g.PrerequisitesOf("A", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, prereqs)

	prereqs, err = g.PrerequisitesOf("B", false)
	require.NoError(t, err)
	assert.Empty(t, prereqs)
}

func TestAddPrerequisite_RejectsSelfEdge(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)

	err := g.AddPrerequisite("A", "A", types.ImportanceRequired)
	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))
}

func TestAddPrerequisite_RejectsTransitiveCycle(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{
		{"A", "B"},
		{"B", "C"},
	})

	// C requires A would close A -> B -> C -> A.
	err := g.AddPrerequisite("C", "A", types.ImportanceRequired)
	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))

	prereqs, err := g.PrerequisitesOf("C", false)
	require.NoError(t, err)
	assert.Empty(t, prereqs)
}

func TestPrerequisitesOf_TransitiveClosure(t *testing.T) {
	// Kubernetes -> Docker -> Linux, Kubernetes -> Networking.
	g := buildGraph(t, []string{"Kubernetes", "Docker", "Linux", "Networking"}, [][2]string{
		{"Kubernetes", "Docker"},
		{"Kubernetes", "Networking"},
		{"Docker", "Linux"},
	})

	direct, err := g.PrerequisitesOf("Kubernetes", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Docker", "Networking"}, direct)

	transitive, err := g.PrerequisitesOf("Kubernetes", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Docker", "Linux", "Networking"}, transitive)
}

func TestPrerequisitesOf_DeduplicatesDiamond(t *testing.T) {
	// D requires B and C, both of which require A.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][2]string{
		{"B", "A"},
		{"C", "A"},
		{"D", "B"},
		{"D", "C"},
	})

	transitive, err := g.PrerequisitesOf("D", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, transitive)
}

func TestDependentsOf(t *testing.T) {
	g := buildGraph(t, []string{"Python", "Django", "Flask", "Pandas"}, [][2]string{
		{"Django", "Python"},
		{"Flask", "Python"},
		{"Pandas", "Python"},
	})

	deps, err := g.DependentsOf("Python")
	require.NoError(t, err)
	assert.Equal(t, []string{"Django", "Flask", "Pandas"}, deps)
	assert.Equal(t, 3, g.DependentCount("Python"))

	deps, err = g.DependentsOf("Django")
	require.NoError(t, err)
	assert.Empty(t, deps)

	_, err = g.DependentsOf("Rust")
	var unknown *UnknownSkillError
	require.True(t, errors.As(err, &unknown))
}

func TestAcyclicityInvariant(t *testing.T) {
	// After any sequence of successful inserts, no skill may appear in its own
	// transitive prerequisite closure.
	skills := []string{"A", "B", "C", "D", "E"}
	g := buildGraph(t, skills, nil)

	attempts := [][2]string{
		{"B", "A"}, {"C", "B"}, {"D", "C"}, {"A", "D"}, // last one must fail
		{"E", "A"}, {"E", "C"}, {"A", "E"}, // last one must fail
	}
	for _, e := range attempts {
		_ = g.AddPrerequisite(e[0], e[1], types.ImportanceRequired)
	}

	for _, name := range skills {
		closure, err := g.PrerequisitesOf(name, true)
		require.NoError(t, err)
		assert.NotContains(t, closure, name, "skill %s found in its own closure", name)
	}
}

func TestSkills_SortedSnapshot(t *testing.T) {
	g := New()
	require.NoError(t, g.AddSkill(types.Skill{Name: "SQL", Category: "Database", Tier: 2}))
	require.NoError(t, g.AddSkill(types.Skill{Name: "Go", Category: "Programming", Tier: 3}))

	all := g.Skills()
	require.Len(t, all, 2)
	assert.Equal(t, "Go", all[0].Name)
	assert.Equal(t, "SQL", all[1].Name)

	s, ok := g.Skill("SQL")
	require.True(t, ok)
	assert.Equal(t, "Database", s.Category)

	_, ok = g.Skill("Rust")
	assert.False(t, ok)
}
