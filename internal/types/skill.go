// Package types provides type definitions for the structured data exchanged by the SkillLens engine.
package types

// Importance classifies a prerequisite edge.
type Importance string

const (
	// ImportanceRequired marks a prerequisite that must be learned first.
	ImportanceRequired Importance = "required"
	// ImportanceRecommended marks a prerequisite that is helpful but optional.
	ImportanceRecommended Importance = "recommended"
)

// Valid reports whether the importance is one of the known values.
func (i Importance) Valid() bool {
	return i == ImportanceRequired || i == ImportanceRecommended
}

// Skill is an atomic, named competency in the catalog.
// Skills are immutable once the catalog has been loaded.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	// Tier is the intrinsic difficulty tier, starting at 1 for the easiest
	// skills. It drives learning-path tie-breaks and default time estimates.
	Tier int `json:"tier"`
}

// PrerequisiteEdge states that Skill should be learned after Prerequisite.
type PrerequisiteEdge struct {
	Skill        string     `json:"skill"`
	Prerequisite string     `json:"prerequisite"`
	Importance   Importance `json:"importance"`
}

// WeightedSkill pairs a required skill with its weight within a role.
// Weights are positive and need not sum to 1; scoring normalizes.
type WeightedSkill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// RoleRequirement describes what a target role asks for: an ordered set of
// weighted skills plus the tools considered relevant for the role.
type RoleRequirement struct {
	Title  string          `json:"title"`
	Skills []WeightedSkill `json:"skills"`
	Tools  []string        `json:"tools,omitempty"`
}

// TotalWeight returns the sum of all skill weights for the role.
func (r *RoleRequirement) TotalWeight() float64 {
	total := 0.0
	for _, s := range r.Skills {
		total += s.Weight
	}
	return total
}
