package types

// Factor names used across scoring and explanation output.
const (
	FactorTechnicalSkills = "Technical Skills"
	FactorExperience      = "Experience"
	FactorProjects        = "Project Portfolio"
	FactorTools           = "Tool Proficiency"
)

// FactorScore is the per-factor breakdown of a readiness score.
type FactorScore struct {
	Name string `json:"name"`
	// Weight is the normalized share of this factor in the overall score.
	Weight float64 `json:"weight"`
	// Score is the factor score in [0,100].
	Score float64 `json:"score"`
	// Contribution is Weight * Score, the factor's share of the overall score.
	Contribution float64 `json:"contribution"`
	Details      string  `json:"details"`
}

// GapReport partitions a role's required skills against a candidate's skill
// set. Every required skill appears in exactly one of Matched,
// MissingRequired, or MissingRecommended; MissingRequired and
// MissingRecommended additionally carry unmet transitive prerequisites.
type GapReport struct {
	TargetRole         string   `json:"target_role"`
	Matched            []string `json:"matched"`
	MissingRequired    []string `json:"missing_required"`
	MissingRecommended []string `json:"missing_recommended"`
}

// ReadinessResult is the full output of a scoring call: the overall score, the
// per-factor breakdown, the skill gap, and the generated explanation. It is an
// immutable value produced fresh on every invocation.
type ReadinessResult struct {
	TargetRole         string        `json:"target_role"`
	OverallScore       float64       `json:"overall_score"`
	Factors            []FactorScore `json:"factors"`
	Matched            []string      `json:"matched_skills"`
	MissingRequired    []string      `json:"missing_required"`
	MissingRecommended []string      `json:"missing_recommended"`
	Strengths          []string      `json:"strengths"`
	Weaknesses         []string      `json:"weaknesses"`
	Recommendations    []string      `json:"recommendations"`
	Summary            string        `json:"summary"`
}
