package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the per-invocation snapshot of a candidate: declared
// skills, experience signals, and tools. The engine holds no profile state
// between calls.
type CandidateProfile struct {
	Skills          []string `json:"skills" validate:"dive,min=1"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
	ProjectCount    int      `json:"project_count" validate:"gte=0"`
	Tools           []string `json:"tools,omitempty" validate:"dive,min=1"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SkillSet returns the candidate's skills as a set for O(1) membership checks.
func (p *CandidateProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		set[s] = true
	}
	return set
}

// ToolSet returns the candidate's tools as a set.
func (p *CandidateProfile) ToolSet() map[string]bool {
	set := make(map[string]bool, len(p.Tools))
	for _, t := range p.Tools {
		set[t] = true
	}
	return set
}
