// Package scoring computes multi-factor career readiness scores.
package scoring

import (
	"fmt"

	"github.com/xmanojpx/SkillLens/internal/gap"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// Weights holds the relative weight of each scoring factor. Components must be
// non-negative; they need not sum to 1, the engine normalizes by their sum at
// call time.
type Weights struct {
	Technical  float64 `json:"technical" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Project    float64 `json:"project" validate:"gte=0"`
	Tool       float64 `json:"tool" validate:"gte=0"`
}

// Sum returns the total of all four weight components.
func (w Weights) Sum() float64 {
	return w.Technical + w.Experience + w.Project + w.Tool
}

// InvalidWeightError indicates the configured weights sum to zero, which would
// make the overall score undefined.
type InvalidWeightError struct {
	Weights Weights
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("scoring weights sum to zero: %+v", e.Weights)
}

// Options are the tunable constants of the scoring engine.
type Options struct {
	Weights Weights
	// ExperienceCeilingYears is the years-of-experience value at which the
	// experience factor saturates at 100.
	ExperienceCeilingYears int
	// ProjectCeilingCount is the project count at which the project factor
	// saturates at 100.
	ProjectCeilingCount int
}

// Score computes the four factor scores and their weighted composite. All
// scores are clamped to [0,100]. Identical inputs always produce identical
// output: the engine reads no clock and draws no randomness.
func Score(opts Options, role *types.RoleRequirement, report *types.GapReport, profile *types.CandidateProfile) (float64, []types.FactorScore, error) {
	weightSum := opts.Weights.Sum()
	if weightSum <= 0 {
		return 0, nil, &InvalidWeightError{Weights: opts.Weights}
	}

	techScore, techDetails := technicalSkillScore(role, report)
	expScore, expDetails := saturatingScore(profile.YearsExperience, opts.ExperienceCeilingYears, "year")
	projScore, projDetails := saturatingScore(profile.ProjectCount, opts.ProjectCeilingCount, "project")
	toolScore, toolDetails := toolScore(role, profile)

	factors := []types.FactorScore{
		newFactor(types.FactorTechnicalSkills, opts.Weights.Technical/weightSum, techScore, techDetails),
		newFactor(types.FactorExperience, opts.Weights.Experience/weightSum, expScore, expDetails),
		newFactor(types.FactorProjects, opts.Weights.Project/weightSum, projScore, projDetails),
		newFactor(types.FactorTools, opts.Weights.Tool/weightSum, toolScore, toolDetails),
	}

	overall := 0.0
	for _, f := range factors {
		overall += f.Contribution
	}
	return clamp(overall), factors, nil
}

func newFactor(name string, weight, score float64, details string) types.FactorScore {
	score = clamp(score)
	return types.FactorScore{
		Name:         name,
		Weight:       weight,
		Score:        score,
		Contribution: weight * score,
		Details:      details,
	}
}

// technicalSkillScore is the matched share of the role's total skill weight.
// An empty required set means there is nothing to miss, so the score is 100.
func technicalSkillScore(role *types.RoleRequirement, report *types.GapReport) (float64, string) {
	totalWeight := role.TotalWeight()
	if totalWeight <= 0 {
		return 100, "No specific skills required"
	}
	matchedWeight := gap.MatchedWeight(role, report)
	details := fmt.Sprintf("Matched %d/%d required skills", len(report.Matched), len(role.Skills))
	return 100 * matchedWeight / totalWeight, details
}

// saturatingScore gives full credit at or above the ceiling and linear credit
// below it. A non-positive ceiling means the factor cannot discriminate, so it
// scores full credit.
func saturatingScore(count, ceiling int, unit string) (float64, string) {
	if ceiling <= 0 {
		return 100, fmt.Sprintf("No %s target configured", unit)
	}
	if count >= ceiling {
		return 100, fmt.Sprintf("%d %ss (target: %d)", count, unit, ceiling)
	}
	score := 100 * float64(count) / float64(ceiling)
	return score, fmt.Sprintf("%d %ss (target: %d)", count, unit, ceiling)
}

// toolScore is the proportion of role-relevant tools the candidate has.
func toolScore(role *types.RoleRequirement, profile *types.CandidateProfile) (float64, string) {
	if len(role.Tools) == 0 {
		return 100, "No specific tools required"
	}
	have := profile.ToolSet()
	matched := 0
	for _, tool := range role.Tools {
		if have[tool] {
			matched++
		}
	}
	details := fmt.Sprintf("Proficient in %d/%d relevant tools", matched, len(role.Tools))
	return 100 * float64(matched) / float64(len(role.Tools)), details
}

// clamp bounds a score to [0,100], absorbing rounding drift.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
