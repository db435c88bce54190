// Package explain turns score breakdowns and gap reports into deterministic,
// plain-English explanations.
package explain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xmanojpx/SkillLens/internal/types"
)

// Summary bands for the narrative line.
const (
	bandExcellent = 80.0
	bandGood      = 60.0
	bandModerate  = 40.0
)

// Options are the classification thresholds and recommendation budget.
type Options struct {
	// StrengthThreshold is the factor score at or above which a factor counts
	// as a strength.
	StrengthThreshold float64
	// WeaknessThreshold is the factor score below which a factor counts as a
	// weakness. Scores between the two thresholds are neutral and omitted.
	WeaknessThreshold float64
	// RecommendationCount caps the number of recommended skills.
	RecommendationCount int
}

// DependentCounter reports how many skills a given skill unblocks. Implemented
// by the skill graph; a skill that unblocks many dependents ranks higher.
type DependentCounter interface {
	DependentCount(skill string) int
}

// Explanation is the generated strengths/weaknesses/recommendations block.
type Explanation struct {
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Summary         string
}

// Generate classifies factor scores and ranks missing skills. It never fails:
// empty or degenerate input degrades to empty lists rather than an error.
func Generate(opts Options, overall float64, factors []types.FactorScore, role *types.RoleRequirement, report *types.GapReport, deps DependentCounter) Explanation {
	return Explanation{
		Strengths:       strengths(opts, factors),
		Weaknesses:      weaknesses(opts, factors),
		Recommendations: recommendations(opts, role, report, deps),
		Summary:         summary(overall, opts, factors, role),
	}
}

// strengths lists factor names scoring at or above the strength threshold,
// most impactful (highest score) first.
func strengths(opts Options, factors []types.FactorScore) []string {
	picked := make([]types.FactorScore, 0, len(factors))
	for _, f := range factors {
		if f.Score >= opts.StrengthThreshold {
			picked = append(picked, f)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Score > picked[j].Score })
	return factorNames(picked)
}

// weaknesses lists factor names below the weakness threshold, least impactful
// (lowest score) first.
func weaknesses(opts Options, factors []types.FactorScore) []string {
	picked := make([]types.FactorScore, 0, len(factors))
	for _, f := range factors {
		if f.Score < opts.WeaknessThreshold {
			picked = append(picked, f)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Score < picked[j].Score })
	return factorNames(picked)
}

// recommendations ranks the missing required skills by
// weight * (1 + dependents): a skill that is both heavily weighted in the role
// and unblocks many other skills comes first. Ties break by skill name so the
// output is stable across runs.
func recommendations(opts Options, role *types.RoleRequirement, report *types.GapReport, deps DependentCounter) []string {
	if opts.RecommendationCount <= 0 || report == nil || len(report.MissingRequired) == 0 {
		return nil
	}

	weightByName := make(map[string]float64)
	if role != nil {
		for _, ws := range role.Skills {
			weightByName[ws.Name] = ws.Weight
		}
	}

	type rankedSkill struct {
		name   string
		impact float64
	}
	ranked := make([]rankedSkill, 0, len(report.MissingRequired))
	for _, name := range report.MissingRequired {
		dependents := 0
		if deps != nil {
			dependents = deps.DependentCount(name)
		}
		// Transitive prerequisites carry no role weight; their rank is driven
		// by how much they unblock.
		impact := weightByName[name] * float64(1+dependents)
		ranked = append(ranked, rankedSkill{name: name, impact: impact})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].impact != ranked[j].impact {
			return ranked[i].impact > ranked[j].impact
		}
		return ranked[i].name < ranked[j].name
	})

	limit := opts.RecommendationCount
	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]string, 0, limit)
	for _, r := range ranked[:limit] {
		out = append(out, r.name)
	}
	return out
}

// summary produces the one-paragraph narrative line.
func summary(overall float64, opts Options, factors []types.FactorScore, role *types.RoleRequirement) string {
	level := "developing"
	switch {
	case overall >= bandExcellent:
		level = "excellent"
	case overall >= bandGood:
		level = "good"
	case overall >= bandModerate:
		level = "moderate"
	}

	roleTitle := "the target role"
	if role != nil && role.Title != "" {
		roleTitle = role.Title
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Readiness for %s is %s at %.1f%%.", roleTitle, level, overall)

	if strong := strengths(opts, factors); len(strong) > 0 {
		fmt.Fprintf(&sb, " Strong areas: %s.", strings.Join(strong, ", "))
	}
	if weak := weaknesses(opts, factors); len(weak) > 0 {
		fmt.Fprintf(&sb, " Areas for improvement: %s.", strings.Join(weak, ", "))
	}
	return sb.String()
}

func factorNames(factors []types.FactorScore) []string {
	if len(factors) == 0 {
		return nil
	}
	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.Name
	}
	return names
}
