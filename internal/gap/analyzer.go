// Package gap computes the skill gap between a candidate and a target role.
package gap

import (
	"sort"

	"github.com/xmanojpx/SkillLens/internal/graph"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// Analyze partitions the role's required skills against the candidate's skill
// set and expands unmet transitive prerequisites through the skill graph.
//
// Every required skill lands in exactly one of Matched or MissingRequired. A
// transitive prerequisite joins MissingRequired only when some path from a
// directly-missing skill reaches it through required edges exclusively;
// otherwise it joins MissingRecommended. Required wins when both cases apply.
//
// Candidate skills not present in the catalog still count as matched when the
// role literally names them; they simply contribute no prerequisite edges.
func Analyze(g *graph.Graph, role *types.RoleRequirement, profile *types.CandidateProfile) *types.GapReport {
	candidate := profile.SkillSet()

	matched := make([]string, 0, len(role.Skills))
	directlyMissing := make([]string, 0, len(role.Skills))
	inRequired := make(map[string]bool, len(role.Skills))

	for _, ws := range role.Skills {
		if inRequired[ws.Name] {
			continue
		}
		inRequired[ws.Name] = true
		if candidate[ws.Name] {
			matched = append(matched, ws.Name)
		} else {
			directlyMissing = append(directlyMissing, ws.Name)
		}
	}

	// Expand the transitive prerequisite closure of every directly-missing
	// skill. requiredReach[s] records whether s was reached through required
	// edges only; a later required-only path upgrades a recommended reach.
	requiredReach := make(map[string]bool)

	var visit func(skill string, requiredPath bool)
	visit = func(skill string, requiredPath bool) {
		for _, edge := range g.DirectPrerequisites(skill) {
			childRequired := requiredPath && edge.Importance == types.ImportanceRequired
			prev, seen := requiredReach[edge.Prerequisite]
			if seen && (prev || !childRequired) {
				continue
			}
			requiredReach[edge.Prerequisite] = childRequired
			visit(edge.Prerequisite, childRequired)
		}
	}
	for _, skill := range directlyMissing {
		visit(skill, true)
	}

	missingRequired := append([]string(nil), directlyMissing...)
	missingRecommended := make([]string, 0)
	for skill, required := range requiredReach {
		if candidate[skill] || inRequired[skill] {
			// Already satisfied, or already counted via the direct partition.
			continue
		}
		if required {
			missingRequired = append(missingRequired, skill)
		} else {
			missingRecommended = append(missingRecommended, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(missingRequired)
	sort.Strings(missingRecommended)

	return &types.GapReport{
		TargetRole:         role.Title,
		Matched:            matched,
		MissingRequired:    missingRequired,
		MissingRecommended: missingRecommended,
	}
}

// MatchedWeight sums the role weights of the matched skills. Used by the
// scoring engine for the technical-skill factor.
func MatchedWeight(role *types.RoleRequirement, report *types.GapReport) float64 {
	matched := make(map[string]bool, len(report.Matched))
	for _, s := range report.Matched {
		matched[s] = true
	}
	total := 0.0
	for _, ws := range role.Skills {
		if matched[ws.Name] {
			total += ws.Weight
		}
	}
	return total
}
