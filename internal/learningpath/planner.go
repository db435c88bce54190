// Package learningpath orders missing skills into a dependency-respecting
// learning sequence.
package learningpath

import (
	"sort"

	"github.com/xmanojpx/SkillLens/internal/graph"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// defaultWeeks is used when a skill has neither a duration entry nor a
// positive difficulty tier.
const defaultWeeks = 2

// PrerequisiteSource provides the graph lookups the planner needs. Implemented
// by *graph.Graph.
type PrerequisiteSource interface {
	DirectPrerequisites(skill string) []types.PrerequisiteEdge
	Skill(name string) (types.Skill, bool)
}

// Build runs Kahn's topological sort over the subgraph induced by the missing
// skills. Among the skills eligible at each step, ties break by ascending
// difficulty tier and then by name, so easier skills come first and the
// ordering is deterministic.
//
// satisfied holds prerequisites the candidate already has; they are never
// emitted as steps but are recorded as per-step context. Prerequisite edges
// leading outside both the missing set and the satisfied set (for example
// recommended skills the caller chose to exclude) do not block scheduling.
//
// A CycleError is returned if the subgraph cannot be fully drained. Given the
// graph's acyclicity invariant this is unreachable, but the planner must never
// loop forever or silently drop skills.
func Build(src PrerequisiteSource, missing []string, satisfied map[string]bool, durations map[string]int) (*types.LearningPath, error) {
	pending := make(map[string]bool, len(missing))
	for _, name := range missing {
		pending[name] = true
	}

	steps := make([]types.LearningStep, 0, len(pending))
	scheduled := make(map[string]bool, len(pending))
	totalWeeks := 0

	for len(pending) > 0 {
		ready := make([]string, 0, len(pending))
		for name := range pending {
			if blockerCount(src, name, pending) == 0 {
				ready = append(ready, name)
			}
		}
		if len(ready) == 0 {
			// Every remaining skill is blocked by another remaining skill:
			// the underlying catalog contains a cycle.
			remaining := make([]string, 0, len(pending))
			for name := range pending {
				remaining = append(remaining, name)
			}
			sort.Strings(remaining)
			return nil, &graph.CycleError{Skill: remaining[0]}
		}

		sort.Slice(ready, func(i, j int) bool {
			ti, tj := tierOf(src, ready[i]), tierOf(src, ready[j])
			if ti != tj {
				return ti < tj
			}
			return ready[i] < ready[j]
		})

		next := ready[0]
		skill, _ := src.Skill(next)
		weeks := durationOf(durations, next, skill.Tier)

		step := types.LearningStep{
			Skill:          next,
			Category:       skill.Category,
			Position:       len(steps) + 1,
			Tier:           skill.Tier,
			EstimatedWeeks: weeks,
		}
		for _, edge := range src.DirectPrerequisites(next) {
			switch {
			case pending[edge.Prerequisite]:
				// Unreachable when the ready-set selection is correct; kept as
				// a self-check oracle for consumers.
				step.UnmetPrerequisites = append(step.UnmetPrerequisites, edge.Prerequisite)
			case scheduled[edge.Prerequisite] || satisfied[edge.Prerequisite]:
				step.SatisfiedPrerequisites = append(step.SatisfiedPrerequisites, edge.Prerequisite)
			}
		}
		sort.Strings(step.UnmetPrerequisites)
		sort.Strings(step.SatisfiedPrerequisites)
		if step.UnmetPrerequisites == nil {
			step.UnmetPrerequisites = []string{}
		}

		steps = append(steps, step)
		totalWeeks += weeks
		scheduled[next] = true
		delete(pending, next)
	}

	return &types.LearningPath{Steps: steps, TotalWeeks: totalWeeks}, nil
}

// blockerCount counts prerequisites of a skill that are still pending.
func blockerCount(src PrerequisiteSource, name string, pending map[string]bool) int {
	count := 0
	for _, edge := range src.DirectPrerequisites(name) {
		if pending[edge.Prerequisite] {
			count++
		}
	}
	return count
}

func tierOf(src PrerequisiteSource, name string) int {
	if skill, ok := src.Skill(name); ok {
		return skill.Tier
	}
	return 0
}

// durationOf resolves a skill's duration: the duration table first, then the
// difficulty tier in weeks, then the default.
func durationOf(durations map[string]int, name string, tier int) int {
	if weeks, ok := durations[name]; ok && weeks > 0 {
		return weeks
	}
	if tier > 0 {
		return tier
	}
	return defaultWeeks
}
