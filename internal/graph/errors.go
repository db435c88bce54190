// Package graph implements the in-process skill prerequisite DAG.
package graph

import "fmt"

// DuplicateSkillError indicates a skill name is already registered.
type DuplicateSkillError struct {
	Skill string
}

func (e *DuplicateSkillError) Error() string {
	return fmt.Sprintf("skill already registered: %s", e.Skill)
}

// UnknownSkillError indicates an edge or lookup referenced a skill that is not
// in the catalog.
type UnknownSkillError struct {
	Skill string
}

func (e *UnknownSkillError) Error() string {
	return fmt.Sprintf("unknown skill: %s", e.Skill)
}

// CycleError indicates an edge insertion would have created a cycle, or that a
// topological sort found one. The offending edge is never applied.
type CycleError struct {
	Skill        string
	Prerequisite string
}

func (e *CycleError) Error() string {
	if e.Prerequisite != "" {
		return fmt.Sprintf("prerequisite edge would create a cycle: %s -> %s", e.Skill, e.Prerequisite)
	}
	return fmt.Sprintf("cycle detected involving skill: %s", e.Skill)
}
