package types

// LearningStep is one skill in a dependency-ordered learning path.
type LearningStep struct {
	Skill    string `json:"skill"`
	Category string `json:"category,omitempty"`
	// Position is 1-based within the path.
	Position int `json:"position"`
	Tier     int `json:"tier"`
	// EstimatedWeeks is the duration estimate for this skill alone.
	EstimatedWeeks int `json:"estimated_weeks"`
	// UnmetPrerequisites lists prerequisites that were still unscheduled when
	// this step was placed. A correctly ordered path always leaves this empty;
	// it is kept as a self-check for consumers.
	UnmetPrerequisites []string `json:"unmet_prerequisites"`
	// SatisfiedPrerequisites lists prerequisites the candidate already had or
	// that were scheduled earlier in the path.
	SatisfiedPrerequisites []string `json:"satisfied_prerequisites,omitempty"`
}

// LearningPath is an ordered sequence of learning steps plus the aggregate
// duration. Skills are assumed learned sequentially, so the total is a plain
// sum with no parallelism credit.
type LearningPath struct {
	TargetRole string         `json:"target_role,omitempty"`
	Steps      []LearningStep `json:"steps"`
	TotalWeeks int            `json:"total_weeks"`
}
