// Package readiness composes gap analysis, scoring, explanation, and learning
// path planning into the engine the server and CLI call into.
package readiness

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/xmanojpx/SkillLens/internal/catalog"
	"github.com/xmanojpx/SkillLens/internal/config"
	"github.com/xmanojpx/SkillLens/internal/explain"
	"github.com/xmanojpx/SkillLens/internal/gap"
	"github.com/xmanojpx/SkillLens/internal/learningpath"
	"github.com/xmanojpx/SkillLens/internal/scoring"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// Engine evaluates candidate profiles against the catalog. It holds no
// per-call state, so a single Engine serves concurrent requests.
type Engine struct {
	catalog *catalog.Catalog
	cfg     config.Engine
}

// New builds an engine over a catalog with the given tuning parameters.
func New(cat *catalog.Catalog, cfg config.Engine) *Engine {
	return &Engine{catalog: cat, cfg: cfg}
}

// Catalog exposes the engine's catalog for read-only lookups.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// AnalyzeGap partitions the target role's skills against the profile and
// expands transitive prerequisites for everything missing.
func (e *Engine) AnalyzeGap(profile *types.CandidateProfile, roleTitle string) (*types.GapReport, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	role, err := e.catalog.Role(roleTitle)
	if err != nil {
		return nil, err
	}
	return gap.Analyze(e.catalog.Graph(), role, profile), nil
}

// Score produces the full readiness result for a profile against a role:
// the overall score, per-factor breakdown, gap partition, and explanation.
// Identical inputs always produce an identical result.
func (e *Engine) Score(profile *types.CandidateProfile, roleTitle string) (*types.ReadinessResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	role, err := e.catalog.Role(roleTitle)
	if err != nil {
		return nil, err
	}

	report := gap.Analyze(e.catalog.Graph(), role, profile)

	overall, factors, err := scoring.Score(scoring.Options{
		Weights:                e.cfg.Weights,
		ExperienceCeilingYears: e.cfg.ExperienceCeilingYears,
		ProjectCeilingCount:    e.cfg.ProjectCeilingCount,
	}, role, report, profile)
	if err != nil {
		return nil, err
	}

	explanation := explain.Generate(explain.Options{
		StrengthThreshold:   e.cfg.StrengthThreshold,
		WeaknessThreshold:   e.cfg.WeaknessThreshold,
		RecommendationCount: e.cfg.RecommendationCount,
	}, overall, factors, role, report, e.catalog.Graph())

	return &types.ReadinessResult{
		TargetRole:         role.Title,
		OverallScore:       overall,
		Factors:            factors,
		Matched:            report.Matched,
		MissingRequired:    report.MissingRequired,
		MissingRecommended: report.MissingRecommended,
		Strengths:          explanation.Strengths,
		Weaknesses:         explanation.Weaknesses,
		Recommendations:    explanation.Recommendations,
		Summary:            explanation.Summary,
	}, nil
}

// Plan builds an ordered learning path covering the profile's missing
// required skills, plus the missing recommended ones when requested.
func (e *Engine) Plan(profile *types.CandidateProfile, roleTitle string, includeRecommended bool) (*types.LearningPath, error) {
	report, err := e.AnalyzeGap(profile, roleTitle)
	if err != nil {
		return nil, err
	}

	missing := append([]string{}, report.MissingRequired...)
	if includeRecommended {
		missing = append(missing, report.MissingRecommended...)
	}

	path, err := learningpath.Build(e.catalog.Graph(), missing, profile.SkillSet(), e.catalog.Durations())
	if err != nil {
		return nil, err
	}
	path.TargetRole = roleTitle
	return path, nil
}

// ScoreBatch scores many profiles against the same role concurrently.
// Results are returned in input order. The first failure cancels the batch.
func (e *Engine) ScoreBatch(ctx context.Context, profiles []*types.CandidateProfile, roleTitle string) ([]*types.ReadinessResult, error) {
	// Fail fast on an unknown role instead of once per profile.
	if _, err := e.catalog.Role(roleTitle); err != nil {
		return nil, err
	}

	results := make([]*types.ReadinessResult, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, profile := range profiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.Score(profile, roleTitle)
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
