// Package config provides configuration loading and validation for SkillLens.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/xmanojpx/SkillLens/internal/scoring"
)

// Engine holds the tunable constants of the readiness engine. Zero values are
// replaced with defaults at load time, so a partial config file is fine.
type Engine struct {
	Weights scoring.Weights `json:"weights"`
	// StrengthThreshold is the factor score at or above which a factor is
	// reported as a strength.
	StrengthThreshold float64 `json:"strength_threshold" validate:"gte=0,lte=100"`
	// WeaknessThreshold is the factor score below which a factor is reported
	// as a weakness.
	WeaknessThreshold float64 `json:"weakness_threshold" validate:"gte=0,lte=100"`
	// RecommendationCount caps the number of recommended skills per result.
	RecommendationCount int `json:"recommendation_count" validate:"gte=0"`
	// ExperienceCeilingYears is the years value at which the experience factor
	// saturates.
	ExperienceCeilingYears int `json:"experience_ceiling_years" validate:"gte=0"`
	// ProjectCeilingCount is the project count at which the project factor
	// saturates.
	ProjectCeilingCount int `json:"project_ceiling_count" validate:"gte=0"`
}

// App is the full application configuration for the CLI and server.
type App struct {
	Engine Engine `json:"engine"`

	Port        int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	CatalogPath string `json:"catalog,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
}

// DefaultEngine returns the engine defaults carried over from the original
// SkillLens backend: technical skills dominate, experience and projects
// follow, tools trail.
func DefaultEngine() Engine {
	return Engine{
		Weights:                scoring.Weights{Technical: 0.40, Experience: 0.25, Project: 0.20, Tool: 0.15},
		StrengthThreshold:      70,
		WeaknessThreshold:      50,
		RecommendationCount:    5,
		ExperienceCeilingYears: 2,
		ProjectCeilingCount:    3,
	}
}

// DefaultApp returns the default application configuration.
func DefaultApp() App {
	return App{
		Engine: DefaultEngine(),
		Port:   8080,
	}
}

// Load reads an App configuration from a JSON file and fills unset fields
// from the defaults. An empty path returns the defaults unchanged.
func Load(path string) (App, error) {
	cfg := DefaultApp()
	if path == "" {
		return cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return App{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return App{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var loaded App
	if err := json.Unmarshal(data, &loaded); err != nil {
		return App{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return loaded.mergeWithDefaults(cfg), nil
}

// mergeWithDefaults fills zero-valued fields from defaults. Weights merge as a
// block: a config that sets any weight owns all four, so an explicit zero
// weight stays zero.
func (a App) mergeWithDefaults(defaults App) App {
	result := a

	if result.Engine.Weights == (scoring.Weights{}) {
		result.Engine.Weights = defaults.Engine.Weights
	}
	if result.Engine.StrengthThreshold == 0 {
		result.Engine.StrengthThreshold = defaults.Engine.StrengthThreshold
	}
	if result.Engine.WeaknessThreshold == 0 {
		result.Engine.WeaknessThreshold = defaults.Engine.WeaknessThreshold
	}
	if result.Engine.RecommendationCount == 0 {
		result.Engine.RecommendationCount = defaults.Engine.RecommendationCount
	}
	if result.Engine.ExperienceCeilingYears == 0 {
		result.Engine.ExperienceCeilingYears = defaults.Engine.ExperienceCeilingYears
	}
	if result.Engine.ProjectCeilingCount == 0 {
		result.Engine.ProjectCeilingCount = defaults.Engine.ProjectCeilingCount
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	return result
}

// Validate checks the configuration for structurally invalid values. It does
// not reject all-zero weights: the scoring engine surfaces those as
// InvalidWeightError at call time, per its contract.
func (a *App) Validate() error {
	validate := validator.New()
	if err := validate.Struct(a); err != nil {
		return err
	}

	if a.Engine.Weights.Technical < 0 || a.Engine.Weights.Experience < 0 ||
		a.Engine.Weights.Project < 0 || a.Engine.Weights.Tool < 0 {
		return fmt.Errorf("config error: scoring weights must be non-negative")
	}
	if a.Engine.WeaknessThreshold > a.Engine.StrengthThreshold {
		return fmt.Errorf("config error: 'weakness_threshold' (%.1f) must not exceed 'strength_threshold' (%.1f)",
			a.Engine.WeaknessThreshold, a.Engine.StrengthThreshold)
	}
	return nil
}
