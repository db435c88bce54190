package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmanojpx/SkillLens/internal/scoring"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultApp(), cfg)
	assert.Equal(t, 0.40, cfg.Engine.Weights.Technical)
	assert.Equal(t, 70.0, cfg.Engine.StrengthThreshold)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	path := writeConfig(t, `{"port": 9000, "engine": {"recommendation_count": 3}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 3, cfg.Engine.RecommendationCount)
	// Untouched fields come from defaults.
	assert.Equal(t, DefaultEngine().Weights, cfg.Engine.Weights)
	assert.Equal(t, 50.0, cfg.Engine.WeaknessThreshold)
}

func TestLoad_ExplicitWeightsOwnTheBlock(t *testing.T) {
	path := writeConfig(t, `{"engine": {"weights": {"technical": 1}}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Setting any weight takes the whole block; unset components stay zero.
	assert.Equal(t, scoring.Weights{Technical: 1}, cfg.Engine.Weights)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := DefaultApp()
	cfg.Engine.StrengthThreshold = 40
	cfg.Engine.WeaknessThreshold = 60

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weakness_threshold")
}

func TestValidate_ZeroWeightsPass(t *testing.T) {
	// All-zero weights are a scoring-time error, not a config error.
	cfg := DefaultApp()
	cfg.Engine.Weights = scoring.Weights{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultApp()
	assert.NoError(t, cfg.Validate())
}
