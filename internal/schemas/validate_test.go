package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogSchema(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(CatalogSchemaPath)
	require.NotEmpty(t, path, "catalog schema not found from test working directory")
	return path
}

func TestValidateBytes_ValidCatalog(t *testing.T) {
	doc := []byte(`{
		"skills": [
			{"name": "Python", "category": "Programming", "tier": 2},
			{"name": "Django", "category": "Web", "tier": 3}
		],
		"prerequisites": [
			{"skill": "Django", "prerequisite": "Python", "importance": "required"}
		],
		"roles": [
			{"title": "Backend Developer", "skills": [{"name": "Python", "weight": 1}], "tools": ["Git"]}
		],
		"durations": {"Python": 4}
	}`)

	assert.NoError(t, ValidateBytes(catalogSchema(t), doc))
}

func TestValidateBytes_InvalidCatalogReportsFields(t *testing.T) {
	// Missing skill name, bad importance value, non-positive weight.
	doc := []byte(`{
		"skills": [{"category": "Programming"}],
		"prerequisites": [{"skill": "A", "prerequisite": "B", "importance": "optional"}],
		"roles": [{"title": "Role", "skills": [{"name": "A", "weight": 0}]}]
	}`)

	err := ValidateBytes(catalogSchema(t), doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateBytes_ProfileSchema(t *testing.T) {
	path := ResolveSchemaPath(ProfileSchemaPath)
	require.NotEmpty(t, path)

	assert.NoError(t, ValidateBytes(path, []byte(`{"skills": ["Python"], "years_experience": 2}`)))

	err := ValidateBytes(path, []byte(`{"skills": ["Python"], "years_experience": -1}`))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidateJSON_FileBased(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"skills": [{"name": "Go"}]}`), 0o644))

	assert.NoError(t, ValidateJSON(catalogSchema(t), docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	err := ValidateJSON("does-not-exist.schema.json", "also-missing.json")
	assert.Error(t, err)
}
