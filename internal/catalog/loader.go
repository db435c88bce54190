package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xmanojpx/SkillLens/internal/schemas"
)

// Parse decodes a catalog document from raw JSON and builds the catalog.
// When the catalog schema can be located on disk the document is validated
// against it first, which turns malformed documents into field-level errors
// instead of partial graph builds.
func Parse(data []byte) (*Catalog, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.CatalogSchemaPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("catalog document: %w", err)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	return FromDocument(&doc)
}

// LoadFile reads and builds a catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}
