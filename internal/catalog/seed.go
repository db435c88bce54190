package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

// Seed builds the built-in catalog. It is used when no catalog file is
// configured, and as the import source for an empty database. The embedded
// document skips the on-disk schema check since it is fixed at build time.
func Seed() (*Catalog, error) {
	var doc Document
	if err := json.Unmarshal(seedJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	cat, err := FromDocument(&doc)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog is inconsistent: %w", err)
	}
	return cat, nil
}
