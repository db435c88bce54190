package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xmanojpx/SkillLens/internal/catalog"
	"github.com/xmanojpx/SkillLens/internal/config"
	"github.com/xmanojpx/SkillLens/internal/db"
	"github.com/xmanojpx/SkillLens/internal/readiness"
	"github.com/xmanojpx/SkillLens/internal/schemas"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// loadAppConfig loads the config file named by --config, falling back to the
// defaults, and lets DATABASE_URL override the file.
func loadAppConfig() (config.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.App{}, err
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if err := cfg.Validate(); err != nil {
		return config.App{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildCatalog resolves the catalog source in precedence order: an explicit
// catalog file, then the database, then the built-in seed.
func buildCatalog(ctx context.Context, cfg config.App) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		empty, err := database.IsEmpty(ctx)
		if err != nil {
			return nil, err
		}
		if empty {
			return nil, fmt.Errorf("database holds no catalog; run 'skilllens import' first")
		}
		return database.LoadCatalog(ctx)
	}

	return catalog.Seed()
}

// buildEngine wires the catalog and engine config together.
func buildEngine(ctx context.Context, cfg config.App) (*readiness.Engine, error) {
	cat, err := buildCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return readiness.New(cat, cfg.Engine), nil
}

// loadProfile reads a candidate profile JSON file, checking it against the
// profile schema when the schema file can be located.
func loadProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchemaPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("profile document: %w", err)
		}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
