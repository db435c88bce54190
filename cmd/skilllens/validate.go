package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmanojpx/SkillLens/internal/catalog"
	"github.com/xmanojpx/SkillLens/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog or profile documents",
	Long:  "Checks documents against their JSON schemas. Catalog documents are additionally built in full, so duplicate skills, dangling edges, and prerequisite cycles are reported.",
	RunE:  runValidate,
}

var (
	validateCatalogPath string
	validateProfilePath string
)

func init() {
	validateCmd.Flags().StringVar(&validateCatalogPath, "catalog", "", "Path to catalog JSON to validate")
	validateCmd.Flags().StringVar(&validateProfilePath, "profile", "", "Path to profile JSON to validate")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateCatalogPath == "" && validateProfilePath == "" {
		return fmt.Errorf("nothing to validate: pass --catalog and/or --profile")
	}

	if validateCatalogPath != "" {
		// LoadFile runs the schema check and then the graph build.
		cat, err := catalog.LoadFile(validateCatalogPath)
		if err != nil {
			return fmt.Errorf("catalog %s: %w", validateCatalogPath, err)
		}
		fmt.Printf("✓ %s is valid: %d skills, %d roles\n",
			validateCatalogPath, cat.Graph().Len(), len(cat.Roles()))
	}

	if validateProfilePath != "" {
		schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchemaPath)
		if schemaPath == "" {
			return fmt.Errorf("profile schema %s not found", schemas.ProfileSchemaPath)
		}
		if err := schemas.ValidateJSON(schemaPath, validateProfilePath); err != nil {
			return fmt.Errorf("profile %s: %w", validateProfilePath, err)
		}
		if _, err := loadProfile(validateProfilePath); err != nil {
			return err
		}
		fmt.Printf("✓ %s is valid\n", validateProfilePath)
	}

	return nil
}
