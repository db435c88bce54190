package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xmanojpx/SkillLens/internal/catalog"
	"github.com/xmanojpx/SkillLens/internal/db"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a catalog into PostgreSQL",
	Long:  "Validates and builds a catalog document, then replaces the stored catalog in the database. Without --file the built-in seed catalog is imported.",
	RunE:  runImport,
}

var (
	importFilePath    string
	importDatabaseURL string
)

func init() {
	importCmd.Flags().StringVarP(&importFilePath, "file", "f", "", "Path to catalog JSON (defaults to the built-in seed)")
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if importDatabaseURL == "" {
		importDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if importDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	var cat *catalog.Catalog
	var err error
	if importFilePath != "" {
		cat, err = catalog.LoadFile(importFilePath)
	} else {
		cat, err = catalog.Seed()
	}
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	database, err := db.Connect(ctx, importDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := database.ImportCatalog(ctx, cat); err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	fmt.Printf("Imported %d skills and %d roles\n", cat.Graph().Len(), len(cat.Roles()))
	return nil
}
