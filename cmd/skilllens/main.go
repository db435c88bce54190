// Package main provides the entry point for the SkillLens CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skilllens",
	Short: "SkillLens readiness engine",
	Long:  "SkillLens scores candidate profiles against target roles using a skill prerequisite graph, explains the result, and plans dependency-ordered learning paths.",
}

var configPath string

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
