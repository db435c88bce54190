package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate profile against a target role",
	Long:  "Computes the overall readiness score, the per-factor breakdown, the skill gap, and a generated explanation for one profile and role.",
	RunE:  runScore,
}

var (
	scoreProfilePath string
	scoreRole        string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "Path to candidate profile JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role title (required)")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	profile, err := loadProfile(scoreProfilePath)
	if err != nil {
		return err
	}

	result, err := engine.Score(profile, scoreRole)
	if err != nil {
		return fmt.Errorf("failed to score profile: %w", err)
	}

	return printJSON(result)
}
