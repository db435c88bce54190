package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze the skill gap between a profile and a role",
	Long:  "Partitions the role's skills into matched and missing, and expands the missing skills' transitive prerequisites through the skill graph.",
	RunE:  runGap,
}

var (
	gapProfilePath string
	gapRole        string
)

func init() {
	gapCmd.Flags().StringVarP(&gapProfilePath, "profile", "p", "", "Path to candidate profile JSON (required)")
	gapCmd.Flags().StringVarP(&gapRole, "role", "r", "", "Target role title (required)")

	if err := gapCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := gapCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	profile, err := loadProfile(gapProfilePath)
	if err != nil {
		return err
	}

	report, err := engine.AnalyzeGap(profile, gapRole)
	if err != nil {
		return fmt.Errorf("failed to analyze gap: %w", err)
	}

	return printJSON(report)
}
