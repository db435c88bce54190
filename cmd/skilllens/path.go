package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Build a dependency-ordered learning path",
	Long:  "Plans the order in which a candidate should learn their missing skills, scheduling every prerequisite before its dependent and estimating the total duration.",
	RunE:  runPath,
}

var (
	pathProfilePath        string
	pathRole               string
	pathIncludeRecommended bool
)

func init() {
	pathCmd.Flags().StringVarP(&pathProfilePath, "profile", "p", "", "Path to candidate profile JSON (required)")
	pathCmd.Flags().StringVarP(&pathRole, "role", "r", "", "Target role title (required)")
	pathCmd.Flags().BoolVar(&pathIncludeRecommended, "include-recommended", false, "Also schedule missing recommended skills")

	if err := pathCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := pathCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(pathCmd)
}

func runPath(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	profile, err := loadProfile(pathProfilePath)
	if err != nil {
		return err
	}

	path, err := engine.Plan(profile, pathRole, pathIncludeRecommended)
	if err != nil {
		return fmt.Errorf("failed to build learning path: %w", err)
	}

	return printJSON(path)
}
