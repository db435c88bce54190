package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmanojpx/SkillLens/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, gap analysis, learning path, and catalog endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	engine, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Serving catalog with %d skills and %d roles\n",
		engine.Catalog().Graph().Len(), len(engine.Catalog().Roles()))

	srv := server.New(engine, server.Config{Port: cfg.Port})
	return srv.Start()
}
