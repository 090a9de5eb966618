package main

import (
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	serveConfigPath string
	servePort       int
	serveFormat     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes POST /build-resume, GET / and GET /health.

The port defaults to the PORT environment variable, then the config file, then 3000.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config file (JSON or YAML)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default $PORT or 3000)")
	serveCmd.Flags().StringVarP(&serveFormat, "format", "f", "", "Default output format: json, text, markdown or html")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if _, err := maxprocs.Set(maxprocs.Logger(log.Printf)); err != nil {
		log.Printf("[serve] failed to set GOMAXPROCS: %v", err)
	}

	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}

	port, err := envPort()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = serveFormat
	}

	cfg, err = finalizeConfig(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Format:       cfg.Format,
		Options:      composerOptions(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
