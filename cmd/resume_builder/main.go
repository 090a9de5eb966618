// Package main provides the resume_builder CLI: an HTTP API server plus batch
// build and validate commands for résumé records.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder document composition engine",
	Long: `Resume Builder turns structured résumé records (JSON or YAML) into a fixed-template
document layout and renders it as JSON, plain text, Markdown or HTML, either over a
REST API or in batch from the command line.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
