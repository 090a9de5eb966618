package main

import (
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var validateVerbose bool

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate résumé files without writing output",
	Long: `Decode each résumé file, check it against the résumé JSON Schema and the required
fields, and compose it in memory. Every file is reported; the command fails if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateFiles(args, validateVerbose, cmd.OutOrStdout())
	},
}

func init() {
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a summary of each valid record")
	rootCmd.AddCommand(validateCmd)
}

// validateFiles reports every file and returns an error naming how many failed.
func validateFiles(files []string, verbose bool, out io.Writer) error {
	printer := observability.NewPrinter(out)

	failed := 0
	for _, path := range files {
		err := validateFile(path)
		if err != nil {
			failed++
		}
		if verbose {
			printer.PrintValidation(path, err)
			continue
		}
		if err != nil {
			_, _ = fmt.Fprintf(out, "FAIL %v\n", err)
		} else {
			_, _ = fmt.Fprintf(out, "ok   %s\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d of %d files invalid", failed, len(files))
	}
	return nil
}

func validateFile(path string) error {
	record, _, err := ingestion.LoadResumeFile(path)
	if err != nil {
		return err
	}
	if _, err := composer.Compose(record, composer.DefaultOptions()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
