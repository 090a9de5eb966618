package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	buildConfigPath string
	buildOutDir     string
	buildFormat     string
	buildJobs       int
	buildFont       string
	buildMeta       bool
	buildVerbose    bool
)

var buildCmd = &cobra.Command{
	Use:   "build FILE...",
	Short: "Compose and render résumé files",
	Long: `Decode each résumé file (JSON, or YAML by extension), compose the document and write
the rendered output into --out-dir. Files are built concurrently, bounded by --jobs.
The first failure stops the build; outputs already written are kept and listed in the error.

Configuration can be loaded from a file using --config. Command-line flags override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to config file (values can be overridden by other flags)")
	buildCmd.Flags().StringVarP(&buildOutDir, "out-dir", "o", "", "Output directory (default \"out\")")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "", "Output format: json, text, markdown or html (default \"json\")")
	buildCmd.Flags().IntVarP(&buildJobs, "jobs", "j", 0, "Number of files built concurrently (default 4)")
	buildCmd.Flags().StringVar(&buildFont, "font", "", "Font family for every run (default \"Calibri\")")
	buildCmd.Flags().BoolVar(&buildMeta, "meta", true, "Write a .meta.json sidecar next to each document")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(buildConfigPath)
	if err != nil {
		return err
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = buildOutDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = buildFormat
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = buildJobs
	}
	if cmd.Flags().Changed("font") {
		cfg.Font = buildFont
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	cfg, err = finalizeConfig(cfg)
	if err != nil {
		return err
	}

	return buildFiles(cmd.Context(), args, cfg, buildMeta, cmd.OutOrStdout())
}

// buildResult is everything reported about one built file.
type buildResult struct {
	source string
	output string
	size   int
	record *types.ResumeRecord
	doc    *layout.Document
}

// outputClaims tracks which source produced each output path so two inputs
// never silently overwrite each other.
type outputClaims struct {
	mu     sync.Mutex
	owners map[string]string
}

func (c *outputClaims) claim(path, source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if owner, ok := c.owners[path]; ok {
		return fmt.Errorf("%s and %s both produce %s; set meta.filename to disambiguate", owner, source, path)
	}
	c.owners[path] = source
	return nil
}

// buildFiles builds every file concurrently and reports the results in input
// order once all succeed. The first failure cancels the remaining builds.
func buildFiles(ctx context.Context, files []string, cfg config.Config, writeMeta bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := rendering.Canonical(cfg.Format); err != nil {
		return err
	}

	opts := composerOptions(cfg)
	claims := &outputClaims{owners: make(map[string]string)}
	results := make([]buildResult, len(files))

	if cfg.Verbose {
		log.Printf("[build] %d files, %d workers, format %s", len(files), cfg.Jobs, cfg.Format)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, path := range files {
		g.Go(func() error {
			result, err := buildFile(gCtx, path, cfg, opts, writeMeta, claims)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return withWritten(err, results)
	}

	printer := observability.NewPrinter(out)
	for _, r := range results {
		if cfg.Verbose {
			printer.PrintRecordSummary(r.record)
			printer.PrintDocumentSummary(r.doc)
			printer.PrintBuildResult(r.source, r.output, r.size)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s -> %s\n", r.source, r.output)
	}
	return nil
}

// withWritten names the outputs that finished before err stopped the build.
// They are left in place.
func withWritten(err error, results []buildResult) error {
	var written []string
	for _, r := range results {
		if r.output != "" {
			written = append(written, r.output)
		}
	}
	if len(written) == 0 {
		return err
	}
	return fmt.Errorf("%w (already written: %s)", err, strings.Join(written, ", "))
}

// buildFile runs decode, compose, render and write for one file. Renderers are
// created per file so no renderer state is shared between workers.
func buildFile(ctx context.Context, path string, cfg config.Config, opts composer.Options, writeMeta bool, claims *outputClaims) (*buildResult, error) {
	record, metadata, err := ingestion.LoadResumeFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := composer.Compose(record, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	renderer, err := rendering.New(cfg.Format)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	filename := filepath.Base(rendering.SuggestedFilename(doc.Filename, renderer.Extension()))
	if err := claims.claim(filepath.Join(cfg.OutDir, filename), path); err != nil {
		return nil, err
	}

	if writeMeta {
		metadata.Format = cfg.Format
		metadata.Filename = filename
	} else {
		metadata = nil
	}
	output, err := ingestion.WriteOutput(cfg.OutDir, filename, data, metadata)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &buildResult{source: path, output: output, size: len(data), record: record, doc: doc}, nil
}

