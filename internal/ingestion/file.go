package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// LoadResumeFile reads a résumé file, choosing the decoder by extension:
// .yaml and .yml use YAML, everything else goes through DecodeResume.
func LoadResumeFile(path string) (*types.ResumeRecord, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	var record *types.ResumeRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		record, err = DecodeResumeYAML(content)
	default:
		record, err = DecodeResume(content)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return record, NewMetadata(content, path), nil
}

// WriteOutput writes a rendered document and its metadata sidecar
// ("<filename>.meta.json") into outDir.
func WriteOutput(outDir, filename string, data []byte, metadata *Metadata) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(outDir, filepath.Base(filename))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	if metadata == nil {
		return outPath, nil
	}
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(outPath+".meta.json", metaJSON, 0644); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}

	return outPath, nil
}
