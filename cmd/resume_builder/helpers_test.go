package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resumeJSON(company string) string {
	return fmt.Sprintf(`{
	"meta": {"company": %q},
	"header": {"name": "Jane Doe", "email": "jane@x.com"},
	"skills": {"product_growth": ["Growth"]},
	"experience": [{"company": "Acme", "dates": "2020 - 2023", "bullets": ["Shipped"]}],
	"education": []
}`, company)
}

const resumeYAML = `meta:
  company: Globex
header:
  name: John Roe
  email: john@x.com
experience:
  - company: Globex
    dates: 2019 - 2024
    bullets:
      - Launched
`

// writeFile writes content into dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
