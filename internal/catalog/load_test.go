package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
categories:
  - name: Timing
    keywords: [rushed, "ran out of time"]
    fix: Pace yourself at ten minutes per passage.
    drill: Do two timed passages.
  - name: Tone/Attitude
    keywords: [tone]
    mistakes:
      - misidentifying neutral tone
`

func TestLoad_Valid(t *testing.T) {
	c, err := Load(strings.NewReader(validYAML))
	require.NoError(t, err)

	cats := c.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Timing", cats[0].Name)
	assert.Equal(t, []string{"rushed", "ran out of time"}, cats[0].Keywords)
	assert.Equal(t, "Do two timed passages.", c.Drill("Timing"))
	assert.Equal(t, FallbackFix, c.Fix("Tone/Attitude"))
	assert.Equal(t, []string{"misidentifying neutral tone"}, c.Mistakes("Tone/Attitude"))
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"no categories", "categories: []"},
		{"missing keywords", "categories:\n  - name: A\n"},
		{"keywords not a list", "categories:\n  - name: A\n    keywords: tone\n"},
		{"unknown field", "categories:\n  - name: A\n    keywords: [a]\n    weight: 3\n"},
		{"unknown top-level", "categories:\n  - name: A\n    keywords: [a]\nversion: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DuplicateRejectedAfterSchema(t *testing.T) {
	doc := "categories:\n  - name: A\n    keywords: [a]\n  - name: A\n    keywords: [b]\n"
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
