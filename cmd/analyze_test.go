package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyze_PrintsPatterns(t *testing.T) {
	path := writeLog(t, "Passage_Title,#,Why_I_Got_It_Wrong\n"+
		"P1,1,The tone was clearly negative but I misread it\n"+
		"P2,2,I missed a key detail in paragraph 2\n"+
		"P3,3,\n"+
		"P1,4,wrong attitude again\n")

	a, err := analyze(path, catalog.Default())
	require.NoError(t, err)

	var out bytes.Buffer
	printAnalysis(&out, a)
	s := out.String()

	assert.Contains(t, s, "Loaded 3 errors for analysis!")
	assert.Contains(t, s, "(1 rows without an explanation skipped)")
	assert.Contains(t, s, "(2x)")
	assert.Contains(t, s, "Examples: P1\n")
	assert.Contains(t, s, "Fix: Highlight adjectives/verbs that indicate tone.")
	assert.Contains(t, s, "(Your top error: Tone/Attitude)")
	assert.NotContains(t, s, "No analyzable error patterns found.")
}

func TestAnalyze_EmptyReportFallsBack(t *testing.T) {
	path := writeLog(t, "Passage_Title,Why_I_Got_It_Wrong\nP1,ran out of time\n")

	a, err := analyze(path, catalog.Default())
	require.NoError(t, err)

	var out bytes.Buffer
	printAnalysis(&out, a)
	s := out.String()

	assert.Contains(t, s, "No analyzable error patterns found. Add more detailed descriptions.")
	assert.Contains(t, s, catalog.FallbackDrill)
	assert.False(t, strings.Contains(s, "Error Trends"))
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, err := analyze(filepath.Join(t.TempDir(), "missing.csv"), catalog.Default())
	assert.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeLog(t, "Passage_Title,Why_I_Got_It_Wrong\nP9,misunderstood the question\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"analyze", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "Question Misinterpretation")
	assert.Contains(t, out.String(), "Restate 3 hard questions in your own words before answering.")
}
