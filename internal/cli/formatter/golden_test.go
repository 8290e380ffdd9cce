package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func TestFormatEmptyRoster_Golden(t *testing.T) {
	goldenTest(t, "empty_roster", FormatEmptyRoster(10, 5))
}

func TestFormatTitle_Golden(t *testing.T) {
	goldenTest(t, "title", FormatTitle(10))
}

func TestFormatStats_Golden_NoTasks(t *testing.T) {
	s := domain.ComputeStats([]domain.Person{{ID: "a", Name: "Ana", Tasks: []domain.Task{}}})
	goldenTest(t, "stats_no_tasks", FormatStats(s, 10))
}
