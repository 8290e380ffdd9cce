package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		width   int
		wantPct string
		filled  int
	}{
		{"empty", 0, 10, "  0%", 0},
		{"half", 0.5, 10, " 50%", 5},
		{"full", 1, 10, "100%", 10},
		{"over clamps", 1.5, 4, "100%", 4},
		{"negative clamps", -1, 4, "  0%", 0},
		{"tiny width clamps to 2", 0.5, 1, " 50%", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.True(t, strings.HasSuffix(got, tt.wantPct), got)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
		})
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"ID", "NAME"}, [][]string{{"a", "Ana"}, {"bbbb", "Ben"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "Ana"), strings.Index(lines[3], "Ben"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 person", Plural(1, "person", "people"))
	assert.Equal(t, "3 people", Plural(3, "person", "people"))
	assert.Equal(t, "0 people", Plural(0, "person", "people"))
}
