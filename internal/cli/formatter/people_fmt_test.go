package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
)

func samplePerson() domain.Person {
	return domain.Person{
		ID:   "abcdef12-3456-7890-abcd-ef1234567890",
		Name: "Ana",
		Tasks: []domain.Task{
			{ID: "11111111-aaaa", Title: "Buy milk", Completed: true},
			{ID: "22222222-bbbb", Title: "Call Ben"},
		},
	}
}

func TestFormatPeopleList_ShowsTruncatedIDAndCounts(t *testing.T) {
	out := FormatPeopleList([]domain.Person{samplePerson()}, 5)

	assert.Contains(t, out, "PEOPLE")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "1/2 done")
	assert.Contains(t, out, "2/5 slots")
	assert.Contains(t, out, "50%")
}

func TestFormatPeopleList_NoTasksShowsPlaceholder(t *testing.T) {
	out := FormatPeopleList([]domain.Person{{ID: "x", Name: "Ben"}}, 0)

	assert.Contains(t, out, "0/0 done")
	assert.NotContains(t, out, "slots")
	assert.Contains(t, out, "--")
}

func TestFormatPersonCard_ListsTasksInOrder(t *testing.T) {
	out := FormatPersonCard(samplePerson(), 5, false)

	first := strings.Index(out, "Buy milk")
	second := strings.Index(out, "Call Ben")
	assert.True(t, first >= 0 && second > first, "tasks rendered in order")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "11111111")
}

func TestFormatPersonCard_EmptyTasks(t *testing.T) {
	out := FormatPersonCard(domain.Person{ID: "x", Name: "Ben"}, 5, true)
	assert.Contains(t, out, "No tasks yet")
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(domain.Stats{People: 2, Tasks: 4, Completed: 3, Pending: 1, CompletionPct: 75}, 10)

	assert.Contains(t, out, "2/10")
	assert.Contains(t, out, "TASKS")
	assert.Contains(t, out, "75%")
}

func TestFormatStats_NoTasksNoBar(t *testing.T) {
	out := FormatStats(domain.Stats{People: 1}, 0)
	assert.NotContains(t, out, "%")
	assert.NotContains(t, out, "/")
}

func TestFormatEmptyStates(t *testing.T) {
	assert.Contains(t, FormatNoMatches("zed"), `No people match "zed"`)

	empty := FormatEmptyRoster(10, 5)
	assert.Contains(t, empty, "first person")
	assert.Contains(t, empty, "up to 10 people with 5 tasks each")

	assert.NotContains(t, FormatEmptyRoster(0, 5), "up to")
}

func TestFormatTitle(t *testing.T) {
	assert.Contains(t, FormatTitle(10), "up to 10 people")
	assert.NotContains(t, FormatTitle(0), "up to")
}

func TestFormatCards_RowsOfN(t *testing.T) {
	out := FormatCards([]string{"A", "B", "C"}, 2)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "B")
	assert.Contains(t, lines[1], "C")
}
