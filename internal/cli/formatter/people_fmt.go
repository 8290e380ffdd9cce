package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatTitle renders the app header.
func FormatTitle(maxPeople int) string {
	title := StyleHeader.Render("TASK MANAGER")
	if maxPeople <= 0 {
		return title + "\n" + Dim("Organize tasks for your people")
	}
	return title + "\n" + Dim(fmt.Sprintf("Organize tasks for up to %d people", maxPeople))
}

// FormatStats renders the one-line stats summary shown above the list.
func FormatStats(s domain.Stats, maxPeople int) string {
	people := fmt.Sprintf("%d", s.People)
	if maxPeople > 0 {
		people = fmt.Sprintf("%d/%d", s.People, maxPeople)
	}
	parts := []string{
		StyleDim.Render("PEOPLE ") + StyleFg.Render(people),
		StyleDim.Render("TASKS ") + StyleFg.Render(fmt.Sprintf("%d", s.Tasks)),
		StyleDim.Render("DONE ") + StyleGreen.Render(fmt.Sprintf("%d", s.Completed)),
		StyleDim.Render("PENDING ") + StyleYellow.Render(fmt.Sprintf("%d", s.Pending)),
	}
	line := strings.Join(parts, "   ")
	if s.Tasks > 0 {
		line += "   " + RenderProgress(s.CompletionPct/100, 12)
	}
	return line
}

// FormatPeopleList renders people as a table inside a bordered box.
func FormatPeopleList(people []domain.Person, maxTasks int) string {
	headers := []string{"ID", "NAME", "TASKS", "PROGRESS"}
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			taskCount(p, maxTasks),
			personProgress(p),
		})
	}
	return RenderBox("People", RenderTable(headers, rows))
}

// FormatPersonCard renders one person with their tasks. When selected is true
// the border is highlighted.
func FormatPersonCard(p domain.Person, maxTasks int, selected bool) string {
	var b strings.Builder
	b.WriteString(Bold(p.Name) + "  " + TruncID(p.ID) + "\n")
	b.WriteString(taskCount(p, maxTasks) + "  " + personProgress(p) + "\n")

	if len(p.Tasks) == 0 {
		b.WriteString(Dim("No tasks yet"))
	}
	for i, t := range p.Tasks {
		title := StyleFg.Render(t.Title)
		if t.Completed {
			title = StyleDim.Strikethrough(true).Render(t.Title)
		}
		b.WriteString(fmt.Sprintf("%d. %s %s %s", i+1, TaskMark(t.Completed), title, TruncID(t.ID)))
		if i < len(p.Tasks)-1 {
			b.WriteString("\n")
		}
	}

	border := ColorDim
	if selected {
		border = ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(40).
		Render(b.String())
}

// FormatCards lays cards out in rows of perRow.
func FormatCards(cards []string, perRow int) string {
	perRow = max(perRow, 1)
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// FormatNoMatches is shown when a search hides everyone.
func FormatNoMatches(term string) string {
	return Dim(fmt.Sprintf("No people match %q", term))
}

// FormatEmptyRoster is shown before the first person is added.
func FormatEmptyRoster(maxPeople, maxTasks int) string {
	lines := []string{StyleFg.Render("Start by adding your first person!")}
	if maxPeople > 0 && maxTasks > 0 {
		lines = append(lines, Dim(fmt.Sprintf("You can manage up to %d people with %d tasks each", maxPeople, maxTasks)))
	}
	return strings.Join(lines, "\n")
}

func taskCount(p domain.Person, maxTasks int) string {
	done := p.CompletedCount()
	if maxTasks > 0 {
		return fmt.Sprintf("%d/%d done · %d/%d slots", done, len(p.Tasks), len(p.Tasks), maxTasks)
	}
	return fmt.Sprintf("%d/%d done", done, len(p.Tasks))
}

func personProgress(p domain.Person) string {
	if len(p.Tasks) == 0 {
		return Dim("--")
	}
	return RenderProgress(float64(p.CompletedCount())/float64(len(p.Tasks)), 8)
}
