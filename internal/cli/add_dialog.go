package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rosterHuhTheme returns a huh theme using the formatter palette.
func rosterHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// addPersonFields backs the add dialog. Tasks are entered one per line.
type addPersonFields struct {
	name  string
	tasks string
}

func addPersonForm(fields *addPersonFields, maxTasks int) *huh.Form {
	tasksTitle := "Tasks (one per line)"
	if maxTasks > 0 {
		tasksTitle = fmt.Sprintf("Tasks (one per line, up to %d)", maxTasks)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Enter name...").
				Value(&fields.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return domain.ErrEmptyName
					}
					return nil
				}),
			huh.NewText().
				Title(tasksTitle).
				Lines(max(maxTasks, 3)).
				Value(&fields.tasks).
				Validate(func(s string) error {
					if n := len(splitTaskLines(s)); maxTasks > 0 && n > maxTasks {
						return fmt.Errorf("%d tasks entered, at most %d allowed", n, maxTasks)
					}
					return nil
				}),
		),
	).WithTheme(rosterHuhTheme()).WithShowHelp(false)
}

// splitTaskLines returns the non-blank lines of s, trimmed.
func splitTaskLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// addPerson is the shared add affordance: it refuses when the list is full,
// then creates and stores the person.
func addPerson(app *App, name string, tasks []string) (domain.Person, error) {
	if !app.People.CanAdd() {
		return domain.Person{}, fmt.Errorf("cannot add more than %d people: %w", app.People.MaxPeople(), ErrLimitReached)
	}
	p, err := newPersonWithin(name, tasks, app.MaxTasks)
	if err != nil {
		return domain.Person{}, err
	}
	if err := app.People.Add(context.Background(), p); err != nil {
		return domain.Person{}, err
	}
	return p, nil
}

// applyAddPerson stores the person described by a completed add dialog.
func applyAddPerson(app *App, fields *addPersonFields) (domain.Person, error) {
	return addPerson(app, fields.name, splitTaskLines(fields.tasks))
}
