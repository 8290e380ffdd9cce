package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/service"
)

// resolvePerson finds a person by exact id, then by unique id prefix.
func resolvePerson(app *App, input string) (domain.Person, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Person{}, fmt.Errorf("person ID is required")
	}

	if p, err := app.People.Get(input); err == nil {
		return p, nil
	}

	var matches []domain.Person
	for _, p := range app.People.People() {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Person{}, fmt.Errorf("%w: %q", service.ErrPersonNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return domain.Person{}, fmt.Errorf("person ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTask finds a task of p by 1-based position, exact id or unique id
// prefix, in that order. A number outside the list is tried as an id prefix
// before it is reported as out of range.
func resolveTask(p domain.Person, input string) (domain.Task, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err == nil && n >= 1 && n <= len(p.Tasks) {
		return p.Tasks[n-1], nil
	}
	numeric := err == nil

	var matches []domain.Task
	for _, t := range p.Tasks {
		if t.ID == input {
			return t, nil
		}
		if input != "" && strings.HasPrefix(t.ID, input) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		if numeric {
			return domain.Task{}, fmt.Errorf("task number %d out of range (1-%d)", n, len(p.Tasks))
		}
		return domain.Task{}, fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
