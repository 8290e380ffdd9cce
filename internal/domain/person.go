package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when a person or task is given a blank name.
var ErrEmptyName = errors.New("name must not be empty")

// ErrTaskNotFound is returned when a task id does not belong to the person.
var ErrTaskNotFound = errors.New("task not found")

// Person is the unit of storage: a named entity owning a short task list.
// The ID is assigned once by NewPerson and never changes.
type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewPerson creates a person with a fresh UUID and the given task titles.
func NewPerson(name string, taskTitles ...string) (Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Person{}, ErrEmptyName
	}
	p := Person{
		ID:    uuid.New().String(),
		Name:  name,
		Tasks: []Task{},
	}
	for _, title := range taskTitles {
		if _, err := p.AddTask(title); err != nil {
			return Person{}, err
		}
	}
	return p, nil
}

// Clone returns a deep copy so callers can edit a person without touching
// the controller's list.
func (p Person) Clone() Person {
	c := p
	c.Tasks = make([]Task, len(p.Tasks))
	copy(c.Tasks, p.Tasks)
	return c
}

// Rename sets a new display name.
func (p *Person) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// CanAddTask reports whether another task fits under max. A max of zero or
// less means unlimited.
func (p Person) CanAddTask(max int) bool {
	return max <= 0 || len(p.Tasks) < max
}

// AddTask appends a new pending task and returns it.
func (p *Person) AddTask(title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyName
	}
	t := Task{ID: uuid.New().String(), Title: title}
	p.Tasks = append(p.Tasks, t)
	return t, nil
}

// ToggleTask flips the completed flag of the task with the given id.
func (p *Person) ToggleTask(id string) error {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			p.Tasks[i].Completed = !p.Tasks[i].Completed
			return nil
		}
	}
	return ErrTaskNotFound
}

// RemoveTask drops the task with the given id.
func (p *Person) RemoveTask(id string) error {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			p.Tasks = append(p.Tasks[:i:i], p.Tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// CompletedCount returns how many tasks are done.
func (p Person) CompletedCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// DisplayID truncates the UUID to 8 characters for display.
func (p Person) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Normalize replaces nil task lists with empty ones so a list always
// serializes the same way no matter how it was built.
func Normalize(people []Person) []Person {
	out := make([]Person, len(people))
	for i, p := range people {
		if p.Tasks == nil {
			p.Tasks = []Task{}
		}
		out[i] = p
	}
	return out
}
