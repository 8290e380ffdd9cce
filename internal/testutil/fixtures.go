package testutil

import (
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/google/uuid"
)

// Person options
type PersonOption func(*domain.Person)

func WithID(id string) PersonOption {
	return func(p *domain.Person) {
		p.ID = id
	}
}

// WithTasks appends pending tasks with the given titles.
func WithTasks(titles ...string) PersonOption {
	return func(p *domain.Person) {
		for _, title := range titles {
			p.Tasks = append(p.Tasks, domain.Task{ID: uuid.New().String(), Title: title})
		}
	}
}

// WithCompletedTasks appends completed tasks with the given titles.
func WithCompletedTasks(titles ...string) PersonOption {
	return func(p *domain.Person) {
		for _, title := range titles {
			p.Tasks = append(p.Tasks, domain.Task{ID: uuid.New().String(), Title: title, Completed: true})
		}
	}
}

func NewTestPerson(name string, opts ...PersonOption) domain.Person {
	p := domain.Person{
		ID:    uuid.New().String(),
		Name:  name,
		Tasks: []domain.Task{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestPeople creates one person per name, in order.
func NewTestPeople(names ...string) []domain.Person {
	people := make([]domain.Person, 0, len(names))
	for _, n := range names {
		people = append(people, NewTestPerson(n))
	}
	return people
}

// Names extracts display names, in order.
func Names(people []domain.Person) []string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return names
}
