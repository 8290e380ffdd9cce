package service

import (
	"context"

	"github.com/alexanderramin/roster/internal/domain"
)

// PeopleService is the people list as seen by the CLI and the board.
type PeopleService interface {
	People() []domain.Person
	Get(id string) (domain.Person, error)
	Filter(term string) []domain.Person
	Stats() domain.Stats
	Len() int
	CanAdd() bool
	MaxPeople() int

	Add(ctx context.Context, p domain.Person) error
	Update(ctx context.Context, p domain.Person) (bool, error)
	Delete(ctx context.Context, id string) (int, error)
	ReplaceAll(ctx context.Context, people []domain.Person) error
}

var _ PeopleService = (*PeopleController)(nil)
