package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/store"
	"go.uber.org/zap"
)

// ErrPersonNotFound is returned by Get when no person has the id.
var ErrPersonNotFound = errors.New("person not found")

// PeopleController owns the ordered people list and mirrors it to a store
// adapter after every mutation. It is not safe for concurrent use.
type PeopleController struct {
	adapter   store.Adapter
	key       string
	people    []domain.Person
	maxPeople int
	observer  UseCaseObserver
	logger    *zap.Logger

	loadWarning error
}

type ControllerOption func(*PeopleController)

// WithMaxPeople sets the soft cap reported by CanAdd.
func WithMaxPeople(n int) ControllerOption {
	return func(c *PeopleController) {
		c.maxPeople = n
	}
}

func WithObserver(o UseCaseObserver) ControllerOption {
	return func(c *PeopleController) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *PeopleController) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewPeopleController loads the list stored under key. Malformed stored data
// is not fatal: the controller starts empty and LoadWarning reports why.
func NewPeopleController(ctx context.Context, adapter store.Adapter, key string, opts ...ControllerOption) (*PeopleController, error) {
	c := &PeopleController{
		adapter:   adapter,
		key:       key,
		maxPeople: domain.DefaultMaxPeople,
		observer:  NoopUseCaseObserver{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	people, err := adapter.Load(ctx, key)
	switch {
	case errors.Is(err, store.ErrMalformed):
		c.logger.Warn("discarding malformed people data", zap.String("key", key), zap.Error(err))
		c.loadWarning = err
		people = []domain.Person{}
	case err != nil:
		return nil, fmt.Errorf("loading people: %w", err)
	}
	c.people = people
	return c, nil
}

// LoadWarning returns the decode error that was swallowed at startup, if any.
func (c *PeopleController) LoadWarning() error {
	return c.loadWarning
}

func (c *PeopleController) MaxPeople() int { return c.maxPeople }

func (c *PeopleController) Len() int { return len(c.people) }

// CanAdd reports whether the list is under the soft cap. Add itself does not
// check it; add affordances consult CanAdd and disable themselves.
func (c *PeopleController) CanAdd() bool {
	return c.maxPeople <= 0 || len(c.people) < c.maxPeople
}

// People returns a copy of the full list in display order.
func (c *PeopleController) People() []domain.Person {
	return clonePeople(c.people)
}

// Get returns a copy of the first person with id.
func (c *PeopleController) Get(id string) (domain.Person, error) {
	for _, p := range c.people {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Person{}, fmt.Errorf("%w: %s", ErrPersonNotFound, id)
}

// Filter returns the people whose name contains term, ignoring case. An empty
// term matches everyone. Order is preserved and the list is not modified.
func (c *PeopleController) Filter(term string) []domain.Person {
	needle := strings.ToLower(term)
	out := make([]domain.Person, 0, len(c.people))
	for _, p := range c.people {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (c *PeopleController) Stats() domain.Stats {
	return domain.ComputeStats(c.people)
}

// Add appends p to the end of the list. Ids are not checked for uniqueness.
func (c *PeopleController) Add(ctx context.Context, p domain.Person) (err error) {
	defer c.observe(ctx, "add-person", time.Now(), &err, map[string]any{"person_id": p.ID})

	next := make([]domain.Person, 0, len(c.people)+1)
	next = append(next, c.people...)
	next = append(next, p.Clone())
	return c.commit(ctx, next)
}

// Update replaces the first person whose id matches p.ID and reports whether
// one was found. With no match nothing is saved.
func (c *PeopleController) Update(ctx context.Context, p domain.Person) (found bool, err error) {
	fields := map[string]any{"person_id": p.ID}
	defer c.observe(ctx, "update-person", time.Now(), &err, fields)

	idx := -1
	for i := range c.people {
		if c.people[i].ID == p.ID {
			idx = i
			break
		}
	}
	fields["found"] = idx >= 0
	if idx < 0 {
		return false, nil
	}

	next := clonePeople(c.people)
	next[idx] = p.Clone()
	if err = c.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every person with id and returns how many were removed.
// With no match nothing is saved.
func (c *PeopleController) Delete(ctx context.Context, id string) (removed int, err error) {
	fields := map[string]any{"person_id": id}
	defer c.observe(ctx, "delete-person", time.Now(), &err, fields)

	next := make([]domain.Person, 0, len(c.people))
	for _, p := range c.people {
		if p.ID == id {
			removed++
			continue
		}
		next = append(next, p)
	}
	fields["removed"] = removed
	if removed == 0 {
		return 0, nil
	}
	if err = c.commit(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// ReplaceAll swaps the whole list, as done by an import.
func (c *PeopleController) ReplaceAll(ctx context.Context, people []domain.Person) (err error) {
	defer c.observe(ctx, "replace-people", time.Now(), &err, map[string]any{"count": len(people)})
	return c.commit(ctx, clonePeople(people))
}

// commit persists next and adopts it only when the save succeeds.
func (c *PeopleController) commit(ctx context.Context, next []domain.Person) error {
	if err := c.adapter.Save(ctx, c.key, next); err != nil {
		return fmt.Errorf("saving people: %w", err)
	}
	c.people = next
	return nil
}

func (c *PeopleController) observe(ctx context.Context, name string, startedAt time.Time, errp *error, fields map[string]any) {
	var err error
	if errp != nil {
		err = *errp
	}
	c.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt.UTC(),
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func clonePeople(people []domain.Person) []domain.Person {
	out := make([]domain.Person, len(people))
	for i, p := range people {
		out[i] = p.Clone()
	}
	return out
}
