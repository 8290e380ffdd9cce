package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/roster/internal/domain"
)

// Adapter mirrors store.Adapter; declared here so testutil does not import
// the store package and create a cycle with its tests.
type Adapter interface {
	Load(ctx context.Context, key string) ([]domain.Person, error)
	Save(ctx context.Context, key string, people []domain.Person) error
}

// FailOnNthSaveStore wraps an Adapter and injects Err on the Nth Save call.
// Save calls are counted starting at 1; a FailOn of zero never fails. Loads
// pass through.
type FailOnNthSaveStore struct {
	Inner  Adapter
	FailOn int32
	Err    error

	saves atomic.Int32
}

func (s *FailOnNthSaveStore) Load(ctx context.Context, key string) ([]domain.Person, error) {
	return s.Inner.Load(ctx, key)
}

func (s *FailOnNthSaveStore) Save(ctx context.Context, key string, people []domain.Person) error {
	n := s.saves.Add(1)
	if n == s.FailOn {
		return s.Err
	}
	return s.Inner.Save(ctx, key, people)
}

// Saves reports how many Save calls reached the wrapper.
func (s *FailOnNthSaveStore) Saves() int {
	return int(s.saves.Load())
}
