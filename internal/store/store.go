// Package store persists the people list as a single value under a string
// key. Every adapter rewrites the whole value on Save; there is no
// versioning and no partial update.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/domain"
)

// DefaultKey is the key the people list is stored under.
const DefaultKey = "task-manager-people"

// ErrMalformed is returned by Load, together with an empty list, when the
// stored value cannot be decoded.
var ErrMalformed = errors.New("malformed people data")

// Adapter loads and saves the people list.
//
// Load returns an empty, non-nil list when the key is absent.
type Adapter interface {
	Load(ctx context.Context, key string) ([]domain.Person, error)
	Save(ctx context.Context, key string, people []domain.Person) error
}

// decodePeople turns stored bytes into a list. Decode failures are reported
// as ErrMalformed with an empty list.
func decodePeople(c codec.Codec, data []byte) ([]domain.Person, error) {
	var people []domain.Person
	if err := c.Unmarshal(data, &people); err != nil {
		return []domain.Person{}, fmt.Errorf("%w: %s: %v", ErrMalformed, c.Name(), err)
	}
	return domain.Normalize(people), nil
}

func encodePeople(c codec.Codec, people []domain.Person) ([]byte, error) {
	data, err := c.Marshal(domain.Normalize(people))
	if err != nil {
		return nil, fmt.Errorf("encoding people as %s: %w", c.Name(), err)
	}
	return data, nil
}
