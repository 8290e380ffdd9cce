package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/repository"
)

// KVStore keeps the list in a key-value repository. Values remember the
// codec that wrote them, so switching codecs does not strand old data.
type KVStore struct {
	repo  repository.KVRepo
	codec codec.Codec
}

// NewKVStore creates a KVStore writing with c. A nil codec selects JSON.
func NewKVStore(repo repository.KVRepo, c codec.Codec) *KVStore {
	if c == nil {
		c = codec.JSON{}
	}
	return &KVStore{repo: repo, codec: c}
}

func (s *KVStore) Load(ctx context.Context, key string) ([]domain.Person, error) {
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.Person{}, nil
		}
		return nil, fmt.Errorf("loading %q: %w", key, err)
	}

	c, err := codec.ByName(entry.Codec)
	if err != nil {
		return []domain.Person{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return decodePeople(c, entry.Value)
}

func (s *KVStore) Save(ctx context.Context, key string, people []domain.Person) error {
	data, err := encodePeople(s.codec, people)
	if err != nil {
		return err
	}
	entry := &repository.KVEntry{Key: key, Value: data, Codec: s.codec.Name()}
	if err := s.repo.Put(ctx, entry); err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

// Raw returns the stored bytes and codec name for key.
func (s *KVStore) Raw(ctx context.Context, key string) ([]byte, string, error) {
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return entry.Value, entry.Codec, nil
}
