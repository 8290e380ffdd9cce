package store

import (
	"context"

	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/domain"
)

// MemoryStore holds encoded values in a map. Values go through the codec so
// callers never share slices with the store.
type MemoryStore struct {
	codec  codec.Codec
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codec: codec.JSON{}, values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]domain.Person, error) {
	data, ok := s.values[key]
	if !ok {
		return []domain.Person{}, nil
	}
	return decodePeople(s.codec, data)
}

func (s *MemoryStore) Save(ctx context.Context, key string, people []domain.Person) error {
	data, err := encodePeople(s.codec, people)
	if err != nil {
		return err
	}
	s.values[key] = data
	return nil
}

// SetRaw stores bytes as-is, bypassing encoding.
func (s *MemoryStore) SetRaw(key string, data []byte) {
	s.values[key] = append([]byte(nil), data...)
}

// Raw returns the stored bytes for key.
func (s *MemoryStore) Raw(key string) ([]byte, bool) {
	data, ok := s.values[key]
	return data, ok
}
