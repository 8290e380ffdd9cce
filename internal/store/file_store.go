package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/tidwall/jsonc"
)

// FileStore keeps one JSON file per key under a directory. Files may be
// hand-edited: comments and trailing commas are stripped before decoding.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file backing key.
func (s *FileStore) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Load(ctx context.Context, key string) ([]domain.Person, error) {
	path, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Person{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeJSONC(data)
}

// Save writes to a temp file in the same directory and renames it over the
// target so a crash never leaves a half-written list.
func (s *FileStore) Save(ctx context.Context, key string, people []domain.Person) error {
	path, err := s.Path(key)
	if err != nil {
		return err
	}
	data, err := encodePeople(codec.JSON{}, people)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// DecodeJSONC decodes a JSON people array that may contain comments and
// trailing commas.
func DecodeJSONC(data []byte) ([]domain.Person, error) {
	return decodePeople(codec.JSON{}, jsonc.ToJSON(data))
}
