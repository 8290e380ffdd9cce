package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/repository"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	DBPath  string
	DataDir string
	Codec   string
}

// Open builds the adapter named by opts.Backend. The returned close func
// releases the backend and is never nil.
func Open(opts Options) (Adapter, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(opts.Backend) {
	case "", BackendSQLite:
		c, err := codec.ByName(opts.Codec)
		if err != nil {
			return nil, noop, err
		}
		database, err := db.OpenDB(opts.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("opening database: %w", err)
		}
		return NewKVStore(repository.NewSQLiteKVRepo(database), c), closeDB(database), nil
	case BackendFile:
		if opts.DataDir == "" {
			return nil, noop, fmt.Errorf("file backend requires a data directory")
		}
		return NewFileStore(opts.DataDir), noop, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown backend %q (want sqlite, file or memory)", opts.Backend)
	}
}

func closeDB(database *sql.DB) func() error {
	return func() error { return database.Close() }
}
