// Package synths resolves vocal synth artist ids to wiki link markup and
// engine names.
package synths

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Synth describes a single voicebank known to the wiki.
type Synth struct {
	ExternalID   int
	BaseName     string
	WikiCategory string
	Engine       string
}

// Markup returns wiki link to the voicebank page.
func (s Synth) Markup() string {
	if s.BaseName == s.WikiCategory || s.BaseName == "" {
		return "[[" + s.WikiCategory + "]]"
	}
	return "[[" + s.WikiCategory + "|" + s.BaseName + "]]"
}

// Lookup is used by prefill mapping to resolve singers.
type Lookup interface {
	FindSynthByExternalID(id int) (Synth, bool)
}

const (
	querySynth = `SELECT "s"."basevb_name", "s"."wikicat_name", IFNULL("e"."name", '')
FROM synths "s"
LEFT JOIN engines "e" ON "s"."engine_id" = "e"."id"
WHERE "s"."vdb_id" = ?;`
	queryEngines = `SELECT "name" FROM engines ORDER BY "id";`
)

// Store serves lookups from synth database. It is safe for concurrent use.
type Store struct {
	pool *sqlitex.Pool
	log  *zap.Logger
}

// Open opens synth database read only.
func Open(path string, size int, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		Flags:    sqlite.OpenReadOnly,
		PoolSize: size,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open synth database '%s': %w", path, err)
	}
	return &Store{pool: pool, log: log.Named("synths")}, nil
}

// Close releases all pooled connections.
func (s *Store) Close() error {
	return s.pool.Close()
}

// Find looks up synth by its external (VocaDB) artist id.
func (s *Store) Find(ctx context.Context, id int) (Synth, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return Synth{}, false, fmt.Errorf("unable to get database connection: %w", err)
	}
	defer s.pool.Put(conn)

	var (
		res   Synth
		found bool
	)
	err = sqlitex.Execute(conn, querySynth, &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if found {
				return nil
			}
			res = Synth{
				ExternalID:   id,
				BaseName:     stmt.ColumnText(0),
				WikiCategory: stmt.ColumnText(1),
				Engine:       stmt.ColumnText(2),
			}
			found = true
			return nil
		},
	})
	if err != nil {
		return Synth{}, false, fmt.Errorf("unable to query synth %d: %w", id, err)
	}
	return res, found, nil
}

// FindSynthByExternalID implements Lookup. Database errors are logged and
// reported as not found.
func (s *Store) FindSynthByExternalID(id int) (Synth, bool) {
	synth, found, err := s.Find(context.Background(), id)
	if err != nil {
		s.log.Warn("Synth lookup failed", zap.Int("id", id), zap.Error(err))
		return Synth{}, false
	}
	return synth, found
}

// Engines lists known synth engines in database order.
func (s *Store) Engines(ctx context.Context) ([]string, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to get database connection: %w", err)
	}
	defer s.pool.Put(conn)

	var engines []string
	err = sqlitex.Execute(conn, queryEngines, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			engines = append(engines, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list engines: %w", err)
	}
	return engines, nil
}

// Memory is immutable in-memory Lookup.
type Memory map[int]Synth

// FindSynthByExternalID implements Lookup.
func (m Memory) FindSynthByExternalID(id int) (Synth, bool) {
	s, ok := m[id]
	return s, ok
}

