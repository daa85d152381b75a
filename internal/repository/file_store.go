package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// FileStore keeps every collection in memory as map[kind]map[id]record and
// mirrors the whole document to a JSON file after each successful write.
// A single RWMutex serialises writers; readers share the read lock.
//
// Uniqueness checks scan every record of the kind, so Add and Update are
// O(n) in the size of the collection.
type FileStore struct {
	mu     sync.RWMutex
	path   string // path is the JSON document; empty keeps data in memory only
	data   map[model.Kind]map[string]model.Entity
	logger *slog.Logger
}

// NewFileStore loads path if it exists and returns a ready store.  An empty
// path yields a memory-only store, which the tests use.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &FileStore{
		path:   path,
		data:   make(map[model.Kind]map[string]model.Entity),
		logger: logger,
	}
	for _, k := range model.Kinds() {
		s.data[k] = make(map[string]model.Entity)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc map[model.Kind]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	count := 0
	for kind, rows := range doc {
		if _, ok := s.data[kind]; !ok {
			s.logger.Warn("skipping unknown kind in storage file", "kind", kind)
			continue
		}
		for id, row := range rows {
			e, err := model.Decode(kind, row)
			if err != nil {
				return err
			}
			s.data[kind][id] = e
			count++
		}
	}
	s.logger.Info("file storage loaded", "path", s.path, "records", count)
	return nil
}

// flush writes the document to a temp file and renames it over the target
// so that a crash never leaves a truncated file.  Callers hold the write lock.
func (s *FileStore) flush() error {
	if s.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir storage dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}

func (s *FileStore) rows(kind model.Kind) (map[string]model.Entity, error) {
	rows, ok := s.data[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return rows, nil
}

func (s *FileStore) Get(ctx context.Context, kind model.Kind, id string) (model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.rows(kind)
	if err != nil {
		return nil, err
	}
	e, ok := rows[id]
	if !ok {
		return nil, notFound(kind, id)
	}
	return e, nil
}

func (s *FileStore) All(ctx context.Context, kind model.Kind) ([]model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.rows(kind)
	if err != nil {
		return nil, err
	}
	out := make([]model.Entity, 0, len(rows))
	for _, e := range rows {
		out = append(out, e)
	}
	sortRecords(out)
	return out, nil
}

func (s *FileStore) FindBy(ctx context.Context, kind model.Kind, field, value string) ([]model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blank, err := model.New(kind)
	if err != nil {
		return nil, err
	}
	if _, ok := blank.Lookup(field); !ok {
		return nil, fmt.Errorf("%s has no lookup field %q", kind, field)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Entity, 0)
	for _, e := range s.data[kind] {
		if v, _ := e.Lookup(field); v == value {
			out = append(out, e)
		}
	}
	sortRecords(out)
	return out, nil
}

func (s *FileStore) Add(ctx context.Context, e model.Entity) (model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.rows(e.Kind())
	if err != nil {
		return nil, err
	}
	if _, dup := rows[e.Key()]; dup {
		return nil, &ConflictError{Kind: e.Kind(), Constraint: model.Constraint{"id": e.Key()}}
	}
	if err := s.checkWrite(e, ""); err != nil {
		return nil, err
	}
	rows[e.Key()] = e
	if err := s.flush(); err != nil {
		delete(rows, e.Key())
		return nil, err
	}
	return e, nil
}

func (s *FileStore) Update(ctx context.Context, kind model.Kind, id string, changes model.Attrs, allowed []string) (model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.rows(kind)
	if err != nil {
		return nil, err
	}
	cur, ok := rows[id]
	if !ok {
		return nil, notFound(kind, id)
	}
	next, err := cur.Patch(changes, allowed)
	if err != nil {
		return nil, err
	}
	if err := s.checkWrite(next, id); err != nil {
		return nil, err
	}
	next = next.Touched(model.Now())
	rows[id] = next
	if err := s.flush(); err != nil {
		rows[id] = cur
		return nil, err
	}
	return next, nil
}

// checkWrite verifies references and unique constraints of e.  self is the
// id of the record being replaced and is skipped by the uniqueness scan.
// Callers hold the write lock.
func (s *FileStore) checkWrite(e model.Entity, self string) error {
	for _, ref := range e.References() {
		if _, ok := s.data[ref.Kind][ref.ID]; !ok {
			return invalidReference(ref)
		}
	}
	for _, c := range e.UniqueKeys() {
		for id, other := range s.data[e.Kind()] {
			if id == self || id == e.Key() {
				continue
			}
			if sameConstraint(other, c) {
				return &ConflictError{Kind: e.Kind(), Constraint: c}
			}
		}
	}
	return nil
}

// Close flushes once more so a memory-dirty store is never lost on shutdown.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}
