package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"tasktrack/internal/category"
	"tasktrack/internal/model"
	"tasktrack/internal/task"
	"tasktrack/pkg/log"
)

// Store is a file-backed fallback for the repository layer, used when
// Postgres is unreachable at startup. Each user's categories and tasks live
// in one JSON snapshot; parsed snapshots are kept in an LRU cache and
// written through on every mutation.
type Store struct {
	dir   string
	l     log.Logger
	mu    sync.Mutex
	cache *lru.Cache[int64, *userState]
	users userTable
}

type userState struct {
	NextCategoryID int64               `json:"next_category_id"`
	Categories     []category.Category `json:"categories"`
	Tasks          []task.Task         `json:"tasks"`
}

type userTable struct {
	NextID int64        `json:"next_id"`
	Users  []model.User `json:"users"`
}

// Open prepares the snapshot directory and loads the user table. maxUsers
// bounds how many parsed snapshots stay in memory at once.
func Open(dir string, maxUsers int, l log.Logger) (*Store, error) {
	if maxUsers <= 0 {
		maxUsers = 128
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir: %w", err)
	}

	cache, err := lru.New[int64, *userState](maxUsers)
	if err != nil {
		return nil, err
	}

	s := &Store{dir: dir, l: l, cache: cache}
	if err := s.loadUsers(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) userPath(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("user_%d.json", userID))
}

func (s *Store) usersPath() string {
	return filepath.Join(s.dir, "users.json")
}

// state returns the cached snapshot for one user, loading it from disk on a
// cache miss. Callers must hold s.mu.
func (s *Store) state(userID int64) (*userState, error) {
	if st, ok := s.cache.Get(userID); ok {
		return st, nil
	}

	st := &userState{}
	data, err := os.ReadFile(s.userPath(userID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("localstore: read snapshot: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, st); err != nil {
			return nil, fmt.Errorf("localstore: parse snapshot: %w", err)
		}
	}
	s.cache.Add(userID, st)
	return st, nil
}

// mutate runs fn against one user's snapshot and writes the result back to
// disk before returning.
func (s *Store) mutate(ctx context.Context, userID int64, fn func(st *userState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.state(userID)
	if err != nil {
		s.l.Errorf(ctx, "localstore.mutate load user %d: %v", userID, err)
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	if err := s.writeJSON(s.userPath(userID), st); err != nil {
		s.l.Errorf(ctx, "localstore.mutate save user %d: %v", userID, err)
		return err
	}
	return nil
}

// view runs fn read-only against one user's snapshot.
func (s *Store) view(ctx context.Context, userID int64, fn func(st *userState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.state(userID)
	if err != nil {
		s.l.Errorf(ctx, "localstore.view load user %d: %v", userID, err)
		return err
	}
	return fn(st)
}

func (s *Store) loadUsers() error {
	data, err := os.ReadFile(s.usersPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("localstore: read users: %w", err)
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		return fmt.Errorf("localstore: parse users: %w", err)
	}
	return nil
}

// writeJSON replaces path atomically so a crash mid-write never leaves a
// truncated snapshot behind.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
