package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"pizzeria/internal/model"
)

const lockRetryDelay = 10 * time.Millisecond

// FileStore keeps the collection in one JSON file. A sibling "<path>.lock"
// file serializes access across processes; mu does the same within one.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) LoadAll(ctx context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlock, err := s.lock(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.read()
}

func (s *FileStore) SaveAll(ctx context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	return s.write(orders)
}

func (s *FileStore) Update(ctx context.Context, fn MutateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	orders, err := s.read()
	if err != nil {
		return err
	}

	orders, err = fn(orders)
	if err != nil {
		return err
	}

	return s.write(orders)
}

func (s *FileStore) lock(ctx context.Context, exclusive bool) (func(), error) {
	fl := flock.New(s.path + ".lock")

	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = fl.TryLockContext(ctx, lockRetryDelay)
	} else {
		ok, err = fl.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return nil, &Error{Op: "lock", Path: s.path, Err: err}
	}
	if !ok {
		return nil, &Error{Op: "lock", Path: s.path, Err: errors.New("lock not acquired")}
	}

	return func() { _ = fl.Unlock() }, nil
}

func (s *FileStore) read() ([]model.Order, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &Error{Op: "read", Path: s.path, Err: err}
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, &Error{Op: "decode", Path: s.path, Err: err}
	}
	return orders, nil
}

// write replaces the file through a temp file and rename so readers never
// observe a partially written document.
func (s *FileStore) write(orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}

	data, err := json.Marshal(orders)
	if err != nil {
		return &Error{Op: "encode", Path: s.path, Err: err}
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
