// Package extradata persists UI preferences as keyed strings, either
// global or per machine.
package extradata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"vboxmanager/pkg/logging"
)

const (
	subsystem  = "ExtraData"
	fileName   = "extradata.yaml"
	retryDelay = 100 * time.Millisecond
)

// document is the on-disk layout.
type document struct {
	Global   map[string]string            `yaml:"global,omitempty"`
	Machines map[string]map[string]string `yaml:"machines,omitempty"`
}

// Store holds global and per-machine extra-data. Writes go straight to
// disk so concurrent manager instances see each other's changes.
type Store struct {
	fs   afero.Fs
	path string
	// lock is nil for non-OS filesystems.
	lock *flock.Flock

	mu       sync.RWMutex
	global   map[string]string
	machines map[uuid.UUID]map[string]string
}

// Open loads the store kept in dir on fsys, creating dir if needed.
func Open(ctx context.Context, fsys afero.Fs, dir string) (*Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create extra-data directory %s: %w", dir, err)
	}
	s := &Store{
		fs:       fsys,
		path:     filepath.Join(dir, fileName),
		global:   make(map[string]string),
		machines: make(map[uuid.UUID]map[string]string),
	}
	if _, ok := fsys.(*afero.OsFs); ok {
		s.lock = flock.New(s.path + ".lock")
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory returns a store backed by an in-memory filesystem.
func NewMemory() *Store {
	s, err := Open(context.Background(), afero.NewMemMapFs(), "/extradata")
	if err != nil {
		// MemMapFs cannot fail to create a directory or read a missing file.
		panic(err)
	}
	return s
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	if s.lock == nil {
		return fn()
	}
	locked, err := s.lock.TryLockContext(ctx, retryDelay)
	if err != nil {
		return fmt.Errorf("acquire flock %s: %w", s.lock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire flock %s: context done", s.lock.Path())
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			logging.Warn(subsystem, "release flock %s: %v", s.lock.Path(), err)
		}
	}()
	return fn()
}

// Reload replaces the in-memory state with the file contents.
func (s *Store) Reload(ctx context.Context) error {
	return s.withLock(ctx, func() error {
		doc, err := s.read()
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.apply(doc)
		return nil
	})
}

func (s *Store) read() (document, error) {
	var doc document
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read extra-data %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse extra-data %s: %w", s.path, err)
	}
	return doc, nil
}

// apply must be called with s.mu held.
func (s *Store) apply(doc document) {
	s.global = make(map[string]string, len(doc.Global))
	for k, v := range doc.Global {
		s.global[k] = v
	}
	s.machines = make(map[uuid.UUID]map[string]string, len(doc.Machines))
	for id, values := range doc.Machines {
		parsed, err := uuid.Parse(id)
		if err != nil {
			logging.Warn(subsystem, "Skipping extra-data for invalid machine id %q", id)
			continue
		}
		m := make(map[string]string, len(values))
		for k, v := range values {
			m[k] = v
		}
		s.machines[parsed] = m
	}
}

// snapshot must be called with s.mu held.
func (s *Store) snapshot() document {
	doc := document{Global: s.global}
	if len(s.machines) > 0 {
		doc.Machines = make(map[string]map[string]string, len(s.machines))
		for id, values := range s.machines {
			if len(values) > 0 {
				doc.Machines[id.String()] = values
			}
		}
	}
	return doc
}

func (s *Store) write(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode extra-data: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write extra-data %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace extra-data %s: %w", s.path, err)
	}
	return nil
}

// update merges the on-disk state, applies fn and writes the result back.
func (s *Store) update(fn func()) error {
	return s.withLock(context.Background(), func() error {
		doc, err := s.read()
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.apply(doc)
		fn()
		return s.write(s.snapshot())
	})
}

// Get returns a global value, "" when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.global[key]
}

// Set stores a global value. An empty value removes the key.
func (s *Store) Set(key, value string) error {
	return s.update(func() {
		if value == "" {
			delete(s.global, key)
			return
		}
		s.global[key] = value
	})
}

// GetMachine returns a per-machine value, "" when unset.
func (s *Store) GetMachine(id uuid.UUID, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.machines[id][key]
}

// SetMachine stores a per-machine value. An empty value removes the key.
func (s *Store) SetMachine(id uuid.UUID, key, value string) error {
	return s.update(func() {
		values := s.machines[id]
		if value == "" {
			delete(values, key)
			return
		}
		if values == nil {
			values = make(map[string]string)
			s.machines[id] = values
		}
		values[key] = value
	})
}

// Keys lists the global keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.global))
	for k := range s.global {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
