package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FactSnapshot stores facts in a single JSON file holding a flat object of
// decimal-string keys to fact strings. Every Put rewrites the whole file.
type FactSnapshot struct {
	path  string
	mu    sync.Mutex
	facts map[int]string
}

// NewFactSnapshot creates a snapshot store backed by path. Nothing is read
// until LoadAll is called.
func NewFactSnapshot(path string) *FactSnapshot {
	return &FactSnapshot{
		path:  path,
		facts: make(map[int]string),
	}
}

// Path returns the snapshot file location.
func (s *FactSnapshot) Path() string {
	return s.path
}

// LoadAll reads the snapshot file. A missing file yields an empty map and no
// error; an unreadable or corrupt file yields an empty map and an error.
// Keys that are not decimal integers are skipped.
func (s *FactSnapshot) LoadAll(_ context.Context) (map[int]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.facts = make(map[int]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[int]string{}, nil
	}
	if err != nil {
		return map[int]string{}, fmt.Errorf("read fact snapshot %s: %w", s.path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return map[int]string{}, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, s.path, err)
	}

	for key, fact := range raw {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		s.facts[n] = fact
	}
	return copyFacts(s.facts), nil
}

// Put records fact and rewrites the snapshot synchronously. The fact stays in
// the store's view even if the write fails, so the next Put retries it.
func (s *FactSnapshot) Put(_ context.Context, number int, fact string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.facts[number] = fact
	return s.writeLocked()
}

// Close is a no-op: every Put is already on disk.
func (s *FactSnapshot) Close(_ context.Context) error {
	return nil
}

// Len returns the number of facts held.
func (s *FactSnapshot) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.facts)
}

// writeLocked writes to a temp file in the same directory and renames it over
// the snapshot, so readers never observe a partial file. s.mu must be held.
func (s *FactSnapshot) writeLocked() error {
	raw := make(map[string]string, len(s.facts))
	for n, fact := range s.facts {
		raw[strconv.Itoa(n)] = fact
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fact snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace fact snapshot %s: %w", s.path, err)
	}
	return nil
}

func copyFacts(in map[int]string) map[int]string {
	out := make(map[int]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
