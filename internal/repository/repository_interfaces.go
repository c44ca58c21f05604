// Package repository provides persistent stores for fetched fun facts.
package repository

import (
	"context"
	"errors"
)

// ErrCorruptSnapshot is returned by FactSnapshot.LoadAll when the snapshot
// file exists but cannot be decoded.
var ErrCorruptSnapshot = errors.New("fact snapshot is corrupt")

// FactStore persists number → fun fact pairs across process restarts.
type FactStore interface {
	// LoadAll returns every persisted fact. Implementations return a non-nil
	// map even when they also return an error.
	LoadAll(ctx context.Context) (map[int]string, error)
	// Put persists fact for number, replacing any previous value.
	Put(ctx context.Context, number int, fact string) error
	// Close releases resources held by the store.
	Close(ctx context.Context) error
}
