// Package memory implements storage tables with in-memory maps.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/nandemo-ya/dms-go/internal/storage"
)

// Table implements storage.Table using a map guarded by a RWMutex
type Table[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
	copy    func(T) T
}

var _ storage.Table[struct{}] = (*Table[struct{}])(nil)

// TableOption configures a Table
type TableOption[T any] func(*Table[T])

// WithCopy sets the function used to copy records going into and out of
// the table. Records holding pointers need a deep copy so callers cannot
// reach stored state.
func WithCopy[T any](fn func(T) T) TableOption[T] {
	return func(t *Table[T]) {
		t.copy = fn
	}
}

// NewTable creates a new in-memory table
func NewTable[T any](opts ...TableOption[T]) *Table[T] {
	t := &Table[T]{
		records: make(map[string]T),
		copy:    func(v T) T { return v },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Create stores a new record
func (t *Table[T]) Create(ctx context.Context, key string, record T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.records[key]; exists {
		return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, key)
	}

	t.records[key] = t.copy(record)
	t.order = append(t.order, key)
	return nil
}

// Get retrieves a record by key
func (t *Table[T]) Get(ctx context.Context, key string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	record, exists := t.records[key]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	return t.copy(record), nil
}

// List returns all records in creation order
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.order))
	for _, key := range t.order {
		result = append(result, t.copy(t.records[key]))
	}
	return result, nil
}

// Update replaces an existing record
func (t *Table[T]) Update(ctx context.Context, key string, record T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.records[key]; !exists {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	t.records[key] = t.copy(record)
	return nil
}

// Delete removes a record
func (t *Table[T]) Delete(ctx context.Context, key string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, exists := t.records[key]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	delete(t.records, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return record, nil
}

// Len returns the number of records
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}
