// Package storage defines the resource tables behind the local DMS server.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record has the requested key
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a record with the key already exists
	ErrAlreadyExists = errors.New("resource already exists")
)

// Table stores records of one resource kind keyed by a unique string,
// usually the resource ARN. Records are stored and returned by value.
type Table[T any] interface {
	// Create a new record
	Create(ctx context.Context, key string, record T) error

	// Get a record by key
	Get(ctx context.Context, key string) (T, error)

	// List all records in creation order
	List(ctx context.Context) ([]T, error)

	// Update an existing record
	Update(ctx context.Context, key string, record T) error

	// Delete a record, returning the deleted value
	Delete(ctx context.Context, key string) (T, error)

	// Len returns the number of records
	Len() int
}

// Find returns the first record matching pred and whether one was found.
func Find[T any](ctx context.Context, table Table[T], pred func(T) bool) (T, bool, error) {
	records, err := table.List(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	for _, r := range records {
		if pred(r) {
			return r, true, nil
		}
	}
	var zero T
	return zero, false, nil
}
