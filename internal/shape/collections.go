package shape

import (
	"maps"
	"slices"
)

// CloneSlice returns a newly allocated copy of v, or nil when v is nil.
// Later changes to the caller's slice do not reach the copy.
func CloneSlice[E any](v []E) []E {
	if v == nil {
		return nil
	}
	return slices.Clone(v)
}

// AppendSlice appends v to s, allocating s when it is nil even if v is empty.
func AppendSlice[E any](s []E, v ...E) []E {
	if s == nil {
		s = make([]E, 0, len(v))
	}
	return append(s, v...)
}

// CloneMap returns a newly allocated copy of m, or nil when m is nil.
func CloneMap[K comparable, V any](m map[K]V) map[K]V {
	return maps.Clone(m)
}
