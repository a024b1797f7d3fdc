// Package ptr converts between values and the pointers the DMS shapes store.
package ptr

import (
	"time"

	"github.com/nandemo-ya/dms-go/internal/common"
)

// Of returns a pointer to v.
func Of[T any](v T) *T {
	return &v
}

// Value returns the value p points to, or the zero value when p is nil.
func Value[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// String returns a pointer to the string value passed in.
func String(v string) *string {
	return &v
}

// ToString returns the value of the string pointer passed in or
// "" if the pointer is nil.
func ToString(p *string) string {
	return Value(p)
}

// Bool returns a pointer to the bool value passed in.
func Bool(v bool) *bool {
	return &v
}

// ToBool returns the value of the bool pointer passed in or
// false if the pointer is nil.
func ToBool(p *bool) bool {
	return Value(p)
}

// Int32 returns a pointer to the int32 value passed in.
func Int32(v int32) *int32 {
	return &v
}

// ToInt32 returns the value of the int32 pointer passed in or
// 0 if the pointer is nil.
func ToInt32(p *int32) int32 {
	return Value(p)
}

// Int64 returns a pointer to the int64 value passed in.
func Int64(v int64) *int64 {
	return &v
}

// ToInt64 returns the value of the int64 pointer passed in or
// 0 if the pointer is nil.
func ToInt64(p *int64) int64 {
	return Value(p)
}

// Time returns a timestamp field value for t.
func Time(t time.Time) *common.UnixTime {
	return common.NewUnixTime(t)
}

// ToTime returns the instant of a timestamp field, or the zero time when
// the field is unset.
func ToTime(p *common.UnixTime) time.Time {
	if p != nil {
		return p.Time
	}
	return time.Time{}
}

// ToStringMap returns a map of strings from the string pointers passed in.
// Nil pointers are skipped.
func ToStringMap(p map[string]*string) map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if v != nil {
			out[k] = *v
		}
	}
	return out
}
