// Package common holds wire types shared by the generated DMS shapes.
package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// UnixTime is a timestamp that travels as epoch seconds. The AWS JSON 1.1
// protocol encodes timestamps as numbers with fractional seconds.
type UnixTime struct {
	time.Time
}

// UnmarshalJSON accepts epoch seconds or an RFC3339 string. A JSON null
// leaves the zero time.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var timestamp float64
	if err := json.Unmarshal(data, &timestamp); err == nil {
		// Millisecond precision avoids float drift on round trips.
		millis := int64(math.Round(timestamp * 1000))
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal %s into UnixTime", data)
	}

	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return fmt.Errorf("cannot parse %s as RFC3339: %w", str, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes epoch seconds rounded to milliseconds, or null for the
// zero time.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(t.Time.UnixMilli()) / 1000)
}

// Equal reports whether t and u are the same instant.
func (t UnixTime) Equal(u UnixTime) bool {
	return t.Time.Equal(u.Time)
}

// String formats the timestamp as RFC3339 in UTC.
func (t UnixTime) String() string {
	return t.Time.UTC().Format(time.RFC3339Nano)
}

// NewUnixTime creates a new UnixTime from a time.Time
func NewUnixTime(t time.Time) *UnixTime {
	return &UnixTime{Time: t}
}

// ToTime converts UnixTime pointer to time.Time pointer
func (t *UnixTime) ToTime() *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}

// FromTime converts time.Time pointer to UnixTime pointer
func FromTime(t *time.Time) *UnixTime {
	if t == nil {
		return nil
	}
	return &UnixTime{Time: *t}
}
