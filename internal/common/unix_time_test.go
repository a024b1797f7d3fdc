package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		expected time.Time
	}{
		{
			name:     "numeric unix timestamp",
			input:    `1755005925.233`,
			expected: time.Unix(1755005925, 233000000),
		},
		{
			name:     "integer unix timestamp",
			input:    `1755005925`,
			expected: time.Unix(1755005925, 0),
		},
		{
			name:     "RFC3339 string",
			input:    `"2025-01-10T15:30:00Z"`,
			expected: time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC),
		},
		{
			name:  "null value",
			input: `null`,
		},
		{
			name:    "invalid string",
			input:   `"not a timestamp"`,
			wantErr: true,
		},
		{
			name:    "object",
			input:   `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ut UnixTime
			err := json.Unmarshal([]byte(tt.input), &ut)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.expected.IsZero() {
				assert.True(t, ut.IsZero())
				return
			}
			assert.True(t, ut.Time.Equal(tt.expected), "got %v", ut.Time)
		})
	}
}

func TestUnixTime_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(UnixTime{Time: time.Unix(1755005925, 233000000)})
	require.NoError(t, err)
	assert.Equal(t, "1755005925.233", string(data))

	data, err = json.Marshal(UnixTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestUnixTime_RoundTripInStruct(t *testing.T) {
	type record struct {
		Date *UnixTime `json:"Date,omitempty"`
	}

	in := record{Date: NewUnixTime(time.Unix(1700000000, 500000000))}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Date": 1700000000.5}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotNil(t, out.Date)
	assert.True(t, in.Date.Equal(*out.Date))
}

func TestUnixTime_Equal(t *testing.T) {
	instant := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := UnixTime{Time: instant}
	b := UnixTime{Time: instant.In(time.FixedZone("JST", 9*3600))}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(UnixTime{Time: instant.Add(time.Millisecond)}))
	assert.Equal(t, "2024-05-01T12:00:00Z", b.String())
}

func TestUnixTimeConversions(t *testing.T) {
	assert.Nil(t, FromTime(nil))
	var nilTime *UnixTime
	assert.Nil(t, nilTime.ToTime())

	now := time.Now()
	ut := FromTime(&now)
	require.NotNil(t, ut)
	assert.Equal(t, now, *ut.ToTime())
}
