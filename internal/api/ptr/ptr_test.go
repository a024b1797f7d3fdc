package ptr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nandemo-ya/dms-go/internal/api/ptr"
)

func TestScalars(t *testing.T) {
	assert.Equal(t, "dms.t2.medium", ptr.ToString(ptr.String("dms.t2.medium")))
	assert.Equal(t, "", ptr.ToString(nil))

	assert.True(t, ptr.ToBool(ptr.Bool(true)))
	assert.False(t, ptr.ToBool(nil))

	assert.Equal(t, int32(100), ptr.ToInt32(ptr.Int32(100)))
	assert.Equal(t, int32(0), ptr.ToInt32(nil))

	assert.Equal(t, int64(1<<40), ptr.ToInt64(ptr.Int64(1<<40)))
	assert.Equal(t, int64(0), ptr.ToInt64(nil))
}

func TestGeneric(t *testing.T) {
	p := ptr.Of(3.5)
	assert.Equal(t, 3.5, *p)
	assert.Equal(t, 3.5, ptr.Value(p))

	var nilSlice *[]string
	assert.Nil(t, ptr.Value(nilSlice))
}

func TestTime(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ts := ptr.Time(now)
	assert.True(t, ptr.ToTime(ts).Equal(now))
	assert.True(t, ptr.ToTime(nil).IsZero())
}

func TestToStringMap(t *testing.T) {
	out := ptr.ToStringMap(map[string]*string{"a": ptr.String("1"), "b": nil})
	assert.Equal(t, map[string]string{"a": "1"}, out)
}
