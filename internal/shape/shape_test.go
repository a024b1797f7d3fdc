package shape_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/internal/common"
	"github.com/nandemo-ya/dms-go/internal/shape"
)

type label struct {
	Key   *string `json:"Key,omitempty" validate:"required"`
	Value *string `json:"Value,omitempty"`
}

func (l *label) Equal(o *label) bool { return shape.Equal(l, o) }

type widget struct {
	Name    *string          `json:"Name,omitempty" validate:"required"`
	Size    *int32           `json:"Size,omitempty"`
	Enabled *bool            `json:"Enabled,omitempty"`
	Created *common.UnixTime `json:"Created,omitempty"`
	Blob    []byte           `json:"Blob,omitempty"`
	Labels  []label          `json:"Labels,omitempty" validate:"omitempty,dive"`
	Parent  *label           `json:"Parent,omitempty"`
	Extra   map[string]string
}

func str(s string) *string { return &s }
func i32(v int32) *int32   { return &v }
func yes() *bool           { b := true; return &b }

func TestRender(t *testing.T) {
	w := widget{
		Name:   str("alpha"),
		Size:   i32(3),
		Labels: []label{{Key: str("a"), Value: str("1")}, {Key: str("b")}},
		Parent: &label{Key: str("p")},
		Blob:   []byte("hi"),
		Extra:  map[string]string{"z": "26", "a": "1"},
	}
	assert.Equal(t,
		"{Name: alpha,Size: 3,Blob: aGk=,Labels: [{Key: a,Value: 1}, {Key: b}],Parent: {Key: p},Extra: {a=1, z=26}}",
		shape.Render(w))

	assert.Equal(t, "{}", shape.Render(widget{}))
	assert.Equal(t, "{Name: a\"b,c}", shape.Render(widget{Name: str("a\"b,c")}))

	var nilWidget *widget
	assert.Equal(t, "null", shape.Render(nilWidget))

	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "{Created: 2024-03-01T00:00:00Z}", shape.Render(&widget{Created: common.NewUnixTime(ts)}))
}

func TestEqual(t *testing.T) {
	instant := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := &widget{Name: str("x"), Enabled: yes(), Created: common.NewUnixTime(instant), Parent: &label{Key: str("k")}}
	b := &widget{Parent: &label{Key: str("k")}, Created: common.NewUnixTime(instant.In(time.FixedZone("X", 3600))), Enabled: yes(), Name: str("x")}

	assert.True(t, shape.Equal(a, b))
	assert.True(t, shape.Equal(a, a))
	assert.Equal(t, shape.Hash(a), shape.Hash(b))

	var nilA, nilB *widget
	assert.True(t, shape.Equal(nilA, nilB))
	assert.False(t, shape.Equal(a, nilB))
	assert.False(t, shape.Equal(nilA, a))

	b.Parent.Value = str("v")
	assert.False(t, shape.Equal(a, b))

	c := &widget{Name: str("x"), Labels: []label{}}
	d := &widget{Name: str("x")}
	assert.False(t, shape.Equal(c, d), "empty and unset collections differ")
}

func TestHash(t *testing.T) {
	assert.Equal(t, int32(0), shape.Hash((*widget)(nil)))

	empty := shape.Hash(&widget{})
	// Eight unset fields: 1 * 31^8 with int32 wrap around.
	want := int32(1)
	for i := 0; i < 8; i++ {
		want *= 31
	}
	assert.Equal(t, want, empty)

	a := &widget{Extra: map[string]string{"a": "1", "b": "2"}}
	b := &widget{Extra: map[string]string{"b": "2", "a": "1"}}
	assert.Equal(t, shape.Hash(a), shape.Hash(b))

	assert.NotEqual(t, shape.Hash(&widget{Name: str("a")}), shape.Hash(&widget{Name: str("b")}))
}

func TestCollections(t *testing.T) {
	src := []string{"a", "b"}
	cp := shape.CloneSlice(src)
	src[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, cp)
	assert.Nil(t, shape.CloneSlice[string](nil))

	var s []string
	s = shape.AppendSlice(s)
	require.NotNil(t, s)
	assert.Empty(t, s)
	s = shape.AppendSlice(s, "x", "y")
	assert.Equal(t, []string{"x", "y"}, s)

	m := map[string]int{"a": 1}
	mc := shape.CloneMap(m)
	m["a"] = 2
	assert.Equal(t, 1, mc["a"])
	assert.Nil(t, shape.CloneMap[string, int](nil))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, shape.Validate(&widget{Name: str("")}))

	err := shape.Validate(&widget{Labels: []label{{Value: str("v")}}})
	var invalid *shape.InvalidParamsError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "widget", invalid.Context)
	assert.ElementsMatch(t, []string{"Name", "Labels[0].Key"}, invalid.Fields)
	assert.Contains(t, err.Error(), "2 validation error(s) found in widget")

	err = shape.Validate(&widget{Name: str("n"), Parent: &label{}})
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"Parent.Key"}, invalid.Fields)

	assert.Error(t, shape.Validate((*widget)(nil)))
}

func TestClone(t *testing.T) {
	type nested struct {
		Labels  []label
		Names   []string
		Attrs   map[string]*string
		When    *common.UnixTime
		Child   *label
		Payload []byte
	}

	when := common.NewUnixTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	src := nested{
		Labels:  []label{{Key: str("a"), Value: str("1")}},
		Names:   []string{"x"},
		Attrs:   map[string]*string{"k": str("v")},
		When:    when,
		Child:   &label{Key: str("c")},
		Payload: []byte("data"),
	}
	dst := shape.Clone(src)
	assert.Equal(t, src, dst)

	*dst.Labels[0].Key = "changed"
	dst.Names[0] = "y"
	*dst.Attrs["k"] = "w"
	*dst.Child.Key = "d"
	dst.Payload[0] = 'D'
	dst.When.Time = dst.When.Add(time.Hour)

	assert.Equal(t, "a", *src.Labels[0].Key)
	assert.Equal(t, "x", src.Names[0])
	assert.Equal(t, "v", *src.Attrs["k"])
	assert.Equal(t, "c", *src.Child.Key)
	assert.Equal(t, "data", string(src.Payload))
	assert.Equal(t, 3, src.When.Hour())

	var empty nested
	assert.Equal(t, empty, shape.Clone(empty))
	assert.Nil(t, shape.Clone[*label](nil))
}
