package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/internal/storage"
)

type record struct {
	Name  string
	Count int
}

func TestTableCRUD(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record]()

	require.NoError(t, table.Create(ctx, "b", record{Name: "b"}))
	require.NoError(t, table.Create(ctx, "a", record{Name: "a"}))
	require.NoError(t, table.Create(ctx, "c", record{Name: "c"}))
	assert.Equal(t, 3, table.Len())

	err := table.Create(ctx, "a", record{Name: "dup"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	got, err := table.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	_, err = table.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, table.Update(ctx, "a", record{Name: "a", Count: 2}))
	got, _ = table.Get(ctx, "a")
	assert.Equal(t, 2, got.Count)
	assert.ErrorIs(t, table.Update(ctx, "missing", record{}), storage.ErrNotFound)

	list, err := table.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{Name: "b"}, {Name: "a", Count: 2}, {Name: "c"}}, list)

	deleted, err := table.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", deleted.Name)
	_, err = table.Delete(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	list, _ = table.List(ctx)
	assert.Equal(t, []record{{Name: "b"}, {Name: "c"}}, list)
}

func TestTableReturnsCopies(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record]()
	require.NoError(t, table.Create(ctx, "a", record{Name: "a"}))

	got, _ := table.Get(ctx, "a")
	got.Count = 10

	again, _ := table.Get(ctx, "a")
	assert.Zero(t, again.Count)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record]()
	require.NoError(t, table.Create(ctx, "x", record{Name: "x", Count: 1}))
	require.NoError(t, table.Create(ctx, "y", record{Name: "y", Count: 2}))

	got, ok, err := storage.Find[record](ctx, table, func(r record) bool { return r.Count == 2 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "y", got.Name)

	_, ok, err = storage.Find[record](ctx, table, func(r record) bool { return r.Count == 3 })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTableConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26)) + string(rune('0'+i/26))
			_ = table.Create(ctx, key, record{Count: i})
			_, _ = table.List(ctx)
			_, _ = table.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, table.Len())
}

type pointerRecord struct {
	Name *string
	Tags []string
}

func copyPointerRecord(r pointerRecord) pointerRecord {
	out := pointerRecord{Tags: append([]string(nil), r.Tags...)}
	if r.Name != nil {
		name := *r.Name
		out.Name = &name
	}
	return out
}

func TestTableWithCopy(t *testing.T) {
	ctx := context.Background()
	table := NewTable[pointerRecord](WithCopy(copyPointerRecord))

	name := "orig"
	in := pointerRecord{Name: &name, Tags: []string{"a"}}
	require.NoError(t, table.Create(ctx, "k", in))

	// Changes to the stored value's source do not reach the table
	name = "changed"
	in.Tags[0] = "b"

	got, err := table.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "orig", *got.Name)
	assert.Equal(t, []string{"a"}, got.Tags)

	// Neither do changes to returned records
	*got.Name = "mutated"
	list, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "orig", *list[0].Name)

	*list[0].Name = "mutated"
	got, err = table.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "orig", *got.Name)

	update := "updated"
	upd := pointerRecord{Name: &update}
	require.NoError(t, table.Update(ctx, "k", upd))
	update = "later"
	got, _ = table.Get(ctx, "k")
	assert.Equal(t, "updated", *got.Name)
}
