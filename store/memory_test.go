package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

func TestMemoryStoreGetPut(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	var missing testDoc
	err := ms.Get(ctx, "docs", "nope", &missing)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, ms.Put(ctx, "docs", "d1", testDoc{ID: "d1", Name: "first"}))

	var got testDoc
	require.NoError(t, ms.Get(ctx, "docs", "d1", &got))
	assert.Equal(t, "first", got.Name)
}

func TestMemoryStoreSetIdempotence(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	require.NoError(t, ms.Put(ctx, "docs", "d1", testDoc{ID: "d1"}))

	// adding the same member twice must leave exactly one occurrence
	require.NoError(t, ms.AddToSet(ctx, "docs", "d1", "tags", "a"))
	require.NoError(t, ms.AddToSet(ctx, "docs", "d1", "tags", "a"))
	require.NoError(t, ms.AddToSet(ctx, "docs", "d1", "tags", "b"))

	var got testDoc
	require.NoError(t, ms.Get(ctx, "docs", "d1", &got))
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	// removing an absent member is a no-op
	require.NoError(t, ms.RemoveFromSet(ctx, "docs", "d1", "tags", "zzz"))
	require.NoError(t, ms.RemoveFromSet(ctx, "docs", "d1", "tags", "a"))
	require.NoError(t, ms.Get(ctx, "docs", "d1", &got))
	assert.Equal(t, []string{"b"}, got.Tags)
}

func TestMemoryStoreSetOpOnMissingDocumentCreatesIt(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	require.NoError(t, ms.AddToSet(ctx, "docs", "fresh", "tags", "x"))

	var got testDoc
	require.NoError(t, ms.Get(ctx, "docs", "fresh", &got))
	assert.Equal(t, []string{"x"}, got.Tags)
}

func TestMemoryStoreApplySetOps(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ops := []SetOp{
		{Collection: "docs", ID: "a", Field: "tags", Value: "b"},
		{Collection: "docs", ID: "b", Field: "tags", Value: "a"},
	}
	require.NoError(t, ms.ApplySetOps(ctx, ops...))

	var a, b testDoc
	require.NoError(t, ms.Get(ctx, "docs", "a", &a))
	require.NoError(t, ms.Get(ctx, "docs", "b", &b))
	assert.Equal(t, []string{"b"}, a.Tags)
	assert.Equal(t, []string{"a"}, b.Tags)
}

func TestMemoryStoreAppendToListKeepsOrder(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	type entry struct {
		Text string `json:"text"`
	}
	type listDoc struct {
		Entries []entry `json:"entries"`
	}

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, ms.AppendToList(ctx, "docs", "d1", "entries", entry{Text: text}))
	}

	var got listDoc
	require.NoError(t, ms.Get(ctx, "docs", "d1", &got))
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "one", got.Entries[0].Text)
	assert.Equal(t, "two", got.Entries[1].Text)
	assert.Equal(t, "three", got.Entries[2].Text)
}

func TestMemoryStoreQuery(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	require.NoError(t, ms.Put(ctx, "docs", "d1", testDoc{ID: "d1", Name: "x", Tags: []string{"u1"}, CreatedAt: "2025-01-01T00:00:01Z"}))
	require.NoError(t, ms.Put(ctx, "docs", "d2", testDoc{ID: "d2", Name: "x", CreatedAt: "2025-01-01T00:00:03Z"}))
	require.NoError(t, ms.Put(ctx, "docs", "d3", testDoc{ID: "d3", Name: "y", Tags: []string{"u1", "u2"}, CreatedAt: "2025-01-01T00:00:02Z"}))

	var byName []testDoc
	require.NoError(t, ms.Query(ctx, "docs", Query{
		Equals:     map[string]string{"name": "x"},
		OrderBy:    "createdAt",
		Descending: true,
	}, &byName))
	require.Len(t, byName, 2)
	assert.Equal(t, "d2", byName[0].ID)
	assert.Equal(t, "d1", byName[1].ID)

	var byMember []testDoc
	require.NoError(t, ms.Query(ctx, "docs", Query{
		Contains: map[string]string{"tags": "u1"},
		OrderBy:  "createdAt",
	}, &byMember))
	require.Len(t, byMember, 2)
	assert.Equal(t, "d1", byMember[0].ID)
	assert.Equal(t, "d3", byMember[1].ID)

	var byRange []testDoc
	require.NoError(t, ms.Query(ctx, "docs", Query{
		Range:   &Range{Field: "createdAt", After: "2025-01-01T00:00:01Z"},
		OrderBy: "createdAt",
	}, &byRange))
	require.Len(t, byRange, 2)
	assert.Equal(t, "d3", byRange[0].ID)

	var limited []testDoc
	require.NoError(t, ms.Query(ctx, "docs", Query{OrderBy: "createdAt", Limit: 1}, &limited))
	require.Len(t, limited, 1)
	assert.Equal(t, "d1", limited[0].ID)

	var none []testDoc
	require.NoError(t, ms.Query(ctx, "empty", Query{}, &none))
	assert.Empty(t, none)
}

func TestMemoryStoreDeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	require.NoError(t, ms.Delete(ctx, "docs", "ghost"))
}
