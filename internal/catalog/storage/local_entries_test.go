package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalEntries_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewLocalEntries(newTestStore(t), "")
	ctx := context.Background()

	entries := []catalog.Entry{
		{ID: 2, Title: "Scarf", Price: decimal.RequireFromString("19.9"), Category: "Accessories", IsNew: true, Images: []string{"a.png"}},
		{ID: 1, Title: "Mug", Price: decimal.RequireFromString("7"), Category: "Kitchen", IsNew: true},
	}
	require.NoError(t, repo.Save(ctx, entries))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Scarf", got[0].Title)
	assert.True(t, got[0].Price.Equal(entries[0].Price))
	assert.True(t, got[1].IsNew)
}

func TestLocalEntries_MissingIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := NewLocalEntries(newTestStore(t), "seller-products").Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalEntries_CorruptIsEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), keyFilename(DefaultLocalEntriesKey)), []byte(`{"products":`), 0644))

	got, err := NewLocalEntries(s, DefaultLocalEntriesKey).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalEntries_SaveEmptyWritesArray(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, NewLocalEntries(s, "").Save(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(s.Dir(), keyFilename(DefaultLocalEntriesKey)))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestLocalEntries_WithStore(t *testing.T) {
	t.Parallel()

	repo := NewLocalEntries(newTestStore(t), "")
	ctx := context.Background()

	s1 := catalog.NewStore(repo)
	status := s1.AddLocalEntry(ctx, catalog.Entry{ID: 1, Title: "Cap", Category: "Hats"})
	require.True(t, status.Persisted)

	s2 := catalog.NewStore(repo)
	s2.LoadLocalEntries(ctx)

	assert.Equal(t, []string{"Hats"}, s2.Categories())
	require.Len(t, s2.GetAllEntries(), 1)
	assert.True(t, s2.GetAllEntries()[0].IsNew)
}
