package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-activity-log/internal/domain/acts"
)

func newTestRepo(t *testing.T) *ActsRepo {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "data", "ptdb.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db))
	return NewActsRepo(db)
}

func TestActsRepo_CreateListOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 55; i++ {
		_, err := repo.Create(ctx, acts.Act{
			Time: base.Add(time.Duration(i) * time.Minute),
			Type: acts.TypePee,
			Text: "Pee",
		})
		require.NoError(t, err)
	}

	items, err := repo.List(ctx, acts.ListLimit)
	require.NoError(t, err)
	require.Len(t, items, acts.ListLimit)

	assert.True(t, items[0].Time.Equal(base.Add(54*time.Minute)))
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Time.After(items[i-1].Time), "list must be sorted desc")
	}
}

func TestActsRepo_KeepsMillisAndType(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ts := time.Date(2024, 6, 1, 9, 30, 15, 123_000_000, time.UTC)

	created, err := repo.Create(ctx, acts.Act{Time: ts, Type: acts.TypeAccidentVomit, Text: "Accident (Vomit)"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, created.Time.Equal(ts))
	assert.Equal(t, acts.TypeAccidentVomit, created.Type)
}

func TestActsRepo_UpdateDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ts := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	a, err := repo.Create(ctx, acts.Act{Time: ts, Type: acts.TypeWater, Text: "Water"})
	require.NoError(t, err)

	u, err := repo.Update(ctx, acts.Act{ID: a.ID, Time: ts.Add(time.Minute), Type: acts.TypeFood, Text: "okay"})
	require.NoError(t, err)
	assert.Equal(t, "okay", u.Text)
	assert.Equal(t, acts.TypeFood, u.Type)
	assert.True(t, u.Time.Equal(ts.Add(time.Minute)))

	_, err = repo.Update(ctx, acts.Act{ID: a.ID + 100, Time: ts, Type: acts.TypeFood, Text: "okay"})
	require.ErrorIs(t, err, acts.ErrNotFound)

	removed, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, u, removed)

	_, err = repo.Delete(ctx, a.ID)
	require.ErrorIs(t, err, acts.ErrNotFound)

	items, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
