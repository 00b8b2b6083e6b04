package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayfin-dev/rayfin/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	r, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "rayfin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSQLiteFindAll_EmptyDatabase(t *testing.T) {
	r := newTestSQLite(t)

	got, err := r.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteRoundTrip(t *testing.T) {
	r := newTestSQLite(t)
	ctx := context.Background()

	saved := []model.Expense{
		exp(t, "a1b2c3d4", date(2024, 3, 1), "12.50", model.CategoryGroceries, "weekly shop, extra snacks"),
		exp(t, "e5f6a7b8", date(2024, 3, 15), "40.00", model.CategoryRent, ""),
		exp(t, "c9d0e1f2", date(2024, 4, 2), "7.25", model.CategoryOther, `He said "hi", then left`),
	}
	require.NoError(t, r.SaveAll(ctx, saved))

	got, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	byID := make(map[string]model.Expense, len(got))
	for _, e := range got {
		byID[e.ID] = e
	}
	for _, want := range saved {
		e, ok := byID[want.ID]
		require.True(t, ok, "missing expense %s", want.ID)
		assert.True(t, want.Date.Equal(e.Date))
		assert.True(t, want.Amount.Equal(e.Amount), "amount mismatch for %s", want.ID)
		assert.Equal(t, want.Category, e.Category)
		assert.Equal(t, want.Note, e.Note)
	}
}

func TestSQLiteFindAll_OrderedByDateDescending(t *testing.T) {
	r := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.SaveAll(ctx, []model.Expense{
		exp(t, "11111111", date(2024, 1, 5), "1.00", model.CategoryOther, ""),
		exp(t, "22222222", date(2024, 3, 1), "2.00", model.CategoryOther, ""),
		exp(t, "33333333", date(2024, 2, 10), "3.00", model.CategoryOther, ""),
	}))

	got, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "22222222", got[0].ID)
	assert.Equal(t, "33333333", got[1].ID)
	assert.Equal(t, "11111111", got[2].ID)
}

func TestSQLiteSaveAll_ReplacesExisting(t *testing.T) {
	r := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.SaveAll(ctx, []model.Expense{
		exp(t, "11111111", date(2024, 1, 1), "1.00", model.CategoryOther, ""),
		exp(t, "22222222", date(2024, 1, 2), "2.00", model.CategoryOther, ""),
	}))
	require.NoError(t, r.SaveAll(ctx, []model.Expense{
		exp(t, "33333333", date(2024, 1, 3), "3.00", model.CategoryOther, ""),
	}))

	got, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "33333333", got[0].ID)
}

func TestSQLiteSaveAll_RollsBackOnFailure(t *testing.T) {
	r := newTestSQLite(t)
	ctx := context.Background()

	before := []model.Expense{
		exp(t, "11111111", date(2024, 1, 1), "1.00", model.CategoryOther, "first"),
		exp(t, "22222222", date(2024, 1, 2), "2.00", model.CategoryRent, "second"),
	}
	require.NoError(t, r.SaveAll(ctx, before))

	// A duplicate primary key fails the bulk insert after the delete
	// has already run inside the transaction.
	dupe := []model.Expense{
		exp(t, "33333333", date(2024, 2, 1), "3.00", model.CategoryOther, ""),
		exp(t, "33333333", date(2024, 2, 2), "4.00", model.CategoryOther, ""),
	}
	err := r.SaveAll(ctx, dupe)
	require.Error(t, err)

	got, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2, "pre-call collection must be unchanged after rollback")
	assert.Equal(t, "22222222", got[0].ID)
	assert.Equal(t, "11111111", got[1].ID)
}

func TestSQLiteAmountStoredExactly(t *testing.T) {
	r := newTestSQLite(t)
	ctx := context.Background()

	sum := exp(t, "a1b2c3d4", date(2024, 3, 2), "0.1", model.CategoryOther, "")
	sum.Amount = dec("0.1").Add(dec("0.2"))
	fine := exp(t, "e5f6a7b8", date(2024, 3, 1), "12.505", model.CategoryOther, "")
	require.NoError(t, r.SaveAll(ctx, []model.Expense{sum, fine}))

	got, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("0.30")), "got %s", got[0].Amount)
	assert.True(t, got[1].Amount.Equal(dec("12.505")), "got %s", got[1].Amount)
}
