package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/storage"
)

// staticSettings is a SettingsReader stub with a fixed default currency.
type staticSettings struct {
	currency string
}

func (s staticSettings) DefaultCurrency(_ context.Context) string {
	return s.currency
}

// Helper function to create a ledger over a real SQLite store.
func createTestLedger(t *testing.T) (*Store, *storage.SQLiteStore) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	kv, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err, "failed to create storage")
	t.Cleanup(func() { _ = kv.Close() })

	return NewStore(kv, staticSettings{currency: "USD"}), kv
}

func TestStore_AddEntry(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	entry, err := store.AddEntry(ctx, "2024-01-15", 12.50, "Groceries", "weekly shop", "EUR")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2024-01-15", entry.Date)
	assert.Equal(t, 12.50, entry.Amount)
	assert.Equal(t, "Groceries", entry.Category)
	assert.Equal(t, "EUR", entry.Currency)
	assert.Equal(t, "weekly shop", entry.Note)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestStore_AddEntryDefaults(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	entry, err := store.AddEntry(ctx, "2024-01-15", 5, "", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Uncategorized", entry.Category)
	assert.Equal(t, "USD", entry.Currency, "currency should fall back to the settings default")
}

func TestStore_AddEntryRejectsBadDate(t *testing.T) {
	store, _ := createTestLedger(t)

	_, err := store.AddEntry(context.Background(), "15/01/2024", 5, "", "", "")
	assert.ErrorIs(t, err, common.ErrInvalidDate)
}

func TestStore_UpdateEntry(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	entry, err := store.AddEntry(ctx, "2024-01-15", 12.50, "Groceries", "", "USD")
	require.NoError(t, err)

	updated, err := store.UpdateEntry(ctx, entry.ID, 20, "Dining", "dinner out", "USD")
	require.NoError(t, err)

	assert.Equal(t, entry.ID, updated.ID, "id is immutable")
	assert.Equal(t, entry.Date, updated.Date, "date is immutable")
	assert.Equal(t, 20.0, updated.Amount)
	assert.Equal(t, "Dining", updated.Category)
	assert.Equal(t, "dinner out", updated.Note)
	assert.False(t, updated.UpdatedAt.Before(entry.UpdatedAt))
}

func TestStore_UpdateEntryNotFound(t *testing.T) {
	store, _ := createTestLedger(t)

	_, err := store.UpdateEntry(context.Background(), "missing", 20, "", "", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_DeleteEntry(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	entry, err := store.AddEntry(ctx, "2024-01-15", 12.50, "Groceries", "", "USD")
	require.NoError(t, err)

	removed, err := store.DeleteEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Empty(t, store.EntriesForDate(ctx, "2024-01-15"))

	removed, err = store.DeleteEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.False(t, removed, "deleting a missing entry reports false, not an error")
}

func TestStore_EntriesForDateOrder(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	tick := 0
	store.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})

	first, err := store.AddEntry(ctx, "2024-01-15", 1, "", "", "")
	require.NoError(t, err)
	second, err := store.AddEntry(ctx, "2024-01-15", 2, "", "", "")
	require.NoError(t, err)
	_, err = store.AddEntry(ctx, "2024-01-16", 3, "", "", "")
	require.NoError(t, err)

	entries := store.EntriesForDate(ctx, "2024-01-15")
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "most recent entry comes first")
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestStore_EntriesForRange(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	days := []string{"2024-01-01", "2024-01-15", "2024-01-31", "2024-02-01"}
	for _, d := range days {
		_, err := store.AddEntry(ctx, d, 10, "", "", "")
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "inclusive on both bounds",
			start: "2024-01-01",
			end:   "2024-01-31",
			want:  []string{"2024-01-01", "2024-01-15", "2024-01-31"},
		},
		{
			name:  "single day",
			start: "2024-01-15",
			end:   "2024-01-15",
			want:  []string{"2024-01-15"},
		},
		{
			name:  "empty range",
			start: "2024-03-01",
			end:   "2024-03-31",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := store.EntriesForRange(ctx, tt.start, tt.end)
			var got []string
			for _, e := range entries {
				got = append(got, e.Date)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_DayData(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	empty := store.DayData(ctx, "2024-01-15")
	assert.False(t, empty.HasSpend)
	assert.Zero(t, empty.TotalAmount)
	assert.Empty(t, empty.Entries)

	_, err := store.AddEntry(ctx, "2024-01-15", 10, "Groceries", "", "")
	require.NoError(t, err)
	_, err = store.AddEntry(ctx, "2024-01-15", 5.25, "Dining", "", "")
	require.NoError(t, err)

	day := store.DayData(ctx, "2024-01-15")
	assert.True(t, day.HasSpend)
	assert.InDelta(t, 15.25, day.TotalAmount, 0.001)
	assert.Len(t, day.Entries, 2)
}

func TestStore_CustomCategories(t *testing.T) {
	store, _ := createTestLedger(t)
	ctx := context.Background()

	category, err := store.AddCustomCategory(ctx, "Pets")
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)

	names := store.CategoryNames(ctx)
	assert.Contains(t, names, "Groceries", "built-ins always present")
	assert.Equal(t, "Pets", names[len(names)-1], "custom categories follow the built-ins")

	removed, err := store.DeleteCustomCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.DeleteCustomCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
