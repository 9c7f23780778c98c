package ledger

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

func seedLegacyLogs(t *testing.T, kv *storage.SQLiteStore, logs []model.DailyLog) {
	t.Helper()
	data, err := json.Marshal(logs)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), storage.KeyLegacyDailyLogs, string(data)))
}

func TestEnsureMigrated_ConvertsSpendDays(t *testing.T) {
	store, kv := createTestLedger(t)
	ctx := context.Background()

	created := time.Date(2023, 6, 1, 8, 30, 0, 0, time.Local)
	seedLegacyLogs(t, kv, []model.DailyLog{
		{ID: "log-1", Date: "2023-06-01", DidSpend: true, Amount: 12.5, Category: "Groceries", Note: "market", CreatedAt: created, UpdatedAt: created},
		{ID: "log-2", Date: "2023-06-02", DidSpend: false, Amount: 0},
		{ID: "log-3", Date: "2023-06-03", DidSpend: true, Amount: 0},
		{ID: "log-4", Date: "2023-06-04", DidSpend: true, Amount: 3, Category: ""},
	})

	store.EnsureMigrated(ctx)

	entries := store.AllEntries(ctx)
	require.Len(t, entries, 2, "only didSpend rows with positive amounts convert")

	assert.Equal(t, "log-1", entries[0].ID, "legacy identifier is preserved")
	assert.Equal(t, "2023-06-01", entries[0].Date)
	assert.Equal(t, 12.5, entries[0].Amount)
	assert.Equal(t, "Groceries", entries[0].Category)
	assert.Equal(t, "market", entries[0].Note)
	assert.True(t, entries[0].CreatedAt.Equal(created))

	assert.Equal(t, "Uncategorized", entries[1].Category, "missing legacy category defaults")
}

func TestEnsureMigrated_Idempotent(t *testing.T) {
	store, kv := createTestLedger(t)
	ctx := context.Background()

	seedLegacyLogs(t, kv, []model.DailyLog{
		{ID: "log-1", Date: "2023-06-01", DidSpend: true, Amount: 10},
	})

	store.EnsureMigrated(ctx)
	first := store.AllEntries(ctx)

	// A second store over the same database must not convert again.
	again := NewStore(kv, staticSettings{currency: "USD"})
	again.EnsureMigrated(ctx)
	second := again.AllEntries(ctx)

	assert.Equal(t, first, second, "running the migration twice changes nothing")
	require.Len(t, second, 1)
}

func TestEnsureMigrated_CorruptLegacyStillMarksDone(t *testing.T) {
	store, kv := createTestLedger(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeyLegacyDailyLogs, "{not json"))

	store.EnsureMigrated(ctx)

	assert.Empty(t, store.AllEntries(ctx))

	_, done, err := kv.Get(ctx, storage.KeyMigrationDone)
	require.NoError(t, err)
	assert.True(t, done, "marker is set even when conversion fails, to avoid retry loops")
}

func TestEnsureMigrated_NoLegacyData(t *testing.T) {
	store, kv := createTestLedger(t)
	ctx := context.Background()

	store.EnsureMigrated(ctx)

	assert.Empty(t, store.AllEntries(ctx))

	_, done, err := kv.Get(ctx, storage.KeyMigrationDone)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestEnsureMigrated_RunsLazilyBeforeReads(t *testing.T) {
	store, kv := createTestLedger(t)
	ctx := context.Background()

	seedLegacyLogs(t, kv, []model.DailyLog{
		{ID: "log-1", Date: "2023-06-01", DidSpend: true, Amount: 10},
	})

	// A plain read triggers the conversion without an explicit call.
	entries := store.EntriesForDate(ctx, "2023-06-01")
	require.Len(t, entries, 1)
	assert.Equal(t, "log-1", entries[0].ID)
}
