package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/ledger"
	"github.com/centsible/centsible/internal/recurring"
	"github.com/centsible/centsible/internal/settings"
	"github.com/centsible/centsible/internal/storage"
)

// app bundles the wired stores for one command invocation.
type app struct {
	kv        *storage.SQLiteStore
	ledger    *ledger.Store
	settings  *settings.Store
	templates *recurring.Store
	engine    *recurring.Engine
}

// initApp opens storage and wires the stores with proper path expansion.
func initApp(_ context.Context) (*app, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	settingsStore := settings.NewStore(kv)
	entryStore := ledger.NewStore(kv, settingsStore)
	templateStore := recurring.NewStore(kv)

	return &app{
		kv:        kv,
		ledger:    entryStore,
		settings:  settingsStore,
		templates: templateStore,
		engine:    recurring.NewEngine(templateStore, entryStore, kv),
	}, nil
}

func (a *app) Close() {
	_ = a.kv.Close()
}

// refreshRecurring backfills today's recurring occurrences. Every
// day-reading command calls this before querying the ledger, mirroring
// how the screens trigger generation on day load.
func (a *app) refreshRecurring(ctx context.Context) {
	if _, err := a.engine.GenerateForToday(ctx); err != nil {
		common.LogError(err, "recurring generation failed", nil)
	}
}

// parseAmount validates the amount a user typed. Positivity is enforced
// here at the boundary; the entry store itself does not re-validate.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, common.NewUserError(fmt.Sprintf("%q is not a number", raw), err)
	}
	if amount <= 0 {
		return 0, common.NewUserError("amount must be greater than zero", common.ErrInvalidAmount)
	}
	return amount, nil
}

// shortID abbreviates an identifier for display. Migrated legacy ids can
// be shorter than the usual UUID.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// resolveDay turns an optional date argument into a concrete day,
// defaulting to today.
func resolveDay(raw string) (string, error) {
	if raw == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", common.NewUserError(fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD", raw), common.ErrInvalidDate)
	}
	return raw, nil
}
