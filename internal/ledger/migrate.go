package ledger

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

// EnsureMigrated converts the legacy single-record-per-day log into spend
// entries. It runs at most once per install: a completion marker is
// written even when the legacy data is unparsable, so a corrupt legacy
// store is skipped once and never retried. That trades silent loss of
// unreadable legacy rows for guaranteed forward progress, and it is the
// documented behavior, not an oversight.
func (s *Store) EnsureMigrated(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureMigratedLocked(ctx)
}

func (s *Store) ensureMigratedLocked(ctx context.Context) {
	if s.migrated {
		return
	}

	if _, done, err := s.kv.Get(ctx, storage.KeyMigrationDone); err != nil {
		slog.Warn("failed to read migration marker, skipping migration", "error", err)
		return
	} else if done {
		s.migrated = true
		return
	}

	s.convertLegacyLogs(ctx)

	if err := s.kv.Set(ctx, storage.KeyMigrationDone, "1"); err != nil {
		slog.Error("failed to write migration marker", "error", err)
		return
	}
	s.migrated = true
}

// convertLegacyLogs emits one SpendEntry per legacy row that actually
// recorded a spend. Explicit "no spend" days carry no entry in the new
// model and are dropped.
func (s *Store) convertLegacyLogs(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyLegacyDailyLogs)
	if err != nil {
		slog.Warn("failed to read legacy logs, nothing to migrate", "error", err)
		return
	}
	if !ok {
		return
	}

	var logs []model.DailyLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		slog.Warn("legacy logs are unparsable, skipping conversion", "error", err)
		return
	}

	converted := 0
	entries := s.loadEntriesRaw(ctx)
	for _, l := range logs {
		if !l.DidSpend || l.Amount <= 0 {
			continue
		}

		category := l.Category
		if category == "" {
			category = model.DefaultCategory
		}

		entries = append(entries, model.SpendEntry{
			ID:        l.ID,
			Date:      l.Date,
			Amount:    l.Amount,
			Category:  category,
			Note:      l.Note,
			Timestamp: l.CreatedAt,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
		converted++
	}

	if converted > 0 {
		if err := s.saveEntries(ctx, entries); err != nil {
			slog.Error("failed to persist migrated entries", "error", err)
			return
		}
	}

	slog.Info("migrated legacy daily logs", "legacy_rows", len(logs), "entries_created", converted)
}

// loadEntriesRaw reads the current collection without triggering the
// migration check; used only inside the migration itself.
func (s *Store) loadEntriesRaw(ctx context.Context) []model.SpendEntry {
	raw, ok, err := s.kv.Get(ctx, storage.KeyEntries)
	if err != nil || !ok {
		return nil
	}

	var entries []model.SpendEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}
