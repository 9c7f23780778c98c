// Package ledger implements the spend-entry store and its schema migration.
//
// Every mutation is a full read-modify-write of the entry collection: the
// whole JSON blob is loaded, changed in memory, and written back in one
// storage call, so the previous collection survives a failed write intact.
// A single in-process mutex serializes mutations so interleaved operations
// (a recurring-generation pass and a manual add, say) cannot clobber each
// other's snapshot. Record counts stay in the low thousands for years of
// daily use, so linear scans are fine.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/service"
	"github.com/centsible/centsible/internal/storage"
)

// Store owns the SpendEntry collection.
type Store struct {
	kv       service.KVStore
	settings service.SettingsReader
	now      func() time.Time
	mu       sync.Mutex
	migrated bool
}

// NewStore creates an entry store over the given key-value layer. The
// settings reader supplies the default currency for entries created
// without one.
func NewStore(kv service.KVStore, settings service.SettingsReader) *Store {
	return &Store{
		kv:       kv,
		settings: settings,
		now:      time.Now,
	}
}

// WithClock overrides the store's clock. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// loadEntries reads the full collection. Read failures and corrupt blobs
// degrade to an empty collection with a logged warning so callers never
// crash on a cold or damaged store.
func (s *Store) loadEntries(ctx context.Context) []model.SpendEntry {
	s.ensureMigratedLocked(ctx)

	raw, ok, err := s.kv.Get(ctx, storage.KeyEntries)
	if err != nil {
		slog.Warn("failed to read entries, using empty collection", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []model.SpendEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		slog.Warn("stored entries are unparsable, using empty collection", "error", err)
		return nil
	}
	return entries
}

// saveEntries writes the full collection back. Write failures propagate;
// the previously stored collection remains untouched.
func (s *Store) saveEntries(ctx context.Context, entries []model.SpendEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyEntries, string(data)); err != nil {
		return fmt.Errorf("failed to persist entries: %w", err)
	}
	return nil
}

// AddEntry records a new spend on the given day and returns it. The
// category defaults to "Uncategorized" and the currency falls back to the
// user's default. Amount positivity is enforced upstream at the command
// layer, not here.
func (s *Store) AddEntry(ctx context.Context, date string, amount float64, category, note, currency string) (*model.SpendEntry, error) {
	if _, err := model.ParseDay(date); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidDate, date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "" {
		category = model.DefaultCategory
	}
	if currency == "" {
		currency = s.settings.DefaultCurrency(ctx)
	}

	now := s.now()
	entry := model.SpendEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Amount:    amount,
		Category:  category,
		Currency:  currency,
		Note:      note,
		Timestamp: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	entries := append(s.loadEntries(ctx), entry)
	if err := s.saveEntries(ctx, entries); err != nil {
		return nil, err
	}

	return &entry, nil
}

// UpdateEntry replaces the mutable fields of an existing entry. ID and
// Date never change. Returns common.ErrNotFound when no entry has the id.
func (s *Store) UpdateEntry(ctx context.Context, id string, amount float64, category, note, currency string) (*model.SpendEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadEntries(ctx)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}

		if category == "" {
			category = model.DefaultCategory
		}
		if currency == "" {
			currency = s.settings.DefaultCurrency(ctx)
		}

		entries[i].Amount = amount
		entries[i].Category = category
		entries[i].Note = note
		entries[i].Currency = currency
		entries[i].UpdatedAt = s.now()

		if err := s.saveEntries(ctx, entries); err != nil {
			return nil, err
		}
		updated := entries[i]
		return &updated, nil
	}

	return nil, fmt.Errorf("%w: entry %s", common.ErrNotFound, id)
}

// DeleteEntry removes an entry by id. Returns false when no entry matched.
func (s *Store) DeleteEntry(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadEntries(ctx)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}

		entries = append(entries[:i], entries[i+1:]...)
		if err := s.saveEntries(ctx, entries); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// EntriesForDate returns all entries recorded on the given day, most
// recent first.
func (s *Store) EntriesForDate(ctx context.Context, date string) []model.SpendEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.SpendEntry
	for _, e := range s.loadEntries(ctx) {
		if e.Date == date {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result
}

// EntriesForRange returns entries with start <= date <= end. Day strings
// are fixed-width and zero-padded, so the comparison is plain string
// ordering. Results come back in day order, most recent entry first
// within a day.
func (s *Store) EntriesForRange(ctx context.Context, start, end string) []model.SpendEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.SpendEntry
	for _, e := range s.loadEntries(ctx) {
		if e.Date >= start && e.Date <= end {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result
}

// DayData summarizes one calendar day.
func (s *Store) DayData(ctx context.Context, date string) model.DayData {
	entries := s.EntriesForDate(ctx, date)

	total := 0.0
	for _, e := range entries {
		total += e.Amount
	}

	return model.DayData{
		Date:        date,
		Entries:     entries,
		TotalAmount: total,
		HasSpend:    len(entries) > 0,
	}
}

// AllEntries returns the full collection, unsorted. Used by statistics
// and export, which do their own ordering.
func (s *Store) AllEntries(ctx context.Context) []model.SpendEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadEntries(ctx)
}
