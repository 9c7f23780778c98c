// Package recurring implements recurring-entry templates and the engine
// that materializes their occurrences into the ledger.
package recurring

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/service"
	"github.com/centsible/centsible/internal/storage"
)

// Store owns the RecurringEntry templates. The engine is the only writer
// of LastGeneratedDate; everything else is edited by the user.
type Store struct {
	kv  service.KVStore
	now func() time.Time
	mu  sync.Mutex
}

// NewStore creates a template store over the given key-value layer.
func NewStore(kv service.KVStore) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Templates returns all templates. Read failures degrade to an empty list.
func (s *Store) Templates(ctx context.Context) []model.RecurringEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add validates and persists a new template. ID and IsActive are set here;
// LastGeneratedDate starts empty.
func (s *Store) Add(ctx context.Context, tpl model.RecurringEntry) (*model.RecurringEntry, error) {
	if !tpl.Frequency.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidFrequency, tpl.Frequency)
	}
	if _, err := model.ParseDay(tpl.StartDate); err != nil {
		return nil, fmt.Errorf("%w: start date %q", common.ErrInvalidDate, tpl.StartDate)
	}
	if tpl.EndDate != "" {
		if _, err := model.ParseDay(tpl.EndDate); err != nil {
			return nil, fmt.Errorf("%w: end date %q", common.ErrInvalidDate, tpl.EndDate)
		}
		if tpl.EndDate <= tpl.StartDate {
			return nil, fmt.Errorf("%w: %s..%s", common.ErrInvalidDateRange, tpl.StartDate, tpl.EndDate)
		}
	}

	tpl.ID = uuid.NewString()
	tpl.IsActive = true
	tpl.LastGeneratedDate = ""
	if tpl.Category == "" {
		tpl.Category = model.DefaultCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	templates := append(s.load(ctx), tpl)
	if err := s.save(ctx, templates); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Update replaces the stored template with the same ID.
func (s *Store) Update(ctx context.Context, tpl model.RecurringEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.load(ctx)
	for i := range templates {
		if templates[i].ID == tpl.ID {
			templates[i] = tpl
			return s.save(ctx, templates)
		}
	}
	return fmt.Errorf("%w: recurring template %s", common.ErrNotFound, tpl.ID)
}

// SetActive pauses or resumes a template. Returns false when not found.
func (s *Store) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.load(ctx)
	for i := range templates {
		if templates[i].ID == id {
			templates[i].IsActive = active
			if err := s.save(ctx, templates); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes a template. Entries it already spawned stay in the ledger.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.load(ctx)
	for i := range templates {
		if templates[i].ID == id {
			templates = append(templates[:i], templates[i+1:]...)
			if err := s.save(ctx, templates); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) load(ctx context.Context) []model.RecurringEntry {
	raw, ok, err := s.kv.Get(ctx, storage.KeyRecurring)
	if err != nil {
		slog.Warn("failed to read recurring templates", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var templates []model.RecurringEntry
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		slog.Warn("stored recurring templates are unparsable", "error", err)
		return nil
	}
	return templates
}

func (s *Store) save(ctx context.Context, templates []model.RecurringEntry) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("failed to encode recurring templates: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyRecurring, string(data)); err != nil {
		return fmt.Errorf("failed to persist recurring templates: %w", err)
	}
	return nil
}
