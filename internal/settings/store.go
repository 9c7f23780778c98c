// Package settings persists the AppSettings and Subscription singletons.
//
// Both records follow the same lifecycle: materialized with defaults on
// first read, and updated through explicit patch types where a nil field
// means "leave unchanged". The whole record is rewritten on every update.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/service"
	"github.com/centsible/centsible/internal/storage"
)

// Store owns the settings and subscription records.
type Store struct {
	kv  service.KVStore
	now func() time.Time
	mu  sync.Mutex
}

// NewStore creates a settings store over the given key-value layer.
func NewStore(kv service.KVStore) *Store {
	return &Store{kv: kv, now: time.Now}
}

// WithClock overrides the store's clock. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// SettingsPatch updates a subset of AppSettings fields. Nil fields keep
// their stored value.
type SettingsPatch struct {
	ReminderTime         *string
	DefaultCurrency      *string
	ThemeMode            *string
	FreeHistoryDays      *int
	NotificationsEnabled *bool
	OnboardingCompleted  *bool
}

// SubscriptionPatch updates a subset of Subscription fields. Nil fields
// keep their stored value. ClearExpiresAt removes the expiry outright,
// which a nil ExpiresAt alone cannot express.
type SubscriptionPatch struct {
	Plan           *model.Plan
	IsActive       *bool
	ExpiresAt      *time.Time
	Source         *string
	ClearExpiresAt bool
}

// Settings returns the current settings, creating defaults on first read.
// Read failures degrade to defaults so a corrupt store never blocks the UI.
func (s *Store) Settings(ctx context.Context) model.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSettings(ctx)
}

func (s *Store) loadSettings(ctx context.Context) model.AppSettings {
	raw, ok, err := s.kv.Get(ctx, storage.KeySettings)
	if err != nil {
		slog.Warn("failed to read settings, using defaults", "error", err)
		return model.DefaultSettings(s.now())
	}
	if !ok {
		defaults := model.DefaultSettings(s.now())
		if err := s.saveSettings(ctx, defaults); err != nil {
			slog.Warn("failed to persist default settings", "error", err)
		}
		return defaults
	}

	var settings model.AppSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		slog.Warn("stored settings are unparsable, using defaults", "error", err)
		return model.DefaultSettings(s.now())
	}
	return settings
}

// UpdateSettings applies a patch and persists the merged record.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) (model.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.loadSettings(ctx)

	if patch.ReminderTime != nil {
		settings.ReminderTime = *patch.ReminderTime
	}
	if patch.DefaultCurrency != nil {
		settings.DefaultCurrency = *patch.DefaultCurrency
	}
	if patch.ThemeMode != nil {
		settings.ThemeMode = *patch.ThemeMode
	}
	if patch.FreeHistoryDays != nil {
		settings.FreeHistoryDays = *patch.FreeHistoryDays
	}
	if patch.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.OnboardingCompleted != nil {
		settings.OnboardingCompleted = *patch.OnboardingCompleted
	}
	settings.UpdatedAt = s.now()

	if err := s.saveSettings(ctx, settings); err != nil {
		return model.AppSettings{}, err
	}
	return settings, nil
}

func (s *Store) saveSettings(ctx context.Context, settings model.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeySettings, string(data)); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}

// DefaultCurrency implements service.SettingsReader.
func (s *Store) DefaultCurrency(ctx context.Context) string {
	return s.Settings(ctx).DefaultCurrency
}

// Subscription returns the current entitlement, falling back to the free
// tier when absent or unreadable.
func (s *Store) Subscription(ctx context.Context) model.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSubscription(ctx)
}

func (s *Store) loadSubscription(ctx context.Context) model.Subscription {
	raw, ok, err := s.kv.Get(ctx, storage.KeySubscription)
	if err != nil {
		slog.Warn("failed to read subscription, assuming free tier", "error", err)
		return model.FreeSubscription()
	}
	if !ok {
		return model.FreeSubscription()
	}

	var sub model.Subscription
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		slog.Warn("stored subscription is unparsable, assuming free tier", "error", err)
		return model.FreeSubscription()
	}
	return sub
}

// UpdateSubscription applies a patch and persists the merged record. This
// is the entry point the purchase flow writes through.
func (s *Store) UpdateSubscription(ctx context.Context, patch SubscriptionPatch) (model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.loadSubscription(ctx)

	if patch.Plan != nil {
		sub.Plan = *patch.Plan
	}
	if patch.IsActive != nil {
		sub.IsActive = *patch.IsActive
	}
	if patch.ExpiresAt != nil {
		sub.ExpiresAt = patch.ExpiresAt
	}
	if patch.ClearExpiresAt {
		sub.ExpiresAt = nil
	}
	if patch.Source != nil {
		sub.Source = *patch.Source
	}
	sub.UpdatedAt = s.now()

	data, err := json.Marshal(sub)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("failed to encode subscription: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeySubscription, string(data)); err != nil {
		return model.Subscription{}, fmt.Errorf("failed to persist subscription: %w", err)
	}
	return sub, nil
}
