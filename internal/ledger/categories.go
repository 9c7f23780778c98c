package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

// CustomCategories returns the user-defined categories in creation order.
func (s *Store) CustomCategories(ctx context.Context) []model.CustomCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCategories(ctx)
}

// CategoryNames returns the selectable category set: the built-in list
// followed by custom categories.
func (s *Store) CategoryNames(ctx context.Context) []string {
	names := make([]string, 0, len(model.BuiltinCategories))
	names = append(names, model.BuiltinCategories...)
	for _, c := range s.CustomCategories(ctx) {
		names = append(names, c.Name)
	}
	return names
}

// AddCustomCategory creates a user-defined category.
func (s *Store) AddCustomCategory(ctx context.Context, name string) (*model.CustomCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name", common.ErrInvalidConfig)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := model.CustomCategory{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	}

	categories := append(s.loadCategories(ctx), category)
	if err := s.saveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCustomCategory removes a user-defined category by id. Returns
// false when no category matched. Entries keep their category string;
// deleting a category never touches the ledger.
func (s *Store) DeleteCustomCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories(ctx)
	for i := range categories {
		if categories[i].ID != id {
			continue
		}

		categories = append(categories[:i], categories[i+1:]...)
		if err := s.saveCategories(ctx, categories); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func (s *Store) loadCategories(ctx context.Context) []model.CustomCategory {
	raw, ok, err := s.kv.Get(ctx, storage.KeyCustomCategories)
	if err != nil {
		slog.Warn("failed to read custom categories", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var categories []model.CustomCategory
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		slog.Warn("stored custom categories are unparsable", "error", err)
		return nil
	}
	return categories
}

func (s *Store) saveCategories(ctx context.Context, categories []model.CustomCategory) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode custom categories: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyCustomCategories, string(data)); err != nil {
		return fmt.Errorf("failed to persist custom categories: %w", err)
	}
	return nil
}
