package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/service"
	"github.com/centsible/centsible/internal/storage"
)

// NotePrefix tags every entry materialized from a template.
const NotePrefix = "[Recurring]"

// Ledger is the slice of the entry store the engine needs.
type Ledger interface {
	AddEntry(ctx context.Context, date string, amount float64, category, note, currency string) (*model.SpendEntry, error)
}

// Engine generates concrete spend entries from recurring templates. A
// template that sat idle for N periods backfills all N missed occurrences
// in date order, exactly once each — not just the most recent one.
type Engine struct {
	templates *Store
	ledger    Ledger
	kv        service.KVStore
	now       func() time.Time
	lastCheck string
}

// NewEngine wires the engine to its collaborators. The day-guard state
// lives on the engine itself (not a hidden global) so tests can reset it.
func NewEngine(templates *Store, ledger Ledger, kv service.KVStore) *Engine {
	return &Engine{
		templates: templates,
		ledger:    ledger,
		kv:        kv,
		now:       time.Now,
	}
}

// WithClock overrides the engine's clock. Used by tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Reset clears the in-process day guard so the next GenerateForToday call
// scans again. Used by tests.
func (e *Engine) Reset() {
	e.lastCheck = ""
}

// GenerateForToday runs the catch-up pass at most once per calendar day.
// Screens call it on every day-load; the guard (an engine field backed by
// a persisted marker) makes the repeat calls cheap no-ops. Returns the
// number of entries materialized.
func (e *Engine) GenerateForToday(ctx context.Context) (int, error) {
	today := model.FormatDay(e.now())

	if e.lastCheck == today {
		return 0, nil
	}
	if e.lastCheck == "" {
		if marker, ok, err := e.kv.Get(ctx, storage.KeyLastRecurringCheck); err == nil && ok && marker == today {
			e.lastCheck = today
			return 0, nil
		}
	}

	generated := 0
	for _, tpl := range e.templates.Templates(ctx) {
		if tpl.StateOn(today) != model.StateActive {
			continue
		}

		n, err := e.catchUp(ctx, tpl, today)
		generated += n
		if err != nil {
			// Per-template failures must not starve the other templates.
			slog.Error("recurring catch-up failed", "template", tpl.ID, "error", err)
		}
	}

	e.lastCheck = today
	if err := e.kv.Set(ctx, storage.KeyLastRecurringCheck, today); err != nil {
		slog.Warn("failed to persist recurring check marker", "error", err)
	}

	if generated > 0 {
		slog.Info("recurring generation complete", "entries", generated, "day", today)
	}
	return generated, nil
}

// catchUp materializes every occurrence of tpl up to today. The template's
// LastGeneratedDate is persisted after each occurrence, so an interrupted
// pass resumes where it stopped instead of duplicating entries.
func (e *Engine) catchUp(ctx context.Context, tpl model.RecurringEntry, today string) (int, error) {
	// The monthly cadence stays anchored to the start date's day-of-month
	// even after a clamped short month (Jan 31 -> Feb 28 -> Mar 31).
	anchor, err := model.ParseDay(tpl.StartDate)
	if err != nil {
		return 0, fmt.Errorf("template %s has invalid start date %q: %w", tpl.ID, tpl.StartDate, err)
	}
	anchorDay := anchor.Day()

	cursor := tpl.StartDate
	if tpl.LastGeneratedDate != "" {
		cursor, err = advance(tpl.LastGeneratedDate, tpl.Frequency, anchorDay)
		if err != nil {
			return 0, err
		}
	}

	generated := 0
	for cursor <= today {
		if tpl.EndDate != "" && cursor > tpl.EndDate {
			break
		}

		note := NotePrefix
		if tpl.Note != "" {
			note = NotePrefix + " " + tpl.Note
		}

		if _, err := e.ledger.AddEntry(ctx, cursor, tpl.Amount, tpl.Category, note, tpl.Currency); err != nil {
			return generated, fmt.Errorf("failed to materialize occurrence on %s: %w", cursor, err)
		}

		tpl.LastGeneratedDate = cursor
		if err := e.templates.Update(ctx, tpl); err != nil {
			return generated, fmt.Errorf("failed to persist template after %s: %w", cursor, err)
		}
		generated++

		cursor, err = advance(cursor, tpl.Frequency, anchorDay)
		if err != nil {
			return generated, err
		}
	}

	return generated, nil
}

// advance moves a day forward by one period. Weekly and biweekly are plain
// day arithmetic. Monthly advances one calendar month toward the anchor
// day-of-month, clamping to the last day when the target month is shorter.
func advance(day string, freq model.Frequency, anchorDay int) (string, error) {
	t, err := model.ParseDay(day)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", day, err)
	}

	switch freq {
	case model.FrequencyWeekly:
		return model.FormatDay(t.AddDate(0, 0, 7)), nil
	case model.FrequencyBiweekly:
		return model.FormatDay(t.AddDate(0, 0, 14)), nil
	case model.FrequencyMonthly:
		year, month, _ := t.Date()
		month++
		d := anchorDay
		if last := daysIn(year, month); d > last {
			d = last
		}
		return model.FormatDay(time.Date(year, month, d, 0, 0, 0, 0, time.Local)), nil
	default:
		return "", fmt.Errorf("unknown frequency %q", freq)
	}
}

// daysIn returns the number of days in the given month. Day zero of the
// following month normalizes to this month's last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
