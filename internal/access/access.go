// Package access implements the premium gating rules over calendar days.
//
// These are pure functions: they take an explicit "now" so callers and
// tests control the clock. Gating only suppresses reads — restricted days
// stay in storage and show up again the moment the subscription allows it.
package access

import (
	"math"
	"time"

	"github.com/centsible/centsible/internal/model"
)

// IsPremium reports whether the subscription grants unrestricted history.
// Lifetime plans never expire; other paid plans must be active and either
// have no expiry or expire after now.
func IsPremium(sub model.Subscription, now time.Time) bool {
	if sub.Plan == model.PlanLifetime {
		return true
	}
	if !sub.IsActive || sub.Plan == model.PlanFree {
		return false
	}
	return sub.ExpiresAt == nil || sub.ExpiresAt.After(now)
}

// CanViewDate reports whether the given day may be shown. Today is never
// gated; past days are visible within the free history window. Both days
// are parsed as local midnight and the difference is rounded to whole
// days, which absorbs DST drift.
func CanViewDate(date string, sub model.Subscription, freeHistoryDays int, now time.Time) bool {
	if IsPremium(sub, now) {
		return true
	}

	today := model.FormatDay(now)
	if date == today {
		return true
	}

	dayMidnight, err := model.ParseDay(date)
	if err != nil {
		return false
	}
	todayMidnight, err := model.ParseDay(today)
	if err != nil {
		return false
	}

	diffDays := int(math.Round(todayMidnight.Sub(dayMidnight).Hours() / 24))
	return diffDays >= 0 && diffDays <= freeHistoryDays
}

// FilterEntries drops entries on days the subscription may not view and
// returns the distinct locked days in encounter order. Callers render the
// locked days as placeholders instead of data.
func FilterEntries(entries []model.SpendEntry, sub model.Subscription, freeHistoryDays int, now time.Time) (visible []model.SpendEntry, lockedDays []string) {
	seen := make(map[string]bool)
	for _, e := range entries {
		if CanViewDate(e.Date, sub, freeHistoryDays, now) {
			visible = append(visible, e)
			continue
		}
		if !seen[e.Date] {
			seen[e.Date] = true
			lockedDays = append(lockedDays, e.Date)
		}
	}
	return visible, lockedDays
}
