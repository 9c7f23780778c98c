// Package model defines the core data types for the centsible ledger.
package model

import "time"

// DayFormat is the canonical layout for calendar-day strings. Days are
// fixed-width and zero-padded, so lexicographic comparison on them matches
// chronological order.
const DayFormat = "2006-01-02"

// DefaultCategory is assigned to entries created without a category.
const DefaultCategory = "Uncategorized"

// SpendEntry represents one recorded spend on a specific calendar day.
// ID and Date are immutable after creation; every other field may be
// edited. Multiple entries may share a Date.
type SpendEntry struct {
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	Currency  string    `json:"currency"`
	Note      string    `json:"note,omitempty"`
	Amount    float64   `json:"amount"`
}

// DayData summarizes all entries recorded for one calendar day.
type DayData struct {
	Date        string       `json:"date"`
	Entries     []SpendEntry `json:"entries"`
	TotalAmount float64      `json:"totalAmount"`
	HasSpend    bool         `json:"hasSpend"`
}

// DailyLog is the legacy single-record-per-day log kept by installs that
// predate the multi-entry ledger. The schema migration converts these.
type DailyLog struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	Note      string    `json:"note,omitempty"`
	Amount    float64   `json:"amount"`
	DidSpend  bool      `json:"didSpend"`
}

// ParseDay parses a YYYY-MM-DD string as local midnight.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, day, time.Local)
}

// FormatDay renders an instant as its local calendar day.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}
