// Package export serializes the ledger for backup. Export is strictly
// read-only over the stores.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/centsible/centsible/internal/model"
)

// BackupVersion identifies the JSON backup envelope format.
const BackupVersion = 2

// Envelope is the structured JSON backup wrapper.
type Envelope struct {
	ExportedAt       time.Time              `json:"exportedAt"`
	Entries          []model.SpendEntry     `json:"entries"`
	CustomCategories []model.CustomCategory `json:"customCategories"`
	Settings         model.AppSettings      `json:"settings"`
	Version          int                    `json:"version"`
}

// CSVHeader is the column order of CSV exports.
var CSVHeader = []string{"date", "amount", "currency", "category", "note", "created_at"}

// CSVRecord converts an entry to one CSV row. Quoting and comma escaping
// are handled by encoding/csv on write.
func CSVRecord(e model.SpendEntry) []string {
	return []string{
		e.Date,
		strconv.FormatFloat(e.Amount, 'f', 2, 64),
		e.Currency,
		e.Category,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
	}
}

// WriteCSV writes the entries as CSV, header first.
func WriteCSV(w io.Writer, entries []model.SpendEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(CSVRecord(e)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", e.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteBackup writes the JSON backup envelope.
func WriteBackup(w io.Writer, entries []model.SpendEntry, settings model.AppSettings, categories []model.CustomCategory, now time.Time) error {
	env := Envelope{
		ExportedAt:       now,
		Version:          BackupVersion,
		Entries:          entries,
		Settings:         settings,
		CustomCategories: categories,
	}
	if env.Entries == nil {
		env.Entries = []model.SpendEntry{}
	}
	if env.CustomCategories == nil {
		env.CustomCategories = []model.CustomCategory{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}
