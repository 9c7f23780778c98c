package model

// Frequency is the spawn cadence of a recurring template.
type Frequency string

const (
	// FrequencyWeekly spawns an occurrence every 7 days.
	FrequencyWeekly Frequency = "weekly"
	// FrequencyBiweekly spawns an occurrence every 14 days.
	FrequencyBiweekly Frequency = "biweekly"
	// FrequencyMonthly spawns an occurrence every calendar month, anchored
	// to the start date's day-of-month.
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// RecurringState classifies a template relative to a calendar day.
type RecurringState string

const (
	// StatePending means the template's start date is still in the future.
	StatePending RecurringState = "pending"
	// StateActive means the template spawns occurrences.
	StateActive RecurringState = "active"
	// StatePaused means the user deactivated the template.
	StatePaused RecurringState = "paused"
	// StateEnded means the template's end date has passed.
	StateEnded RecurringState = "ended"
)

// RecurringEntry is a template that spawns SpendEntry rows on a schedule.
// An empty EndDate means open-ended; an empty LastGeneratedDate means no
// occurrence has been spawned yet. When set, LastGeneratedDate is always
// >= StartDate and was produced by this template.
type RecurringEntry struct {
	ID                string    `json:"id"`
	Category          string    `json:"category"`
	Currency          string    `json:"currency"`
	Note              string    `json:"note,omitempty"`
	Frequency         Frequency `json:"frequency"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate,omitempty"`
	LastGeneratedDate string    `json:"lastGeneratedDate,omitempty"`
	Amount            float64   `json:"amount"`
	IsActive          bool      `json:"isActive"`
}

// StateOn classifies the template relative to the given day. Paused wins
// over ended: a deactivated template is paused no matter its dates.
func (r *RecurringEntry) StateOn(today string) RecurringState {
	if !r.IsActive {
		return StatePaused
	}
	if r.EndDate != "" && r.EndDate < today {
		return StateEnded
	}
	if r.StartDate > today {
		return StatePending
	}
	return StateActive
}
