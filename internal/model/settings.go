package model

import "time"

// AppSettings is the singleton user configuration record. It is created
// with defaults on first read and overwritten whole on every write.
type AppSettings struct {
	UpdatedAt            time.Time `json:"updatedAt"`
	ReminderTime         string    `json:"reminderTime"`
	DefaultCurrency      string    `json:"defaultCurrency"`
	ThemeMode            string    `json:"themeMode"`
	FreeHistoryDays      int       `json:"freeHistoryDays"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	OnboardingCompleted  bool      `json:"onboardingCompleted"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings(now time.Time) AppSettings {
	return AppSettings{
		UpdatedAt:            now,
		ReminderTime:         "20:00",
		DefaultCurrency:      "USD",
		ThemeMode:            "system",
		FreeHistoryDays:      7,
		NotificationsEnabled: true,
	}
}
