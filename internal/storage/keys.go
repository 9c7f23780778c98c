package storage

// Storage keys are namespaced and versioned so the schema migrator can
// locate legacy data alongside the current records. These are a contract
// with the migration step; do not rename.
const (
	// KeyLegacyDailyLogs holds the pre-migration single-record-per-day log.
	KeyLegacyDailyLogs = "centsible/v1/daily_logs"

	// KeyEntries holds the SpendEntry collection.
	KeyEntries = "centsible/v2/entries"
	// KeyRecurring holds the RecurringEntry templates.
	KeyRecurring = "centsible/v2/recurring"
	// KeyCustomCategories holds user-defined categories.
	KeyCustomCategories = "centsible/v2/custom_categories"
	// KeySettings holds the AppSettings singleton.
	KeySettings = "centsible/v2/settings"
	// KeySubscription holds the Subscription singleton.
	KeySubscription = "centsible/v2/subscription"
	// KeyMigrationDone marks the legacy-log conversion as finished.
	KeyMigrationDone = "centsible/v2/migration_complete"
	// KeyLastRecurringCheck records the last day the recurring engine ran.
	KeyLastRecurringCheck = "centsible/v2/last_recurring_check"
)
