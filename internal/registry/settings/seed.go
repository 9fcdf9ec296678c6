package settings

import "time"

// Seed loads the default console settings into an empty registry.
// Seeded entries are attributed to "system" and published as a single
// snapshot.
func (r *Registry) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return
	}

	seededAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	defaults := []struct {
		name        string
		value       Value
		description string
	}{
		{"APP_NAME", StringValue("BeauroWeb Admin"), "Application name displayed in the header"},
		{"MAX_FILE_SIZE", NumberValue(10485760), "Maximum file upload size in bytes (10MB)"},
		{"ENABLE_NOTIFICATIONS", BoolValue(true), "Enable email notifications system-wide"},
		{"SUPPORTED_LANGUAGES", StringsValue([]string{"en", "es", "fr", "de"}), "List of supported languages in the application"},
		{"MAINTENANCE_MODE", BoolValue(false), "Enable maintenance mode for the application"},
		{"LOG_RETENTION_DAYS", NumberValue(30), "Days to keep console activity logs before cleanup"},
	}

	for _, d := range defaults {
		r.items = append(r.items, GlobalSetting{
			ID:           r.newID(),
			VariableName: d.name,
			DataType:     d.value.Type(),
			Value:        d.value,
			Description:  d.description,
			IsActive:     true,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
			CreatedBy:    "system",
			UpdatedBy:    "system",
		})
	}

	r.hub.Publish(r.snapshotLocked())
}
