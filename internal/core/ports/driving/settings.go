package driving

import "github.com/custodia-labs/propunit/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by key, e.g. "display.precision".
	// The value is parsed according to the key's type.
	Set(key, value string) error

	// Keys returns the supported setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
