package driving

import "github.com/shawnhcorey/Field-Sort/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.Settings, error)

	// Save persists all settings.
	Save(settings *domain.Settings) error

	// Set validates and persists a single setting given as text.
	// Returns domain.ErrUnknownSetting for unrecognised keys.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
