package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driving"
	"github.com/shawnhcorey/Field-Sort/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyLocale       = "sort.locale"
	KeyExtraLocales = "sort.extra_locales"
	KeyDefaultKeys  = "sort.default_keys"
	KeyStrict       = "sort.strict"
	KeyInteractive  = "ui.interactive"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or invalid values fall back
// to the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Locale:       s.configStore.GetString(KeyLocale),
		ExtraLocales: s.getLocales(KeyExtraLocales),
		DefaultKeys:  s.getSortKeys(KeyDefaultKeys),
		Interactive:  s.getBool(KeyInteractive, defaults.Interactive),
		Strict:       s.getBool(KeyStrict, defaults.Strict),
	}

	return settings, nil
}

// Save persists all settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(KeyLocale, settings.Locale); err != nil {
		return fmt.Errorf("save locale: %w", err)
	}
	if err := s.configStore.Set(KeyExtraLocales, settings.LocaleStrings()); err != nil {
		return fmt.Errorf("save extra locales: %w", err)
	}
	if err := s.configStore.Set(KeyDefaultKeys, settings.DefaultKeySpecs()); err != nil {
		return fmt.Errorf("save default keys: %w", err)
	}
	if err := s.configStore.Set(KeyInteractive, settings.Interactive); err != nil {
		return fmt.Errorf("save interactive: %w", err)
	}
	if err := s.configStore.Set(KeyStrict, settings.Strict); err != nil {
		return fmt.Errorf("save strict: %w", err)
	}
	return nil
}

// Set validates a textual value and persists it under key.
// Lists are comma separated.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case KeyLocale:
		// Empty means "use the environment"; "none" is kept as written.
		stored = ""
		if strings.TrimSpace(value) != "" {
			stored = domain.ParseLocale(value).String()
		}

	case KeyExtraLocales:
		locales := make([]string, 0)
		for _, item := range splitList(value) {
			if l := domain.ParseLocale(item); !l.IsNone() {
				locales = append(locales, l.String())
			}
		}
		stored = locales

	case KeyDefaultKeys:
		keys, err := domain.ParseSortKeys(splitList(value))
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		specs := make([]string, len(keys))
		for i, k := range keys {
			specs[i] = k.String()
		}
		stored = specs

	case KeyInteractive, KeyStrict:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = b

	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyLocale, KeyExtraLocales, KeyDefaultKeys, KeyInteractive, KeyStrict}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getLocales(key string) []domain.Locale {
	var locales []domain.Locale
	for _, item := range s.configStore.GetStringSlice(key) {
		if l := domain.ParseLocale(item); !l.IsNone() {
			locales = append(locales, l)
		}
	}
	return locales
}

func (s *SettingsService) getSortKeys(key string) []domain.SortKey {
	var keys []domain.SortKey
	for _, spec := range s.configStore.GetStringSlice(key) {
		k, err := domain.ParseSortKey(spec)
		if err != nil {
			logger.Warn("Ignoring default sort key %q: %v", spec, err)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
