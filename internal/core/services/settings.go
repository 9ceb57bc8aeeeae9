package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driven"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDisplayPrecision = "display.precision"
	KeyDisplayColor     = "display.color"
	KeyStorageDataDir   = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	display := domain.DisplaySettings{
		Precision: s.getInt(KeyDisplayPrecision, defaults.Display.Precision),
		Color:     s.getBool(KeyDisplayColor, defaults.Display.Color),
	}
	if !display.IsValid() {
		display.Precision = defaults.Display.Precision
	}

	return &domain.AppSettings{
		Display: display,
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(KeyStorageDataDir),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Display.IsValid() {
		return fmt.Errorf("%w: precision %d", domain.ErrInvalidInput, settings.Display.Precision)
	}

	if err := s.configStore.Set(KeyDisplayPrecision, settings.Display.Precision); err != nil {
		return fmt.Errorf("save display precision: %w", err)
	}
	if err := s.configStore.Set(KeyDisplayColor, settings.Display.Color); err != nil {
		return fmt.Errorf("save display color: %w", err)
	}
	if err := s.configStore.Set(KeyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyDisplayPrecision:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Display.Precision = n
	case KeyDisplayColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.Display.Color = b
	case KeyStorageDataDir:
		settings.Storage.DataDir = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the supported setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{KeyDisplayPrecision, KeyDisplayColor, KeyStorageDataDir}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
