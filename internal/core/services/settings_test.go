package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/propunit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/propunit/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyDisplayPrecision, int64(5))
	_ = store.Set(KeyDisplayColor, false)
	_ = store.Set(KeyStorageDataDir, "/srv/propunit")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, 5, settings.Display.Precision)
	assert.False(t, settings.Display.Color)
	assert.Equal(t, "/srv/propunit", settings.Storage.DataDir)
}

func TestSettingsService_Get_InvalidPrecisionReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyDisplayPrecision, 99)

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ShortestPrecision, settings.Display.Precision)
}

func TestSettingsService_Save(t *testing.T) {
	store := newMockConfigStore()
	service := NewSettingsService(store)

	err := service.Save(&domain.AppSettings{
		Display: domain.DisplaySettings{Precision: 6, Color: false},
		Storage: domain.StorageSettings{DataDir: "/data"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 6, store.values[KeyDisplayPrecision])
	assert.Equal(t, false, store.values[KeyDisplayColor])
	assert.Equal(t, "/data", store.values[KeyStorageDataDir])
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := newMockConfigStore()
	err := NewSettingsService(store).Save(&domain.AppSettings{
		Display: domain.DisplaySettings{Precision: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.saves)
}

func TestSettingsService_Save_StoreErrors(t *testing.T) {
	storeErr := errors.New("disk full")

	store := newMockConfigStore()
	store.setErr = storeErr
	err := NewSettingsService(store).Save(&domain.AppSettings{Display: domain.DisplaySettings{Precision: 3}})
	assert.ErrorIs(t, err, storeErr)

	store = newMockConfigStore()
	store.saveErr = storeErr
	err = NewSettingsService(store).Save(&domain.AppSettings{Display: domain.DisplaySettings{Precision: 3}})
	assert.ErrorIs(t, err, storeErr)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{
			name:  "precision",
			key:   KeyDisplayPrecision,
			value: "8",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 8, s.Display.Precision) },
		},
		{
			name:  "shortest precision",
			key:   KeyDisplayPrecision,
			value: "-1",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, -1, s.Display.Precision) },
		},
		{
			name:  "color",
			key:   KeyDisplayColor,
			value: "false",
			check: func(t *testing.T, s *domain.AppSettings) { assert.False(t, s.Display.Color) },
		},
		{
			name:  "data dir",
			key:   KeyStorageDataDir,
			value: "/tmp/units",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, "/tmp/units", s.Storage.DataDir) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())
			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Set(KeyDisplayPrecision, "lots"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set(KeyDisplayPrecision, "0"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set(KeyDisplayColor, "maybe"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set("display.font", "mono"), domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, []string{"display.precision", "display.color", "storage.data_dir"}, service.Keys())
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
