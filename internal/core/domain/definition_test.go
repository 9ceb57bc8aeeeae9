package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		def     UnitDefinition
		wantErr bool
	}{
		{
			name: "valid linear unit",
			def:  UnitDefinition{Symbol: "furlong", Category: Length, Scale: 201.168},
		},
		{
			name: "valid affine temperature",
			def:  UnitDefinition{Symbol: "°Ré", Category: Temperature, Scale: 1.25, Offset: 273.15},
		},
		{
			name:    "empty symbol",
			def:     UnitDefinition{Symbol: "  ", Category: Length, Scale: 1},
			wantErr: true,
		},
		{
			name:    "symbol with exponent marker",
			def:     UnitDefinition{Symbol: "m^2", Category: Length, Scale: 1},
			wantErr: true,
		},
		{
			name:    "symbol with space",
			def:     UnitDefinition{Symbol: "sq m", Category: Length, Scale: 1},
			wantErr: true,
		},
		{
			name:    "unknown category",
			def:     UnitDefinition{Symbol: "x", Category: Category("Luck"), Scale: 1},
			wantErr: true,
		},
		{
			name:    "dimensionless category",
			def:     UnitDefinition{Symbol: "pct", Category: Dimensionless, Scale: 0.01},
			wantErr: true,
		},
		{
			name:    "zero scale",
			def:     UnitDefinition{Symbol: "x", Category: Mass, Scale: 0},
			wantErr: true,
		},
		{
			name:    "negative scale",
			def:     UnitDefinition{Symbol: "x", Category: Mass, Scale: -1},
			wantErr: true,
		},
		{
			name:    "NaN scale",
			def:     UnitDefinition{Symbol: "x", Category: Length, Scale: math.NaN()},
			wantErr: true,
		},
		{
			name:    "infinite scale",
			def:     UnitDefinition{Symbol: "x", Category: Length, Scale: math.Inf(1)},
			wantErr: true,
		},
		{
			name:    "NaN offset",
			def:     UnitDefinition{Symbol: "x", Category: Temperature, Scale: 1, Offset: math.NaN()},
			wantErr: true,
		},
		{
			name:    "infinite offset",
			def:     UnitDefinition{Symbol: "x", Category: Temperature, Scale: 1, Offset: math.Inf(-1)},
			wantErr: true,
		},
		{
			name:    "offset outside temperature",
			def:     UnitDefinition{Symbol: "x", Category: Length, Scale: 1, Offset: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUnitDefinition_Descriptor(t *testing.T) {
	def := UnitDefinition{Symbol: "furlong", Category: Length, Scale: 201.168}
	d := def.Descriptor()

	assert.Equal(t, "furlong", d.Symbol)
	assert.Equal(t, Length, d.Category)
	assert.False(t, d.IsAffine())

	v, err := P(1, d).ToUnit(Meter)
	require.NoError(t, err)
	assert.InDelta(t, 201.168, v.Value, 1e-9)
}
