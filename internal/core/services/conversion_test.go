package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

func newTestConversion(t *testing.T) *ConversionService {
	t.Helper()
	return NewConversionService(newTestCatalog(t))
}

func TestConversionService_Convert(t *testing.T) {
	service := newTestConversion(t)

	tests := []struct {
		name     string
		value    float64
		from     string
		to       string
		expected float64
		unit     string
	}{
		{"celsius to fahrenheit", 100, "°C", "°F", 212, "°F"},
		{"furlong to metres", 1, "furlong", "m", 201.168, "m"},
		{"speed", 36, "km hr^-1", "m s^-1", 10, "m / s"},
		{"power as energy rate", 1, "kW", "kJ s^-1", 1, "kJ / s"},
		{"heat transfer coefficient", 50, "W m^-2 K^-1", "Btu ft^-2 hr^-1 °R^-1", 8.8055, "Btu / (ft^2) / hr / °R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := service.Convert(context.Background(), tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, p.Value, 1e-3)
			assert.Equal(t, tt.unit, p.Unit.String())
		})
	}
}

func TestConversionService_Convert_Errors(t *testing.T) {
	service := newTestConversion(t)
	ctx := context.Background()

	_, err := service.Convert(ctx, 1, "m", "s")
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)

	_, err = service.Convert(ctx, 1, "°C^2", "K^2")
	assert.ErrorIs(t, err, domain.ErrNonConvertibleUnit)

	_, err = service.Convert(ctx, 1, "cubit", "m")
	assert.ErrorIs(t, err, domain.ErrUnknownDescriptor)

	_, err = service.Convert(ctx, 1, "m", "m^0.5")
	assert.ErrorIs(t, err, domain.ErrInvalidExponent)

	_, err = NewConversionService(nil).Convert(ctx, 1, "m", "ft")
	assert.Error(t, err)
}

func TestConversionService_ToSI(t *testing.T) {
	service := newTestConversion(t)
	ctx := context.Background()

	p, err := service.ToSI(ctx, 1, "cm^3")
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-6, p.Value, 1e-12)
	assert.Equal(t, "(m^3)", p.Unit.String())

	p, err = service.ToSI(ctx, 25, "°C")
	require.NoError(t, err)
	assert.InDelta(t, 298.15, p.Value, 1e-9)
	assert.Equal(t, "K", p.Unit.String())

	_, err = service.ToSI(ctx, 1, "°C m")
	assert.ErrorIs(t, err, domain.ErrNonConvertibleUnit)
}

func TestConversionService_Combine(t *testing.T) {
	service := newTestConversion(t)

	tests := []struct {
		name     string
		op       driving.Operation
		a, b     driving.Quantity
		expected float64
		unit     string
	}{
		{
			name:     "add pressures",
			op:       driving.OpAdd,
			a:        driving.Quantity{Value: 5, Unit: "bar"},
			b:        driving.Quantity{Value: 30, Unit: "psi"},
			expected: 7.0684271879504,
			unit:     "bar",
		},
		{
			name:     "subtract durations",
			op:       driving.OpSubtract,
			a:        driving.Quantity{Value: 1, Unit: "hr"},
			b:        driving.Quantity{Value: 15, Unit: "min"},
			expected: 0.75,
			unit:     "hr",
		},
		{
			name:     "multiply simplifies",
			op:       driving.OpMultiply,
			a:        driving.Quantity{Value: 2, Unit: "m"},
			b:        driving.Quantity{Value: 3, Unit: "m"},
			expected: 6,
			unit:     "(m^2)",
		},
		{
			name:     "divide",
			op:       driving.OpDivide,
			a:        driving.Quantity{Value: 100, Unit: "km"},
			b:        driving.Quantity{Value: 2, Unit: "hr"},
			expected: 50,
			unit:     "km / hr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := service.Combine(context.Background(), tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, p.Value, 1e-9)
			assert.Equal(t, tt.unit, p.Unit.String())
		})
	}
}

func TestConversionService_Combine_Errors(t *testing.T) {
	service := newTestConversion(t)
	ctx := context.Background()

	_, err := service.Combine(ctx, driving.OpAdd,
		driving.Quantity{Value: 1, Unit: "m"}, driving.Quantity{Value: 1, Unit: "s"})
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)

	_, err = service.Combine(ctx, driving.OpDivide,
		driving.Quantity{Value: 1, Unit: "m"}, driving.Quantity{Value: 0, Unit: "s"})
	assert.ErrorIs(t, err, domain.ErrZeroDivisor)

	_, err = service.Combine(ctx, driving.Operation("modulo"),
		driving.Quantity{Value: 1, Unit: "m"}, driving.Quantity{Value: 1, Unit: "m"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Combine(ctx, driving.OpAdd,
		driving.Quantity{Value: 1, Unit: "cubit"}, driving.Quantity{Value: 1, Unit: "m"})
	assert.ErrorIs(t, err, domain.ErrUnknownDescriptor)
}

func TestConversionService_Compatible(t *testing.T) {
	service := newTestConversion(t)
	ctx := context.Background()

	ok, err := service.Compatible(ctx, "W", "J s^-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Compatible(ctx, "N m", "Btu")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Compatible(ctx, "W", "J")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = service.Compatible(ctx, "W", "cubit")
	assert.ErrorIs(t, err, domain.ErrUnknownDescriptor)
}

func TestOperation_IsValid(t *testing.T) {
	for _, op := range []driving.Operation{driving.OpAdd, driving.OpSubtract, driving.OpMultiply, driving.OpDivide} {
		assert.True(t, op.IsValid(), "%s", op)
	}
	assert.False(t, driving.Operation("").IsValid())
	assert.False(t, driving.Operation("power").IsValid())
}
