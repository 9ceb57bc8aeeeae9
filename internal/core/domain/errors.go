package domain

import "errors"

// Domain errors represent unit algebra and property failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Unit Algebra Errors.

	// ErrInvalidExponent indicates a non-integral exponent was supplied.
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrIncompatibleUnits indicates two units do not describe the same quantity.
	ErrIncompatibleUnits = errors.New("incompatible units")

	// ErrNonConvertibleUnit indicates an affine unit (e.g. °C) was used with
	// an exponent other than 1 or combined with other units.
	ErrNonConvertibleUnit = errors.New("non-convertible unit")

	// ErrUnknownDescriptor indicates a symbol or category has no matching descriptor.
	ErrUnknownDescriptor = errors.New("unknown descriptor")

	// Property Errors.

	// ErrZeroDivisor indicates division by a zero-valued property or scalar.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrPropertyValidation indicates a property kind rejected a unit or value.
	ErrPropertyValidation = errors.New("property validation failed")
)
