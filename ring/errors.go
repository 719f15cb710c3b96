package ring

import (
	"errors"
)

var (
	// ErrInvalidDegree is returned when a ring degree is not a power of two.
	ErrInvalidDegree = errors.New("invalid degree: must be a power of two")

	// ErrInvalidModulus is returned when a modulus is not a prime equal
	// to 1 mod 2N, or does not fit the supported word size.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrPrimeNotFound is returned when the prime scan exhausts its range.
	ErrPrimeNotFound = errors.New("prime not found")

	// ErrRootNotFound is returned when the primitive root search exhausts
	// its candidates.
	ErrRootNotFound = errors.New("primitive root not found")

	// ErrLengthMismatch is returned when a coefficient buffer does not have
	// exactly N entries.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIncompatibleContext is returned when two polynomials bound to
	// different contexts are combined.
	ErrIncompatibleContext = errors.New("incompatible contexts")

	// ErrDivisionByZero is returned when the modular inverse of zero is
	// requested.
	ErrDivisionByZero = errors.New("division by zero")
)
