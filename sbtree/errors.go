package sbtree

import "errors"

// Sentinel errors returned by Store constructors.
var (
	// ErrNegative indicates a negative numerator or denominator.
	ErrNegative = errors.New("sbtree: numerator and denominator must be non-negative")

	// ErrZeroOverZero indicates the undefined fraction 0/0.
	ErrZeroOverZero = errors.New("sbtree: 0/0 is not a fraction")

	// ErrNotCoprime indicates gcd(p, q) != 1.
	ErrNotCoprime = errors.New("sbtree: numerator and denominator must be coprime")

	// ErrQuotientOverflow indicates a continued fraction coefficient that does not fit in uint64.
	ErrQuotientOverflow = errors.New("sbtree: continued fraction coefficient overflows uint64")

	// ErrEmptyQuotients indicates an empty coefficient list.
	ErrEmptyQuotients = errors.New("sbtree: continued fraction has no coefficients")

	// ErrBadQuotient indicates a zero coefficient after the first one.
	ErrBadQuotient = errors.New("sbtree: continued fraction coefficients after the first must be ≥ 1")
)

// Panic values for operations called outside their contract.
var (
	// ErrNullFraction is raised by every operation on the null fraction 0/0.
	ErrNullFraction = errors.New("sbtree: operation on null fraction")

	// ErrRootFraction is raised when navigating from 0/1 or 1/0.
	ErrRootFraction = errors.New("sbtree: operation undefined on 0/1 and 1/0")

	// ErrFatherRange is raised by FatherAt(m) unless 1 ≤ m ≤ U().
	ErrFatherRange = errors.New("sbtree: father coefficient out of range")

	// ErrDepthRange is raised by Partial and Reduced outside [0, K()].
	ErrDepthRange = errors.New("sbtree: partial depth out of range")

	// ErrIncompatible is raised by Mediant on fractions that are not Stern–Brocot neighbours.
	ErrIncompatible = errors.New("sbtree: mediant of incompatible fractions")

	// ErrStoreMismatch is raised when combining fractions from different stores.
	ErrStoreMismatch = errors.New("sbtree: fractions belong to different stores")
)
