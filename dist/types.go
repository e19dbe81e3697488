// Package dist: central types, sentinel errors and functional options.
//
// This file declares Outcome, the Distribution struct, construction
// options, and every sentinel error the package can return.
package dist

import (
	"errors"
	"strings"
)

// Sentinel errors for distribution construction and queries.
var (
	// ErrNoVariables indicates that no random-variable names were provided.
	ErrNoVariables = errors.New("dist: at least one variable name is required")

	// ErrEmptyVariable indicates a variable name is the empty string.
	ErrEmptyVariable = errors.New("dist: variable name is empty")

	// ErrDuplicateVariable indicates a variable name appears more than once.
	ErrDuplicateVariable = errors.New("dist: duplicate variable name")

	// ErrNoOutcomes indicates that no outcomes were provided.
	ErrNoOutcomes = errors.New("dist: at least one outcome is required")

	// ErrArityMismatch indicates an outcome whose length differs from the
	// number of variables.
	ErrArityMismatch = errors.New("dist: outcome length must match variable count")

	// ErrDuplicateOutcome indicates the same outcome tuple appears twice.
	ErrDuplicateOutcome = errors.New("dist: duplicate outcome")

	// ErrLengthMismatch indicates len(probs) != len(outcomes).
	ErrLengthMismatch = errors.New("dist: probability and outcome counts differ")

	// ErrNegativeProbability indicates a probability below zero.
	ErrNegativeProbability = errors.New("dist: probability must be non-negative")

	// ErrNotNormalized indicates probabilities do not sum to 1 within tolerance.
	ErrNotNormalized = errors.New("dist: probabilities must sum to 1")

	// ErrUnknownVariable indicates a query referenced a variable name the
	// distribution does not contain.
	ErrUnknownVariable = errors.New("dist: unknown variable name")

	// ErrOutcomeRange indicates an outcome index outside [0, Len).
	ErrOutcomeRange = errors.New("dist: outcome index out of range")

	// ErrEmptyPMF indicates a pmf with no (positive) entries.
	ErrEmptyPMF = errors.New("dist: pmf has no positive entries")

	// ErrBadEpsilon indicates a negative perturbation scale.
	ErrBadEpsilon = errors.New("dist: epsilon must be non-negative")

	// ErrShapeMismatch indicates pmfs of unequal length were mixed.
	ErrShapeMismatch = errors.New("dist: pmfs must share the same length")

	// ErrBadWeights indicates mixture weights of wrong length or zero sum.
	ErrBadWeights = errors.New("dist: weights must match pmf count and not sum to zero")
)

// DefaultTolerance is the normalization tolerance used unless
// WithTolerance overrides it.
const DefaultTolerance = 1e-9

// Outcome is one joint outcome: an ordered tuple of symbols, one per
// random variable of the distribution it belongs to.
type Outcome []string

// outcomeSep separates symbols inside canonical outcome keys. It is the
// ASCII unit separator, which cannot collide with printable symbols.
const outcomeSep = "\x1f"

// key returns the canonical string form of o, used for uniqueness and
// projection comparisons.
func (o Outcome) key() string { return strings.Join(o, outcomeSep) }

// Clone returns an independent copy of o.
func (o Outcome) Clone() Outcome { return append(Outcome(nil), o...) }

// Distribution is an immutable joint pmf over named random variables.
//
// All fields are unexported and fully determined at construction; the
// zero value is not usable, always build one via New or Uniform.
type Distribution struct {
	names    []string       // ordered variable names
	index    map[string]int // variable name -> position in names
	outcomes []Outcome      // ordered, unique outcome tuples
	probs    []float64      // probs[i] belongs to outcomes[i]
	tol      float64        // normalization tolerance
}

// Options configures Distribution construction.
//
// Tolerance — maximum allowed |sum(probs) - 1|. Must be ≥ 0.
// Default is DefaultTolerance.
type Options struct {
	Tolerance float64
}

// Option is a functional option for New and Uniform.
type Option func(*Options)

// WithTolerance overrides the normalization tolerance.
// Panics on negative values (programmer error, caught at configuration
// time rather than deep inside validation).
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic("dist: tolerance must be non-negative")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// DefaultOptions returns the Options used when no Option overrides them.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}
