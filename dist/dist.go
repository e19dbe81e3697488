package dist

import (
	"fmt"
	"math"
	"strings"
)

// New builds a validated, immutable Distribution.
//
// names are the ordered random-variable names; outcomes[i] is the i-th
// joint outcome (one symbol per variable) with probability probs[i].
//
// Validation is upfront and fail-fast:
//  1. names non-empty, each name non-empty and unique.
//  2. outcomes non-empty, each of arity len(names), no duplicates.
//  3. len(probs) == len(outcomes), every probability ≥ 0, and the
//     total within Options.Tolerance of 1.
//
// All inputs are copied; the caller keeps ownership of its slices.
func New(names []string, outcomes []Outcome, probs []float64, opts ...Option) (*Distribution, error) {
	// 1. Apply options.
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}

	// 2. Validate variable names.
	if len(names) == 0 {
		return nil, ErrNoVariables
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyVariable
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		index[name] = i
	}

	// 3. Validate outcomes.
	if len(outcomes) == 0 {
		return nil, ErrNoOutcomes
	}
	if len(probs) != len(outcomes) {
		return nil, fmt.Errorf("%w: %d probabilities for %d outcomes",
			ErrLengthMismatch, len(probs), len(outcomes))
	}
	seen := make(map[string]struct{}, len(outcomes))
	copied := make([]Outcome, len(outcomes))
	for i, o := range outcomes {
		if len(o) != len(names) {
			return nil, fmt.Errorf("%w: outcome %d has %d symbols, want %d",
				ErrArityMismatch, i, len(o), len(names))
		}
		k := o.key()
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateOutcome, []string(o))
		}
		seen[k] = struct{}{}
		copied[i] = o.Clone()
	}

	// 4. Validate the pmf.
	total := 0.0
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return nil, fmt.Errorf("%w: probs[%d] = %v", ErrNegativeProbability, i, p)
		}
		total += p
	}
	if math.Abs(total-1) > cfg.Tolerance {
		return nil, fmt.Errorf("%w: sum = %v", ErrNotNormalized, total)
	}

	return &Distribution{
		names:    append([]string(nil), names...),
		index:    index,
		outcomes: copied,
		probs:    append([]float64(nil), probs...),
		tol:      cfg.Tolerance,
	}, nil
}

// Uniform builds the uniform distribution over the given outcomes.
func Uniform(names []string, outcomes []Outcome, opts ...Option) (*Distribution, error) {
	if len(outcomes) == 0 {
		return nil, ErrNoOutcomes
	}
	probs := make([]float64, len(outcomes))
	p := 1 / float64(len(outcomes))
	for i := range probs {
		probs[i] = p
	}

	return New(names, outcomes, probs, opts...)
}

// Names returns a copy of the ordered variable names.
func (d *Distribution) Names() []string { return append([]string(nil), d.names...) }

// Len returns the number of outcomes.
func (d *Distribution) Len() int { return len(d.outcomes) }

// HasVariable reports whether the distribution contains the named variable.
func (d *Distribution) HasVariable(name string) bool {
	_, ok := d.index[name]

	return ok
}

// Outcome returns a copy of the i-th outcome tuple.
// Panics if i is outside [0, Len), mirroring slice indexing.
func (d *Distribution) Outcome(i int) Outcome { return d.outcomes[i].Clone() }

// Outcomes returns copies of all outcome tuples in construction order.
func (d *Distribution) Outcomes() []Outcome {
	out := make([]Outcome, len(d.outcomes))
	for i, o := range d.outcomes {
		out[i] = o.Clone()
	}

	return out
}

// Probability returns the probability of the i-th outcome.
// Panics if i is outside [0, Len), mirroring slice indexing.
func (d *Distribution) Probability(i int) float64 { return d.probs[i] }

// EventProbability returns the total probability of the event formed by
// the given outcome indices. Duplicate indices are counted once; the
// empty event has probability 0.
//
// Errors: ErrOutcomeRange if any index is outside [0, Len).
func (d *Distribution) EventProbability(events []int) (float64, error) {
	seen := make(map[int]struct{}, len(events))
	total := 0.0
	for _, i := range events {
		if i < 0 || i >= len(d.outcomes) {
			return 0, fmt.Errorf("%w: %d", ErrOutcomeRange, i)
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		total += d.probs[i]
	}

	return total, nil
}

// Project returns, for every outcome in order, the canonical key of its
// restriction to the given variable group. Two outcomes receive equal
// keys exactly when they agree on every variable of the group; the
// empty group maps every outcome to the same key.
//
// Errors: ErrUnknownVariable if group names a variable the distribution
// does not contain.
func (d *Distribution) Project(group []string) ([]string, error) {
	cols := make([]int, len(group))
	for i, name := range group {
		j, ok := d.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		cols[i] = j
	}

	keys := make([]string, len(d.outcomes))
	var sb strings.Builder
	for i, o := range d.outcomes {
		sb.Reset()
		for n, j := range cols {
			if n > 0 {
				sb.WriteString(outcomeSep)
			}
			sb.WriteString(o[j])
		}
		keys[i] = sb.String()
	}

	return keys, nil
}
