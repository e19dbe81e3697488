// Package dist provides the immutable Distribution container consumed
// by the lattice, shared and pid packages, plus a few raw-pmf helpers.
//
// 🚀 What is dist?
//
//	A joint probability mass function over a fixed, ordered collection
//	of named random variables. Each outcome is a tuple of symbols, one
//	per variable, and carries a single probability. The container is
//	validated once at construction and never mutated afterwards:
//	  • variable names are non-empty and unique
//	  • every outcome has one symbol per variable and appears once
//	  • probabilities are non-negative and sum to 1 (within tolerance)
//
// ✨ Key operations:
//
//   - New / Uniform        — validated constructors
//   - Probability          — pmf lookup by outcome index
//   - EventProbability     — total probability of a set of outcomes
//   - Project              — per-outcome keys on a variable subgroup
//   - Perturb              — ilr-space perturbation of a raw pmf
//   - ConvexCombination    — weighted mixture of raw pmfs
//
// ⚙️ Usage:
//
//	d, err := dist.Uniform(
//	    []string{"X", "Y"},
//	    []dist.Outcome{{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"}},
//	)
//	if err != nil {
//	    // handle ErrArityMismatch, ErrDuplicateOutcome, ...
//	}
//	keys, _ := d.Project([]string{"X"}) // "0","0","1","1"
//
// All accessors return copies; callers cannot reach the internal state.
package dist
