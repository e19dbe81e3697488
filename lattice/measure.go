package lattice

import (
	"fmt"
	"math"

	"github.com/KeenanDown/logdec/dist"
)

// logBase returns log_base(x).
func logBase(x, base float64) float64 { return math.Log(x) / math.Log(base) }

// plog returns p·log_base(1/p) with the usual convention 0·log(1/0) = 0.
func plog(p, base float64) float64 {
	if p <= 0 {
		return 0
	}

	return p * logBase(1/p, base)
}

// validateBase rejects log bases not greater than 1 (NaN included).
func validateBase(base float64) error {
	if !(base > 1) {
		return fmt.Errorf("%w: %v", ErrBadLogBase, base)
	}

	return nil
}

// TotalLoss returns the entropy lost when the given outcomes are merged
// into a single event of d:
//
//	Σ p_i·log(1/p_i)  -  P·log(1/P),   P = Σ p_i
//
// with logarithms to the given base. Duplicate indices are counted
// once; the empty event loses nothing and returns 0.
//
// Errors: ErrNilDist, ErrBadLogBase, ErrOutcomeRange.
func TotalLoss(d *dist.Distribution, events []int, base float64) (float64, error) {
	if d == nil {
		return 0, ErrNilDist
	}
	if err := validateBase(base); err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	seen := make(map[int]struct{}, len(events))
	merged := 0.0
	before := 0.0
	for _, i := range events {
		if i < 0 || i >= d.Len() {
			return 0, fmt.Errorf("%w: %d", ErrOutcomeRange, i)
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		p := d.Probability(i)
		merged += p
		before += plog(p, base)
	}

	return before - plog(merged, base), nil
}

// InteriorLoss returns the interior entropy loss L° of one atom: the
// inclusion-exclusion alternating sum of TotalLoss over every
// sub-event of the atom,
//
//	L°(A) = (-1)^|A| · Σ over S ⊆ A of (-1)^|S| · TotalLoss(S).
//
// Interior losses of odd-order atoms are typically negative; summed
// over upper sets they recombine into entropy quantities.
//
// Complexity: O(2^order) TotalLoss evaluations.
//
// Errors: ErrNilDist, ErrBadLogBase, ErrOutcomeRange.
func InteriorLoss(d *dist.Distribution, a Atom, base float64) (float64, error) {
	if d == nil {
		return 0, ErrNilDist
	}
	if err := validateBase(base); err != nil {
		return 0, err
	}

	members := a.Outcomes()
	k := len(members)
	sub := make([]int, 0, k)
	total := 0.0
	for mask := 0; mask < 1<<k; mask++ {
		sub = sub[:0]
		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				sub = append(sub, members[i])
			}
		}
		loss, err := TotalLoss(d, sub, base)
		if err != nil {
			return 0, err
		}
		if (k+len(sub))%2 == 0 {
			total += loss
		} else {
			total -= loss
		}
	}

	return total, nil
}

// Measure aggregates an atom set into a single information value: the
// sum of interior losses of its atoms, with logarithms to the given
// base. The empty set measures 0. Summed over the full lattice of d,
// Measure equals the entropy H_base(d).
//
// Errors: ErrNilDist, ErrBadLogBase, ErrOutcomeRange.
func Measure(d *dist.Distribution, atoms AtomSet, base float64) (float64, error) {
	if d == nil {
		return 0, ErrNilDist
	}
	if err := validateBase(base); err != nil {
		return 0, err
	}

	total := 0.0
	for a := range atoms {
		loss, err := InteriorLoss(d, a, base)
		if err != nil {
			return 0, err
		}
		total += loss
	}

	return total, nil
}

// Measures returns the interior loss of every atom in the set, keyed by
// atom. The values sum to Measure of the same set.
//
// Errors: ErrNilDist, ErrBadLogBase, ErrOutcomeRange.
func Measures(d *dist.Distribution, atoms AtomSet, base float64) (map[Atom]float64, error) {
	if d == nil {
		return nil, ErrNilDist
	}
	if err := validateBase(base); err != nil {
		return nil, err
	}

	out := make(map[Atom]float64, len(atoms))
	for a := range atoms {
		loss, err := InteriorLoss(d, a, base)
		if err != nil {
			return nil, err
		}
		out[a] = loss
	}

	return out, nil
}
