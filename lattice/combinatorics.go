package lattice

import (
	"fmt"

	"github.com/KeenanDown/logdec/dist"
)

// Atoms returns the full redundancy lattice of d: one atom for every
// subset of two or more outcomes. The result has 2^n - n - 1 atoms for
// n = d.Len().
//
// Errors: ErrNilDist.
func Atoms(d *dist.Distribution) (AtomSet, error) {
	if d == nil {
		return nil, ErrNilDist
	}
	n := d.Len()
	out := make(AtomSet)
	members := make([]int, 0, n)
	var extend func(start int)
	extend = func(start int) {
		if len(members) >= 2 {
			out.Add(NewAtom(members...))
		}
		for i := start; i < n; i++ {
			members = append(members, i)
			extend(i + 1)
			members = members[:len(members)-1]
		}
	}
	extend(0)

	return out, nil
}

// NAtoms filters atoms to those whose order matches the selector:
// exactly n for Exact(n), any even positive order for Even(), any odd
// positive order for Odd(). An empty result is valid, not an error.
//
// Errors: ErrBadOrder for an invalid selector (e.g. the zero Order).
func NAtoms(atoms AtomSet, order Order) (AtomSet, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	out := make(AtomSet)
	for a := range atoms {
		if order.Matches(a.Order()) {
			out.Add(a)
		}
	}

	return out, nil
}

// UpperSet returns the upward closure of seeds in d's redundancy
// lattice: every atom of d whose outcome set contains some seed atom,
// the seeds themselves included. The closure is recomputed on every
// call; nothing is cached.
//
// Errors:
//   - ErrNilDist      — d is nil.
//   - ErrOutcomeRange — a seed references an outcome index d does not have.
func UpperSet(d *dist.Distribution, seeds AtomSet) (AtomSet, error) {
	if d == nil {
		return nil, ErrNilDist
	}
	n := d.Len()
	out := make(AtomSet)
	for seed := range seeds {
		members := seed.Outcomes()
		if len(members) > 0 && (members[0] < 0 || members[len(members)-1] >= n) {
			return nil, fmt.Errorf("%w: atom %v", ErrOutcomeRange, seed)
		}

		// Indices not in the seed; every subset of them extends the seed
		// to one atom of the closure.
		inSeed := make([]bool, n)
		for _, i := range members {
			inSeed[i] = true
		}
		rest := make([]int, 0, n-len(members))
		for i := 0; i < n; i++ {
			if !inSeed[i] {
				rest = append(rest, i)
			}
		}

		ext := append([]int(nil), members...)
		var extend func(start int)
		extend = func(start int) {
			out.Add(NewAtom(ext...))
			for i := start; i < len(rest); i++ {
				ext = append(ext, rest[i])
				extend(i + 1)
				ext = ext[:len(ext)-1]
			}
		}
		extend(0)
	}

	return out, nil
}
