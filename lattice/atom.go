package lattice

import (
	"sort"
	"strconv"
	"strings"
)

// Atom identifies one redundancy-lattice atom: a set of outcome indices
// of some distribution. Atoms are immutable, compare by value, and are
// usable as map keys. The zero value is the empty atom (order 0).
type Atom struct {
	key   string // canonical "i,j,k" encoding of the sorted indices
	order int    // number of outcome indices
}

// NewAtom builds the atom generated by the given outcome indices.
// Indices are sorted and deduplicated; their order does not matter.
// Indices must be non-negative.
func NewAtom(outcomes ...int) Atom {
	if len(outcomes) == 0 {
		return Atom{}
	}
	sorted := append([]int(nil), outcomes...)
	sort.Ints(sorted)

	var sb strings.Builder
	order := 0
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		if order > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
		order++
	}

	return Atom{key: sb.String(), order: order}
}

// Order returns the atom's order: the number of outcomes generating it.
func (a Atom) Order() int { return a.order }

// Outcomes returns the atom's outcome indices in ascending order.
func (a Atom) Outcomes() []int {
	if a.order == 0 {
		return nil
	}
	parts := strings.Split(a.key, ",")
	out := make([]int, len(parts))
	for i, s := range parts {
		out[i], _ = strconv.Atoi(s) // key is canonical, cannot fail
	}

	return out
}

// Covers reports whether a contains every outcome of b (a ⊇ b).
// Every atom covers itself and the empty atom.
func (a Atom) Covers(b Atom) bool {
	if b.order == 0 {
		return true
	}
	if b.order > a.order {
		return false
	}
	av, bv := a.Outcomes(), b.Outcomes()
	i := 0
	for _, want := range bv {
		for i < len(av) && av[i] < want {
			i++
		}
		if i == len(av) || av[i] != want {
			return false
		}
		i++
	}

	return true
}

// String renders the atom as "{i,j,k}".
func (a Atom) String() string { return "{" + a.key + "}" }

// less orders atoms by order, then by their index sequence. Used only
// to make AtomSet.Atoms deterministic.
func (a Atom) less(b Atom) bool {
	if a.order != b.order {
		return a.order < b.order
	}
	av, bv := a.Outcomes(), b.Outcomes()
	for i := range av {
		if av[i] != bv[i] {
			return av[i] < bv[i]
		}
	}

	return false
}

// AtomSet is an unordered set of atoms.
type AtomSet map[Atom]struct{}

// NewAtomSet builds a set containing the given atoms.
func NewAtomSet(atoms ...Atom) AtomSet {
	s := make(AtomSet, len(atoms))
	for _, a := range atoms {
		s[a] = struct{}{}
	}

	return s
}

// Add inserts a into the set.
func (s AtomSet) Add(a Atom) { s[a] = struct{}{} }

// Has reports whether a is in the set.
func (s AtomSet) Has(a Atom) bool {
	_, ok := s[a]

	return ok
}

// Len returns the number of atoms in the set.
func (s AtomSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s AtomSet) Clone() AtomSet {
	out := make(AtomSet, len(s))
	for a := range s {
		out[a] = struct{}{}
	}

	return out
}

// Union returns a new set containing every atom of s and t.
func (s AtomSet) Union(t AtomSet) AtomSet {
	out := make(AtomSet, len(s)+len(t))
	for a := range s {
		out[a] = struct{}{}
	}
	for a := range t {
		out[a] = struct{}{}
	}

	return out
}

// Intersect returns a new set containing the atoms present in both s
// and t.
func (s AtomSet) Intersect(t AtomSet) AtomSet {
	small, large := s, t
	if len(t) < len(s) {
		small, large = t, s
	}
	out := make(AtomSet)
	for a := range small {
		if large.Has(a) {
			out[a] = struct{}{}
		}
	}

	return out
}

// Equal reports whether s and t contain exactly the same atoms.
func (s AtomSet) Equal(t AtomSet) bool {
	if len(s) != len(t) {
		return false
	}
	for a := range s {
		if !t.Has(a) {
			return false
		}
	}

	return true
}

// Atoms returns the set's atoms as a slice sorted by order, then by
// index sequence, giving a deterministic iteration order.
func (s AtomSet) Atoms() []Atom {
	out := make([]Atom, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}
