package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeenanDown/logdec/lattice"
)

// TestAtoms_FullLattice verifies the lattice of a 4-outcome
// distribution has 2^4 - 4 - 1 = 11 atoms, all of order ≥ 2.
func TestAtoms_FullLattice(t *testing.T) {
	d := uniformTwoBits(t)

	all, err := lattice.Atoms(d)
	require.NoError(t, err)
	assert.Equal(t, 11, all.Len())
	for _, a := range all.Atoms() {
		assert.GreaterOrEqual(t, a.Order(), 2)
	}
	assert.True(t, all.Has(lattice.NewAtom(0, 1, 2, 3)), "the top atom is present")

	_, err = lattice.Atoms(nil)
	assert.ErrorIs(t, err, lattice.ErrNilDist)
}

// TestNAtoms_Polymorphism pins the selector semantics on a set holding
// atoms of orders 1 through 4: Even keeps {2,4}, Odd keeps {1,3},
// Exact(2) keeps only the pair.
func TestNAtoms_Polymorphism(t *testing.T) {
	one := lattice.NewAtom(0)
	two := lattice.NewAtom(0, 1)
	three := lattice.NewAtom(0, 1, 2)
	four := lattice.NewAtom(0, 1, 2, 3)
	s := lattice.NewAtomSet(one, two, three, four)

	even, err := lattice.NAtoms(s, lattice.Even())
	require.NoError(t, err)
	assert.True(t, even.Equal(lattice.NewAtomSet(two, four)))

	odd, err := lattice.NAtoms(s, lattice.Odd())
	require.NoError(t, err)
	assert.True(t, odd.Equal(lattice.NewAtomSet(one, three)))

	pairs, err := lattice.NAtoms(s, lattice.Exact(2))
	require.NoError(t, err)
	assert.True(t, pairs.Equal(lattice.NewAtomSet(two)))

	none, err := lattice.NAtoms(s, lattice.Exact(7))
	require.NoError(t, err)
	assert.Zero(t, none.Len(), "an empty filter result is valid")

	_, err = lattice.NAtoms(s, lattice.Exact(0))
	assert.ErrorIs(t, err, lattice.ErrBadOrder)
}

// TestUpperSet_Closure verifies the upward closure of a single pair in
// a 4-outcome lattice: the pair itself plus its 2 triples plus the top,
// i.e. one atom per subset of the 2 remaining outcomes.
func TestUpperSet_Closure(t *testing.T) {
	d := uniformTwoBits(t)
	seed := lattice.NewAtom(0, 1)

	up, err := lattice.UpperSet(d, lattice.NewAtomSet(seed))
	require.NoError(t, err)
	assert.True(t, up.Equal(lattice.NewAtomSet(
		seed,
		lattice.NewAtom(0, 1, 2),
		lattice.NewAtom(0, 1, 3),
		lattice.NewAtom(0, 1, 2, 3),
	)))
	for _, a := range up.Atoms() {
		assert.True(t, a.Covers(seed), "every closure atom covers the seed")
	}
}

// TestUpperSet_EdgeCases covers the empty seed set, seed inclusion and
// input validation.
func TestUpperSet_EdgeCases(t *testing.T) {
	d := uniformTwoBits(t)

	up, err := lattice.UpperSet(d, lattice.NewAtomSet())
	require.NoError(t, err)
	assert.Zero(t, up.Len(), "no seeds close to nothing")

	top := lattice.NewAtom(0, 1, 2, 3)
	up, err = lattice.UpperSet(d, lattice.NewAtomSet(top))
	require.NoError(t, err)
	assert.True(t, up.Equal(lattice.NewAtomSet(top)), "the top atom closes to itself")

	_, err = lattice.UpperSet(nil, lattice.NewAtomSet())
	assert.ErrorIs(t, err, lattice.ErrNilDist)

	_, err = lattice.UpperSet(d, lattice.NewAtomSet(lattice.NewAtom(0, 7)))
	assert.ErrorIs(t, err, lattice.ErrOutcomeRange, "seed outside the distribution must error")
}

// TestUpperSet_Idempotent verifies closing a closure changes nothing.
func TestUpperSet_Idempotent(t *testing.T) {
	d := uniformTwoBits(t)
	seeds := lattice.NewAtomSet(lattice.NewAtom(0, 1), lattice.NewAtom(2, 3))

	once, err := lattice.UpperSet(d, seeds)
	require.NoError(t, err)
	twice, err := lattice.UpperSet(d, once)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}
