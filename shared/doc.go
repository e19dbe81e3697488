// Package shared computes shared information between groups of random
// variables via the logarithmic decomposition.
//
// 🚀 What is shared information here?
//
//	Each variable group owns a content: the lattice atoms whose change
//	of state the group can observe (lattice.Content). Two notions of
//	sharing are derived from it:
//
//	  • Weakly shared — atoms present in EVERY group's content,
//	    filtered to a chosen order, then closed upward in the lattice.
//	    WeaklyShared measures that closure. This is the I_LogDec
//	    intersection measure.
//
//	  • Strongly shared — pure co-change atoms: atoms on which every
//	    group's projection is injective, so any change of state inside
//	    the atom is seen as a change by all groups at once. No upward
//	    closure is applied; a superset of a pure co-change atom is
//	    generally not pure co-change itself.
//
// ⚙️ Usage:
//
//	// What do X and Y redundantly tell us about Z?
//	v, err := shared.WeaklyShared(d,
//	    [][]string{{"X"}, {"Y"}, {"Z"}}, lattice.Exact(2), 2)
//
//	// What do X and Y jointly tell us about Z?
//	v, err = shared.WeaklyShared(d,
//	    [][]string{{"X", "Y"}, {"Z"}}, lattice.Exact(2), 2)
//
// Guarantees:
//
//   - Pure and deterministic: identical inputs give identical outputs.
//   - Group order never matters (set intersection is commutative).
//   - A single group degenerates to its own content, order-filtered and
//     upper-closed.
//   - Disjoint contents yield the empty closure and measure 0.
//
// Per-group contents are computed concurrently (they are independent);
// this is an optimization only and does not affect results.
//
// ⚠️ For more than two groups the weak intersection measure is known to
// behave unexpectedly in places (it need not vanish under full mutual
// independence); interpret multivariable values with care.
package shared
