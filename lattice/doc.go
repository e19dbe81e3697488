// Package lattice implements the redundancy lattice of the logarithmic
// decomposition: atoms, order filters, upper sets, variable-group
// content, and the interior-loss measure.
//
// 🚀 What is the lattice?
//
//	Every subset of two or more outcomes of a distribution is an atom.
//	The atoms, ordered by set inclusion ("above" = superset), form the
//	redundancy lattice over which entropy decomposes:
//
//	    H_b(d) = Σ over all atoms A of L°(A)
//
//	where L° is the interior entropy loss of an atom (the alternating
//	sum of merge losses over its sub-events). An atom's order is the
//	number of outcomes that generate it: a 2-atom is a pair, a 3-atom a
//	triple, and so on.
//
// ✨ Key operations:
//
//   - Atoms(d)             — the full lattice of d
//   - NAtoms(set, order)   — filter a set of atoms by Exact(n)/Even()/Odd()
//   - UpperSet(d, seeds)   — upward (superset) closure of seed atoms
//   - Content(d, group)    — atoms whose change the variable group can see
//   - TotalLoss(d, ev, b)  — entropy lost when merging outcomes into one event
//   - InteriorLoss(d,a,b)  — L° of a single atom
//   - Measure(d, set, b)   — Σ L° over an atom set (0 for the empty set)
//   - Measures(d, set, b)  — per-atom L° map
//
// ⚙️ Usage:
//
//	all, _ := lattice.Atoms(d)
//	pairs, _ := lattice.NAtoms(all, lattice.Exact(2))
//	up, _ := lattice.UpperSet(d, pairs)
//	bits, _ := lattice.Measure(d, up, 2)
//
// Complexity:
//
//   - Atoms/Content/UpperSet enumerate subsets of the outcome space and
//     are exponential in d.Len(); they are intended for the small
//     discrete systems PID analysis operates on.
//   - InteriorLoss is O(2^order) in the atom's order.
//
// All functions are pure: no caching, no globals, identical inputs give
// identical outputs.
//
// Reference: Down & Mediano, arXiv:2305.07554.
package lattice
