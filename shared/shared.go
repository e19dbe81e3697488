package shared

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/KeenanDown/logdec/dist"
	"github.com/KeenanDown/logdec/lattice"
)

// Sentinel errors for the intersection engine. Lattice-level failures
// (lattice.ErrBadOrder, lattice.ErrBadLogBase) and unknown variables
// (dist.ErrUnknownVariable) are propagated unchanged.
var (
	// ErrNilDist indicates a nil *dist.Distribution argument.
	ErrNilDist = errors.New("shared: distribution is nil")

	// ErrNoGroups indicates an empty list of variable groups.
	ErrNoGroups = errors.New("shared: at least one variable group is required")
)

// DefaultOrder is the conventional atom-order selector of the
// intersection measure: order-2 upper sets.
var DefaultOrder = lattice.Exact(2)

// DefaultLogBase is the conventional logarithm base (bits).
const DefaultLogBase = 2.0

// contents computes every group's content concurrently. The groups are
// independent of one another, so this is a plain fan-out; results land
// in a slice indexed by group so the outcome is deterministic.
func contents(d *dist.Distribution, groups [][]string) ([]lattice.AtomSet, error) {
	out := make([]lattice.AtomSet, len(groups))
	var g errgroup.Group
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			c, err := lattice.Content(d, group)
			if err != nil {
				return err
			}
			out[i] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// WeaklySharedContent returns the weakly shared content of the given
// variable groups: the atoms common to every group's content, filtered
// to the requested order, closed upward in d's redundancy lattice.
//
// Steps:
//  1. Validate inputs (fail fast, no partial work).
//  2. Compute each group's content (concurrently; order-independent).
//  3. Intersect the contents; with a single group this degenerates to
//     that group's content.
//  4. Filter to the requested order and return the upper set.
//
// The result is a set, possibly empty, never nil on success.
//
// Errors: ErrNilDist, ErrNoGroups, lattice.ErrBadOrder,
// dist.ErrUnknownVariable.
func WeaklySharedContent(d *dist.Distribution, groups [][]string, order lattice.Order) (lattice.AtomSet, error) {
	// 1. Validate.
	if d == nil {
		return nil, ErrNilDist
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	// 2. Per-group contents.
	cs, err := contents(d, groups)
	if err != nil {
		return nil, err
	}

	// 3. Reduce by intersection (commutative and associative, so the
	// reduction order is irrelevant).
	common := cs[0]
	for _, c := range cs[1:] {
		common = common.Intersect(c)
	}

	// 4. Order filter, then upward closure.
	filtered, err := lattice.NAtoms(common, order)
	if err != nil {
		return nil, err
	}

	return lattice.UpperSet(d, filtered)
}

// WeaklyShared measures the weakly shared content of the given groups:
// lattice.Measure applied to WeaklySharedContent, with logarithms to
// the given base. An empty shared content measures 0.
//
// Errors: ErrNilDist, ErrNoGroups, lattice.ErrBadOrder,
// lattice.ErrBadLogBase, dist.ErrUnknownVariable.
func WeaklyShared(d *dist.Distribution, groups [][]string, order lattice.Order, base float64) (float64, error) {
	if !(base > 1) {
		return 0, lattice.ErrBadLogBase
	}

	content, err := WeaklySharedContent(d, groups, order)
	if err != nil {
		return 0, err
	}

	return lattice.Measure(d, content, base)
}

// StronglySharedContent returns the strongly shared content of the
// given variable groups: the pure co-change atoms of the requested
// order. An atom is pure co-change when every group's projection is
// injective on its outcomes, i.e. no two outcomes of the atom look
// alike to any group — the atom changes only when all groups change
// together.
//
// Unlike the weak notion, no upper-set closure is applied: extending a
// pure co-change atom with further outcomes generally introduces pairs
// some group cannot distinguish.
//
// Errors: ErrNilDist, ErrNoGroups, lattice.ErrBadOrder,
// dist.ErrUnknownVariable.
func StronglySharedContent(d *dist.Distribution, groups [][]string, order lattice.Order) (lattice.AtomSet, error) {
	// 1. Validate.
	if d == nil {
		return nil, ErrNilDist
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	// 2. Per-group projection keys.
	projections := make([][]string, len(groups))
	for i, group := range groups {
		keys, err := d.Project(group)
		if err != nil {
			return nil, err
		}
		projections[i] = keys
	}

	// 3. Keep the order-matching atoms every group sees injectively.
	all, err := lattice.Atoms(d)
	if err != nil {
		return nil, err
	}
	out := make(lattice.AtomSet)
	seen := make(map[string]struct{})
	for a := range all {
		if !order.Matches(a.Order()) {
			continue
		}
		members := a.Outcomes()
		pure := true
		for _, keys := range projections {
			clear(seen)
			for _, i := range members {
				if _, dup := seen[keys[i]]; dup {
					pure = false

					break
				}
				seen[keys[i]] = struct{}{}
			}
			if !pure {
				break
			}
		}
		if pure {
			out.Add(a)
		}
	}

	return out, nil
}

// StronglyShared measures the strongly shared content of the given
// groups: lattice.Measure applied to StronglySharedContent, with
// logarithms to the given base.
//
// Errors: ErrNilDist, ErrNoGroups, lattice.ErrBadOrder,
// lattice.ErrBadLogBase, dist.ErrUnknownVariable.
func StronglyShared(d *dist.Distribution, groups [][]string, order lattice.Order, base float64) (float64, error) {
	if !(base > 1) {
		return 0, lattice.ErrBadLogBase
	}

	content, err := StronglySharedContent(d, groups, order)
	if err != nil {
		return 0, err
	}

	return lattice.Measure(d, content, base)
}
