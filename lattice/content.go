package lattice

import (
	"github.com/KeenanDown/logdec/dist"
)

// Content returns the information content of a variable group: the set
// of lattice atoms whose member outcomes are not all equal once
// restricted to the group. These are exactly the atoms whose change of
// state the group can observe.
//
// The group may be any subset of d's variables, in any order; an empty
// group observes nothing and has empty content. Two calls with equal
// arguments return equal sets.
//
// Errors:
//   - ErrNilDist             — d is nil.
//   - dist.ErrUnknownVariable — group names a variable d does not have.
func Content(d *dist.Distribution, group []string) (AtomSet, error) {
	if d == nil {
		return nil, ErrNilDist
	}
	keys, err := d.Project(group)
	if err != nil {
		return nil, err
	}

	all, err := Atoms(d)
	if err != nil {
		return nil, err
	}

	out := make(AtomSet)
	for a := range all {
		members := a.Outcomes()
		first := keys[members[0]]
		for _, i := range members[1:] {
			if keys[i] != first {
				out.Add(a)

				break
			}
		}
	}

	return out, nil
}
