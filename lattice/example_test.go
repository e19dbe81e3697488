package lattice_test

import (
	"fmt"

	"github.com/KeenanDown/logdec/dist"
	"github.com/KeenanDown/logdec/lattice"
)

// ExampleMeasure decomposes the entropy of two uniform bits over the
// full redundancy lattice: the 11 atoms recombine into exactly 2 bits.
func ExampleMeasure() {
	d, _ := dist.Uniform([]string{"X", "Y"}, []dist.Outcome{
		{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"},
	})

	all, _ := lattice.Atoms(d)
	bits, _ := lattice.Measure(d, all, 2)
	fmt.Printf("atoms=%d entropy=%.2f bits\n", all.Len(), bits)
	// Output:
	// atoms=11 entropy=2.00 bits
}

// ExampleContent shows which pair atoms a single bit can observe.
func ExampleContent() {
	d, _ := dist.Uniform([]string{"X", "Y"}, []dist.Outcome{
		{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"},
	})

	content, _ := lattice.Content(d, []string{"X"})
	pairs, _ := lattice.NAtoms(content, lattice.Exact(2))
	for _, a := range pairs.Atoms() {
		fmt.Println(a)
	}
	// Output:
	// {0,2}
	// {0,3}
	// {1,2}
	// {1,3}
}
