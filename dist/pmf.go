// Package dist: raw-pmf helpers that operate on plain probability
// vectors rather than on a Distribution.
//
// Perturb jitters a pmf inside the simplex by working in isometric
// log-ratio (ilr) coordinates, where the simplex becomes an
// unconstrained Euclidean space; ConvexCombination mixes several pmfs.
package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Perturb returns a new pmf with every positive probability perturbed.
//
// Zero entries cannot be perturbed and are preserved as zeros. The
// positive part is transformed as follows:
//
//  1. Map the positive probabilities to ilr coordinates.
//  2. Draw one uniform number in [-0.5, 0.5) per coordinate.
//  3. Shift: y' = y + eps·u.
//  4. Map back to the simplex.
//
// Larger eps pushes the result closer to the simplex boundary; eps = 0
// reproduces the input up to floating-point error. A nil rng uses the
// shared top-level generator of math/rand/v2.
//
// Errors:
//   - ErrEmptyPMF   — pmf is empty or has no positive entries.
//   - ErrBadEpsilon — eps < 0 (or NaN).
func Perturb(pmf []float64, eps float64, rng *rand.Rand) ([]float64, error) {
	if !(eps >= 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadEpsilon, eps)
	}

	// Collect the positive support.
	idx := make([]int, 0, len(pmf))
	pos := make([]float64, 0, len(pmf))
	for i, p := range pmf {
		if p > 0 {
			idx = append(idx, i)
			pos = append(pos, p)
		}
	}
	if len(pos) == 0 {
		return nil, ErrEmptyPMF
	}

	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}

	// Perturb in ilr space and map back.
	y := ilr(pos)
	for i := range y {
		y[i] += eps * (uniform() - 0.5)
	}
	part := ilrInv(y)

	out := make([]float64, len(pmf))
	for k, i := range idx {
		out[i] = part[k]
	}

	return out, nil
}

// ConvexCombination forms the weighted mixture of the given pmfs.
//
// All pmfs must share the same length. A nil weights slice means equal
// weights; otherwise weights must have one entry per pmf and are
// normalized to sum to 1 automatically.
//
// Errors:
//   - ErrEmptyPMF     — no pmfs, or pmfs of length zero.
//   - ErrShapeMismatch — pmfs of different lengths.
//   - ErrBadWeights   — len(weights) != len(pmfs), or weights sum to 0.
func ConvexCombination(pmfs [][]float64, weights []float64) ([]float64, error) {
	if len(pmfs) == 0 || len(pmfs[0]) == 0 {
		return nil, ErrEmptyPMF
	}
	width := len(pmfs[0])
	for i, p := range pmfs {
		if len(p) != width {
			return nil, fmt.Errorf("%w: pmf %d has length %d, want %d",
				ErrShapeMismatch, i, len(p), width)
		}
	}

	// Resolve and normalize weights.
	w := weights
	if w == nil {
		w = make([]float64, len(pmfs))
		for i := range w {
			w[i] = 1 / float64(len(pmfs))
		}
	} else {
		if len(w) != len(pmfs) {
			return nil, fmt.Errorf("%w: %d weights for %d pmfs",
				ErrBadWeights, len(w), len(pmfs))
		}
		total := 0.0
		for _, x := range w {
			total += x
		}
		if total == 0 || math.IsNaN(total) {
			return nil, ErrBadWeights
		}
		normalized := make([]float64, len(w))
		for i, x := range w {
			normalized[i] = x / total
		}
		w = normalized
	}

	mixture := make([]float64, width)
	for i, p := range pmfs {
		for j, x := range p {
			mixture[j] += w[i] * x
		}
	}

	return mixture, nil
}

// ilr maps a strictly positive composition of length k to k-1 isometric
// log-ratio coordinates over the Helmert basis. It is scale-invariant,
// so the input need not sum to 1.
func ilr(p []float64) []float64 {
	k := len(p)
	lp := make([]float64, k)
	for i, x := range p {
		lp[i] = math.Log(x)
	}

	y := make([]float64, k-1)
	partial := 0.0
	for i := 1; i < k; i++ {
		partial += lp[i-1]
		mean := partial / float64(i)
		y[i-1] = math.Sqrt(float64(i)/float64(i+1)) * (mean - lp[i])
	}

	return y
}

// ilrInv maps k-1 ilr coordinates back to a composition of length k
// summing to 1. It is the exact inverse of ilr up to normalization.
func ilrInv(y []float64) []float64 {
	k := len(y) + 1
	u := make([]float64, k)
	for i := 1; i < k; i++ {
		c := math.Sqrt(float64(i) / float64(i+1))
		share := y[i-1] * c / float64(i)
		for j := 0; j < i; j++ {
			u[j] += share
		}
		u[i] -= y[i-1] * c
	}

	out := make([]float64, k)
	total := 0.0
	for i, x := range u {
		out[i] = math.Exp(x)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}

	return out
}
