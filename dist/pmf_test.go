package dist_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeenanDown/logdec/dist"
)

// TestPerturb_ZeroEpsilon verifies that eps = 0 is the identity: the
// ilr transform and its inverse must round-trip the pmf.
func TestPerturb_ZeroEpsilon(t *testing.T) {
	pmf := []float64{0.1, 0.2, 0.3, 0.4}
	out, err := dist.Perturb(pmf, 0, nil)
	require.NoError(t, err)
	require.Len(t, out, len(pmf))
	for i := range pmf {
		assert.InDelta(t, pmf[i], out[i], 1e-12, "eps=0 must reproduce the pmf")
	}
}

// TestPerturb_StaysOnSimplex checks that a perturbed pmf still sums to
// 1, keeps positive entries positive, and preserves zeros.
func TestPerturb_StaysOnSimplex(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 13))
	pmf := []float64{0.5, 0, 0.25, 0.25}

	out, err := dist.Perturb(pmf, 1.5, rng)
	require.NoError(t, err)

	total := 0.0
	for i, p := range out {
		total += p
		if pmf[i] == 0 {
			assert.Zero(t, p, "zero entries cannot be perturbed")
		} else {
			assert.Positive(t, p, "positive entries must stay positive")
		}
	}
	assert.InDelta(t, 1.0, total, 1e-12, "perturbed pmf must remain normalized")
}

// TestPerturb_Validation covers the perturbation failure modes.
func TestPerturb_Validation(t *testing.T) {
	_, err := dist.Perturb([]float64{0.5, 0.5}, -0.1, nil)
	assert.ErrorIs(t, err, dist.ErrBadEpsilon, "negative eps must error")

	_, err = dist.Perturb([]float64{0.5, 0.5}, math.NaN(), nil)
	assert.ErrorIs(t, err, dist.ErrBadEpsilon, "NaN eps must error")

	_, err = dist.Perturb(nil, 0.1, nil)
	assert.ErrorIs(t, err, dist.ErrEmptyPMF, "empty pmf must error")

	_, err = dist.Perturb([]float64{0, 0}, 0.1, nil)
	assert.ErrorIs(t, err, dist.ErrEmptyPMF, "all-zero pmf must error")
}

// TestConvexCombination_Uniform verifies the default equal-weight mix.
func TestConvexCombination_Uniform(t *testing.T) {
	pmfs := [][]float64{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
	}
	mix, err := dist.ConvexCombination(pmfs, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.5}, mix, 1e-15)
}

// TestConvexCombination_Weighted verifies weights are normalized before
// mixing.
func TestConvexCombination_Weighted(t *testing.T) {
	pmfs := [][]float64{
		{1, 0},
		{0, 1},
	}
	mix, err := dist.ConvexCombination(pmfs, []float64{3, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, mix, 1e-15)
}

// TestConvexCombination_Validation covers the mixing failure modes.
func TestConvexCombination_Validation(t *testing.T) {
	_, err := dist.ConvexCombination(nil, nil)
	assert.ErrorIs(t, err, dist.ErrEmptyPMF, "no pmfs must error")

	_, err = dist.ConvexCombination([][]float64{{0.5, 0.5}, {1}}, nil)
	assert.ErrorIs(t, err, dist.ErrShapeMismatch, "ragged pmfs must error")

	_, err = dist.ConvexCombination([][]float64{{0.5, 0.5}}, []float64{1, 2})
	assert.ErrorIs(t, err, dist.ErrBadWeights, "weight count mismatch must error")

	_, err = dist.ConvexCombination([][]float64{{0.5, 0.5}, {1, 0}}, []float64{0, 0})
	assert.ErrorIs(t, err, dist.ErrBadWeights, "zero-sum weights must error")
}
