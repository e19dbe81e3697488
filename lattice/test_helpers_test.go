package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KeenanDown/logdec/dist"
)

// uniformTwoBits returns the uniform joint over two independent binary
// variables X, Y (outcomes 00, 01, 10, 11 in that index order).
func uniformTwoBits(t *testing.T) *dist.Distribution {
	t.Helper()
	d, err := dist.Uniform([]string{"X", "Y"}, []dist.Outcome{
		{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"},
	})
	require.NoError(t, err)

	return d
}

// correlatedTwoBits returns two positively correlated bits:
// p(00) = p(11) = 3/8, p(01) = p(10) = 1/8.
func correlatedTwoBits(t *testing.T) *dist.Distribution {
	t.Helper()
	d, err := dist.New([]string{"X", "Y"}, []dist.Outcome{
		{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"},
	}, []float64{0.375, 0.125, 0.125, 0.375})
	require.NoError(t, err)

	return d
}

// constantSecond returns a distribution whose second variable C never
// changes: outcomes 0c and 1c, equiprobable.
func constantSecond(t *testing.T) *dist.Distribution {
	t.Helper()
	d, err := dist.Uniform([]string{"X", "C"}, []dist.Outcome{
		{"0", "c"}, {"1", "c"},
	})
	require.NoError(t, err)

	return d
}
