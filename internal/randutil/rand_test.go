package randutil_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Han-16/multicomb/internal/randutil"
)

func TestRandomFactorsBounds(t *testing.T) {
	factors, err := randutil.RandomFactors(50, 16)
	require.NoError(t, err)
	require.Len(t, factors, 50)

	bound := new(big.Int).Lsh(big.NewInt(1), 16)
	for i, f := range factors {
		require.NotNil(t, f, "factor %d", i)
		require.GreaterOrEqual(t, f.Sign(), 0, "factor %d", i)
		require.Negative(t, f.Cmp(bound), "factor %d", i)
	}

	_, err = randutil.RandomFactors(1, 0)
	require.Error(t, err)
}

func TestRandomSubsetsInBounds(t *testing.T) {
	subsets, err := randutil.RandomSubsets(20, 12)
	require.NoError(t, err)
	require.Len(t, subsets, 12)

	for _, subset := range subsets {
		seen := make(map[int]bool)
		for _, i := range subset {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, 20)
			require.False(t, seen[i], "duplicate index %d", i)
			seen[i] = true
		}
	}
}

func TestRandomPointsG1OnCurve(t *testing.T) {
	points, err := randutil.RandomPointsG1(4)
	require.NoError(t, err)
	require.Len(t, points, 4)
	for i := range points {
		require.True(t, points[i].IsOnCurve(), "point %d", i)
	}
}

func TestParallelGeneratorsLength(t *testing.T) {
	factors, err := randutil.RandomFactorsPar(33, 64, 4)
	require.NoError(t, err)
	require.Len(t, factors, 33)
	for i, f := range factors {
		require.NotNil(t, f, "factor %d", i)
	}

	points, err := randutil.RandomPointsG1Par(17, 4)
	require.NoError(t, err)
	require.Len(t, points, 17)

	empty, err := randutil.RandomPointsG1Par(0, 4)
	require.NoError(t, err)
	require.Empty(t, empty)
}
