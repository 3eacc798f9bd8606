package multicomb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Han-16/multicomb/internal/group"
)

func TestPartitionedKnownSums(t *testing.T) {
	elements := []int64{2, 3, 5}
	subsets := [][]int{{0, 1}, {1, 2}, {0, 1, 2}}

	sums, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 8, 10}, sums)
}

func TestPartitionedMatchesNaiveFold(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, tc := range []struct{ numCount, setCount int }{
		{1, 1},
		{3, 7},  // element count far below partition alignment
		{17, 5}, // prime count forces identity padding
		{64, 64},
		{100, 128},
	} {
		elements := randomInt64s(rng, tc.numCount)
		subsets := randomSubsets(rng, tc.numCount, tc.setCount)

		sums, stats, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets)
		require.NoError(t, err)
		require.Equal(t, naiveSums(elements, subsets), sums,
			"numCount=%d setCount=%d", tc.numCount, tc.setCount)
		require.Positive(t, stats.Partitions)
	}
}

func TestPartitionedAgreesWithPairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	elements := randomInt64s(rng, 80)
	subsets := randomSubsets(rng, 80, 48)

	pairwise, _, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	parted, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, pairwise, parted)
}

func TestPartitionedWidthOverride(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	elements := randomInt64s(rng, 10)
	subsets := randomSubsets(rng, 10, 6)
	want := naiveSums(elements, subsets)

	for _, width := range []int{1, 2, 3, 5, 10, 16} {
		sums, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets,
			WithPartitionSize(func(int) int { return width }))
		require.NoError(t, err)
		require.Equal(t, want, sums, "width=%d", width)
	}
}

func TestPartitionedEmptyAndSingleton(t *testing.T) {
	elements := []int64{7, 11, 13}
	subsets := [][]int{{}, {1}}

	sums, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 11}, sums)
}

func TestPartitionedDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	elements := randomInt64s(rng, 40)
	subsets := randomSubsets(rng, 40, 20)

	sums1, stats1, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	sums2, stats2, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, sums1, sums2)
	require.Equal(t, stats1, stats2)
}

func TestPartitionedInvalidIndex(t *testing.T) {
	elements := []int64{1, 2}

	_, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, [][]int{{2}})
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, _, err = MultiSubsetPartitioned[int64](group.Int64{}, elements, [][]int{{-3}})
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestPartitionedDoesNotMutateInputs(t *testing.T) {
	elements := []int64{2, 3, 5, 7, 11}
	elemsCopy := append([]int64(nil), elements...)

	_, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, [][]int{{0, 4}})
	require.NoError(t, err)
	require.Equal(t, elemsCopy, elements)
}
