// go run ./cmd/subsettest <numcount> [setcount]
// Cross-checks both subset-sum solvers against naive folds on random inputs
// and reports per-solver adder-call counts.

package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/Han-16/multicomb/internal/group"
	"github.com/Han-16/multicomb/internal/multicomb"
	"github.com/Han-16/multicomb/internal/randutil"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/subsettest <numcount> [setcount]")
		return
	}
	numCount, err := strconv.Atoi(os.Args[1])
	must(err)
	if numCount <= 0 {
		panic("numcount must be positive")
	}

	setCount := numCount
	if len(os.Args) >= 3 {
		setCount, err = strconv.Atoi(os.Args[2])
		must(err)
		if setCount <= 0 {
			panic("setcount must be positive")
		}
	}

	numbers, err := randutil.RandomFactors(numCount, 64)
	must(err)
	subsets, err := randutil.RandomSubsets(numCount, setCount)
	must(err)

	g := group.BigInt{}

	greedy, greedyStats, err := multicomb.MultiSubset[*big.Int](g, numbers, subsets)
	must(err)
	parted, partedStats, err := multicomb.MultiSubsetPartitioned[*big.Int](g, numbers, subsets)
	must(err)

	naiveCalls := 0
	for k, subset := range subsets {
		want := new(big.Int)
		for _, i := range subset {
			want.Add(want, numbers[i])
		}
		naiveCalls += len(subset)
		if greedy[k].Cmp(want) != 0 {
			panic(fmt.Sprintf("subset %d: pairwise solver mismatch", k))
		}
		if parted[k].Cmp(want) != 0 {
			panic(fmt.Sprintf("subset %d: power-set solver mismatch", k))
		}
	}

	fmt.Printf("numcount=%d setcount=%d: all %d sums verified\n", numCount, setCount, setCount)
	fmt.Printf("  naive fold:       %d adds\n", naiveCalls)
	fmt.Printf("  pairwise solver:  %d adds (%d rounds, %d merges)\n",
		greedyStats.AdderCalls, greedyStats.Rounds, greedyStats.Merges)
	fmt.Printf("  power-set solver: %d adds (%d partitions)\n",
		partedStats.AdderCalls, partedStats.Partitions)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
