// go run ./cmd/lincombtest <exp> [bits] [iters]
//   exp   : n = 2^exp points
//   bits  : factor bit length (default 128)
//   iters : number of iterations (default 5)

package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/Han-16/multicomb/internal/group"
	"github.com/Han-16/multicomb/internal/msm"
	"github.com/Han-16/multicomb/internal/multicomb"
	"github.com/Han-16/multicomb/internal/randutil"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/lincombtest <exp> [bits] [iters]")
		return
	}
	exp, err := strconv.Atoi(os.Args[1])
	must(err)
	if exp < 0 {
		panic("exp must be non-negative")
	}
	n := 1 << exp

	bits := 128
	if len(os.Args) >= 3 {
		bits, err = strconv.Atoi(os.Args[2])
		must(err)
		if bits <= 0 || bits > 253 {
			panic("bits must be in 1..253 (below the fr modulus)")
		}
	}

	iters := 5
	if len(os.Args) >= 4 {
		iters, err = strconv.Atoi(os.Args[3])
		must(err)
		if iters <= 0 {
			iters = 1
		}
	}

	// ---- 1) random inputs ----
	points, err := randutil.RandomPointsG1Par(n, 0)
	must(err)
	factors, err := randutil.RandomFactors(n, bits)
	must(err)
	scalars := msm.FactorsToScalars(factors)

	// ---- 2) expected via gnark MultiExp ----
	expected, err := msm.MultiExp(points, scalars)
	must(err)

	// ---- 3) warmup + correctness ----
	{
		res, _, err := multicomb.LinComb[bn254.G1Affine](group.G1{}, points, factors)
		must(err)
		if !res.Equal(&expected) {
			panic("warmup: LinComb result mismatch with MultiExp")
		}
		runtime.KeepAlive(res)
	}

	// ---- 4) timing ----
	var best, total time.Duration
	var stats multicomb.Stats
	for it := 0; it < iters; it++ {
		start := time.Now()
		res, st, err := multicomb.LinComb[bn254.G1Affine](group.G1{}, points, factors)
		must(err)
		elapsed := time.Since(start)

		if !res.Equal(&expected) {
			panic(fmt.Sprintf("iter %d: LinComb result mismatch with MultiExp", it))
		}
		stats = st

		if it == 0 || elapsed < best {
			best = elapsed
		}
		total += elapsed
	}
	avg := time.Duration(int64(total) / int64(iters))

	// ---- 5) summary ----
	naive := multicomb.NaiveBaseline(factors)
	fmt.Printf("n=%d bits=%d iters=%d\n", n, bits, iters)
	fmt.Printf("  time: best=%s avg=%s\n", best, avg)
	fmt.Printf("  adder calls: %d (naive baseline %d, factor %.2f)\n",
		stats.AdderCalls, naive, float64(naive)/float64(stats.AdderCalls))
	fmt.Printf("  rounds=%d merges=%d\n", stats.Rounds, stats.Merges)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
