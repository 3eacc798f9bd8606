// Benchmarks LinComb against gnark-crypto's MultiExp over a range of input
// sizes, using cached input vectors so repeated runs are comparable.

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/Han-16/multicomb/internal/cache"
	"github.com/Han-16/multicomb/internal/group"
	"github.com/Han-16/multicomb/internal/msm"
	"github.com/Han-16/multicomb/internal/multicomb"
	"github.com/Han-16/multicomb/internal/randutil"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/rs/zerolog"
	"github.com/urfave/cli"
)

var (
	expMinFlag = cli.IntFlag{
		Name:  "exp-min",
		Usage: "smallest size exponent to benchmark (n = 2^exp)",
		Value: 4,
	}
	expMaxFlag = cli.IntFlag{
		Name:  "exp-max",
		Usage: "largest size exponent to benchmark",
		Value: 10,
	}
	bitsFlag = cli.IntFlag{
		Name:  "bits",
		Usage: "factor bit length (must stay below the fr modulus)",
		Value: 128,
	}
	itersFlag = cli.IntFlag{
		Name:  "iters",
		Usage: "iterations per size",
		Value: 5,
	}
	procsFlag = cli.IntFlag{
		Name:  "procs",
		Usage: "GOMAXPROCS (<=0: number of CPU cores)",
		Value: -1,
	}
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Usage: "directory for cached input vectors",
		Value: "data",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "results file to append to",
		Value: "lincomb_bench.txt",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "lincomb benchmark"
	app.Usage = "times the subset-sum linear-combination engine against gnark MultiExp"
	app.Flags = []cli.Flag{expMinFlag, expMaxFlag, bitsFlag, itersFlag, procsFlag, dataDirFlag, outFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	expMin := ctx.Int(expMinFlag.Name)
	expMax := ctx.Int(expMaxFlag.Name)
	bits := ctx.Int(bitsFlag.Name)
	iters := ctx.Int(itersFlag.Name)
	if expMin < 0 || expMax < expMin {
		return fmt.Errorf("invalid exponent range [%d, %d]", expMin, expMax)
	}
	if bits <= 0 || bits > 253 {
		return fmt.Errorf("bits must be in 1..253, got %d", bits)
	}
	if iters <= 0 {
		iters = 1
	}

	procs := ctx.Int(procsFlag.Name)
	if procs <= 0 {
		procs = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(procs)

	out, err := os.OpenFile(ctx.String(outFlag.Name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if fi, err := out.Stat(); err == nil && fi.Size() == 0 {
		fmt.Fprintf(out, "# LinComb benchmark (bits=%d, procs=%d)\n", bits, procs)
		fmt.Fprintln(out, "# exp | n | iters | lincomb best | lincomb avg | multiexp best | adds | naive adds")
	}

	c := cache.New(ctx.String(dataDirFlag.Name), log)

	for exp := expMin; exp <= expMax; exp++ {
		n := 1 << exp
		factors, points, cached, err := c.LoadOrCreateInputs(exp, n, bits,
			randutil.RandomFactors,
			func(n int) ([]bn254.G1Affine, error) { return randutil.RandomPointsG1Par(n, procs) },
		)
		if err != nil {
			return err
		}
		log.Info().Int("exp", exp).Int("n", n).Bool("cached", cached).Msg("inputs ready")

		scalars := msm.FactorsToScalars(factors)
		expected, err := msm.MultiExp(points, scalars)
		if err != nil {
			return err
		}

		var best, total, refBest time.Duration
		var stats multicomb.Stats
		for it := 0; it < iters; it++ {
			start := time.Now()
			res, st, err := multicomb.LinComb[bn254.G1Affine](group.G1{}, points, factors)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			if !res.Equal(&expected) {
				return fmt.Errorf("exp %d iter %d: result mismatch with MultiExp", exp, it)
			}
			stats = st
			if it == 0 || elapsed < best {
				best = elapsed
			}
			total += elapsed

			start = time.Now()
			if _, err := msm.MultiExp(points, scalars); err != nil {
				return err
			}
			refElapsed := time.Since(start)
			if it == 0 || refElapsed < refBest {
				refBest = refElapsed
			}
		}
		avg := time.Duration(int64(total) / int64(iters))

		naive := multicomb.NaiveBaseline(factors)
		fmt.Fprintf(out, "%d | %d | %d | %s | %s | %s | %d | %d\n",
			exp, n, iters, best, avg, refBest, stats.AdderCalls, naive)
		log.Info().
			Int("exp", exp).
			Dur("best", best).
			Dur("multiexpBest", refBest).
			Int("adderCalls", stats.AdderCalls).
			Int("naiveBaseline", naive).
			Msg("size done")
	}
	return nil
}
