// Sweeps input sizes, records how many group operations each solver spends,
// and renders the counts as an interactive HTML chart.

package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/Han-16/multicomb/internal/group"
	"github.com/Han-16/multicomb/internal/multicomb"
	"github.com/Han-16/multicomb/internal/randutil"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {
	expMin := flag.Int("exp-min", 3, "smallest size exponent (n = 2^exp)")
	expMax := flag.Int("exp-max", 9, "largest size exponent")
	bits := flag.Int("bits", 128, "factor bit length")
	setCount := flag.Int("setcount", 64, "subset count for the multisubset sweep")
	outPath := flag.String("out", "opsreport.html", "output HTML file")
	flag.Parse()

	if *expMin < 0 || *expMax < *expMin {
		log.Fatalf("invalid exponent range [%d, %d]", *expMin, *expMax)
	}

	var (
		xLabels       []string
		lincombAdds   []opts.LineData
		naiveLincomb  []opts.LineData
		pairwiseAdds  []opts.LineData
		powersetAdds  []opts.LineData
		naiveFoldAdds []opts.LineData
	)

	g := group.BigInt{}
	for exp := *expMin; exp <= *expMax; exp++ {
		n := 1 << exp
		xLabels = append(xLabels, fmt.Sprintf("2^%d", exp))

		factors, err := randutil.RandomFactors(n, *bits)
		must(err)
		numbers, err := randutil.RandomFactors(n, 64)
		must(err)
		subsets, err := randutil.RandomSubsets(n, *setCount)
		must(err)

		_, lcStats, err := multicomb.LinComb[*big.Int](g, numbers, factors)
		must(err)
		lincombAdds = append(lincombAdds, opts.LineData{Value: lcStats.AdderCalls})
		naiveLincomb = append(naiveLincomb, opts.LineData{Value: multicomb.NaiveBaseline(factors)})

		_, pwStats, err := multicomb.MultiSubset[*big.Int](g, numbers, subsets)
		must(err)
		_, psStats, err := multicomb.MultiSubsetPartitioned[*big.Int](g, numbers, subsets)
		must(err)
		folds := 0
		for _, subset := range subsets {
			folds += len(subset)
		}
		pairwiseAdds = append(pairwiseAdds, opts.LineData{Value: pwStats.AdderCalls})
		powersetAdds = append(powersetAdds, opts.LineData{Value: psStats.AdderCalls})
		naiveFoldAdds = append(naiveFoldAdds, opts.LineData{Value: folds})
	}

	lincombChart := charts.NewLine()
	lincombChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Linear combination: adder calls vs input size",
			Subtitle: fmt.Sprintf("random factors, %d bits", *bits),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "adder calls"}),
	)
	lincombChart.SetXAxis(xLabels).
		AddSeries("pairwise lincomb", lincombAdds).
		AddSeries("naive double-and-add", naiveLincomb)

	subsetChart := charts.NewLine()
	subsetChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Batched subset sums: adder calls vs input size",
			Subtitle: fmt.Sprintf("%d random subsets", *setCount),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "adder calls"}),
	)
	subsetChart.SetXAxis(xLabels).
		AddSeries("pairwise solver", pairwiseAdds).
		AddSeries("power-set solver", powersetAdds).
		AddSeries("naive fold", naiveFoldAdds)

	page := components.NewPage().SetPageTitle("multicomb operation counts")
	page.AddCharts(lincombChart, subsetChart)

	f, err := os.Create(*outPath)
	must(err)
	defer f.Close()
	must(page.Render(f))

	fmt.Printf("wrote %s\n", *outPath)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
