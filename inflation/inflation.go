// Package inflation computes the genomic inflation factor (lambda) and the
// expected quantiles used by Q-Q plots.
package inflation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

var chiSquared1 = distuv.ChiSquared{K: 1}

// chi-square(1) median, approximately 0.4549.
var theoreticalMedian = chiSquared1.Quantile(0.5)

// Lambda computes the genomic inflation factor: each p-value is converted to
// its one-degree-of-freedom chi-square statistic via the inverse CDF at 1-p,
// and the median observed statistic is divided by the theoretical chi-square(1)
// median. Values near 1 indicate no systematic inflation; values well above 1
// usually mean residual population stratification.
func Lambda(pvalues []float64) (float64, error) {
	observed := make([]float64, 0, len(pvalues))
	for _, p := range pvalues {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			continue
		}

		observed = append(observed, chiSquared1.Quantile(1-p))
	}

	if len(observed) == 0 {
		return 0, fmt.Errorf("no usable p-values for lambda")
	}

	med, err := stats.Median(observed)
	if err != nil {
		return 0, err
	}

	return med / theoreticalMedian, nil
}

// ExpectedNegLog10 returns the expected -log10(p) sequence for n ordered
// uniform p-values: element i-1 is -log10(i/(n+1)), pairing with the i-th
// smallest observed p-value.
func ExpectedNegLog10(n int) []float64 {
	out := make([]float64, n)
	for i := 1; i <= n; i++ {
		out[i-1] = -math.Log10(float64(i) / float64(n+1))
	}

	return out
}
