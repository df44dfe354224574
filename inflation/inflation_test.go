package inflation

import (
	"math"
	"math/rand"
	"testing"
)

func TestLambdaOnUniformPValues(t *testing.T) {
	// Under the null, p-values are uniform(0,1) and lambda converges to 1.
	rng := rand.New(rand.NewSource(1))

	pvalues := make([]float64, 200000)
	for i := range pvalues {
		pvalues[i] = rng.Float64()
	}

	lambda, err := Lambda(pvalues)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(lambda-1.0) > 0.02 {
		t.Errorf("Lambda on uniform p-values was %v, expected ~1.0", lambda)
	}
}

func TestLambdaSkipsUnusableValues(t *testing.T) {
	// The NaN and out-of-range entries must not poison the median.
	pvalues := []float64{math.NaN(), 0, -1, 2, 0.5, 0.5, 0.5}

	lambda, err := Lambda(pvalues)
	if err != nil {
		t.Fatal(err)
	}

	// All usable values are exactly the median of the null distribution.
	if math.Abs(lambda-1.0) > 1e-9 {
		t.Errorf("Lambda was %v, expected exactly 1.0 for p=0.5 inputs", lambda)
	}
}

func TestLambdaNoUsableValues(t *testing.T) {
	if _, err := Lambda([]float64{math.NaN(), 0}); err == nil {
		t.Error("Expected an error with no usable p-values")
	}
}

func TestTheoreticalMedian(t *testing.T) {
	if math.Abs(theoreticalMedian-0.4549) > 1e-3 {
		t.Errorf("Chi-square(1) median was %v, expected ~0.4549", theoreticalMedian)
	}
}

func TestExpectedNegLog10(t *testing.T) {
	exp := ExpectedNegLog10(9)

	if len(exp) != 9 {
		t.Fatalf("Expected 9 quantiles, got %d", len(exp))
	}

	// First element pairs with the smallest p-value: -log10(1/10) = 1.
	if math.Abs(exp[0]-1.0) > 1e-12 {
		t.Errorf("exp[0] = %v, expected 1.0", exp[0])
	}

	// The middle quantile is the median: -log10(5/10).
	if math.Abs(exp[4]+math.Log10(0.5)) > 1e-12 {
		t.Errorf("exp[4] = %v, expected -log10(0.5)", exp[4])
	}

	for i := 1; i < len(exp); i++ {
		if exp[i] >= exp[i-1] {
			t.Errorf("Expected quantiles should strictly decrease, broke at %d", i)
		}
	}
}
