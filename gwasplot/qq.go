package gwasplot

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/plinktools/gwaspost/inflation"
)

// QQ renders a quantile-quantile plot of observed vs expected -log10(p) with
// an identity reference line, and annotates the genomic inflation factor in
// the title. The computed lambda is returned so callers can report it.
func QQ(pvalues []float64, title string, w io.Writer) (float64, error) {
	usable := make([]float64, 0, len(pvalues))
	for _, p := range pvalues {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			continue
		}
		usable = append(usable, p)
	}

	if len(usable) == 0 {
		return 0, pfx.Err(fmt.Errorf("no plottable p-values"))
	}

	lambda, err := inflation.Lambda(usable)
	if err != nil {
		return 0, err
	}

	sort.Float64s(usable)

	expected := inflation.ExpectedNegLog10(len(usable))
	observed := make([]float64, len(usable))
	for i, p := range usable {
		observed[i] = -math.Log10(p)
	}

	maxVal := observed[0]
	if expected[0] > maxVal {
		maxVal = expected[0]
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (lambda = %.3f)", title, lambda),
		Width:  800,
		Height: 800,
		DPI:    300,
		XAxis: chart.XAxis{
			Name: "Expected -log10(P-value)",
		},
		YAxis: chart.YAxis{
			Name: "Observed -log10(P-value)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: expected,
				YValues: observed,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Expected",
				XValues: []float64{0, maxVal},
				YValues: []float64{0, maxVal},
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeWidth:     2.0,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return lambda, pfx.Err(err)
	}

	return lambda, nil
}
