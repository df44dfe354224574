package gwasplot

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/plinktools/gwaspost/assoc"
)

// ReadMissingness pulls the F_MISS column out of a .lmiss or .imiss report.
// NA and malformed cells are skipped.
func ReadMissingness(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	col := -1
	var out []float64

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if col < 0 {
			for i, name := range fields {
				if name == "F_MISS" {
					col = i
				}
			}
			if col < 0 {
				return nil, pfx.Err(fmt.Errorf("no F_MISS column in header %v", fields))
			}
			continue
		}

		if col >= len(fields) {
			continue
		}

		if v, ok := assoc.ParseP(fields[col]); ok {
			out = append(out, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// Missingness renders per-variant and per-individual missingness histograms
// side by side, each with a vertical line marking the QC threshold.
func Missingness(variant, individual []float64, threshold float64, w io.Writer) error {
	left, err := missingnessPanel("SNP Missingness Distribution", "SNP Missingness Rate", variant, threshold)
	if err != nil {
		return err
	}

	right, err := missingnessPanel("Individual Missingness Distribution", "Individual Missingness Rate", individual, threshold)
	if err != nil {
		return err
	}

	return writePNG(w, sideBySide(left, right))
}

func missingnessPanel(title, xLabel string, values []float64, threshold float64) (image.Image, error) {
	if len(values) == 0 {
		return nil, pfx.Err(fmt.Errorf("no missingness values for %q", title))
	}

	centers, counts, err := binCounts(values, 50, threshold*1.25)
	if err != nil {
		return nil, err
	}

	maxCount := 0.0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  700,
		Height: 500,
		DPI:    300,
		XAxis: chart.XAxis{
			Name: xLabel,
		},
		YAxis: chart.YAxis{
			Name: "Frequency",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: centers,
				YValues: counts,
				Style: chart.Style{
					StrokeWidth: 1.5,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Threshold=%g", threshold),
				XValues: []float64{threshold, threshold},
				YValues: []float64{0, maxCount},
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeWidth:     1.0,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return renderPanel(graph)
}
