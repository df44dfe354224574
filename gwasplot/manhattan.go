package gwasplot

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plinktools/gwaspost/assoc"
)

// The two matplotlib default colors the pipeline has always alternated
// between for adjacent chromosomes.
var chromosomeColors = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
}

// Manhattan renders a Manhattan plot: variants ordered by chromosome then
// position on the x axis, -log10(p) on the y axis, with dashed reference
// lines at the genome-wide and suggestive significance thresholds. Records
// without a usable p-value or position are dropped, never plotted as zero.
func Manhattan(table *assoc.Table, title string, genomeWideP, suggestiveP float64, w io.Writer) error {
	type point struct {
		chromosome string
		order      int
		position   int
		y          float64
	}

	points := make([]point, 0, len(table.Records))
	for _, rec := range table.Records {
		if !rec.HasP() || rec.P <= 0 || !rec.HasPosition() || rec.Chromosome == "" {
			continue
		}

		points = append(points, point{
			chromosome: rec.Chromosome,
			order:      chromosomeOrder(rec.Chromosome),
			position:   rec.Position,
			y:          -math.Log10(rec.P),
		})
	}

	if len(points) == 0 {
		return pfx.Err(fmt.Errorf("no plottable records"))
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].order != points[j].order {
			return points[i].order < points[j].order
		}
		if points[i].chromosome != points[j].chromosome {
			return points[i].chromosome < points[j].chromosome
		}
		return points[i].position < points[j].position
	})

	var series []chart.Series
	var ticks []chart.Tick

	groupStart := 0
	for i := 1; i <= len(points); i++ {
		if i < len(points) && points[i].chromosome == points[groupStart].chromosome {
			continue
		}

		group := points[groupStart:i]
		xs := make([]float64, len(group))
		ys := make([]float64, len(group))
		for j, pt := range group {
			xs[j] = float64(groupStart + j)
			ys[j] = pt.y
		}

		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    2,
				DotColor:    chromosomeColors[len(ticks)%len(chromosomeColors)],
			},
		})

		ticks = append(ticks, chart.Tick{
			Value: float64(groupStart) + float64(len(group))/2,
			Label: group[0].chromosome,
		})

		groupStart = i
	}

	maxX := float64(len(points) - 1)
	series = append(series,
		referenceLine("p="+formatThreshold(genomeWideP), maxX, -math.Log10(genomeWideP), chart.ColorRed),
		referenceLine("p="+formatThreshold(suggestiveP), maxX, -math.Log10(suggestiveP), chart.ColorBlue),
	)

	// Anchor ticks at the edges so single-chromosome inputs still render.
	ticks = append([]chart.Tick{{Value: 0, Label: ""}}, ticks...)
	ticks = append(ticks, chart.Tick{Value: maxX, Label: ""})

	graph := chart.Chart{
		Title:  title,
		Width:  1600,
		Height: 600,
		DPI:    300,
		XAxis: chart.XAxis{
			Name:  "Chromosome",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "-log10(P-value)",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return pfx.Err(graph.Render(chart.PNG, w))
}

func referenceLine(name string, maxX, y float64, color drawing.Color) chart.Series {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{0, maxX},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

func formatThreshold(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// chromosomeOrder places autosomes numerically, then X, Y, XY, MT, then any
// other contig labels.
func chromosomeOrder(label string) int {
	if n, err := strconv.Atoi(label); err == nil {
		return n
	}

	switch strings.ToUpper(label) {
	case "X":
		return 23
	case "Y":
		return 24
	case "XY":
		return 25
	case "MT", "M":
		return 26
	}

	return 27
}
