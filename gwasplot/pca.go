package gwasplot

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// Sample holds one individual's principal-component projection.
type Sample struct {
	FID string
	IID string
	PCs []float64
}

// ReadEigenvec parses the principal-component projection table the genotype
// tool writes (FID IID PC1 PC2 ...). The file normally has no header, but a
// header row is tolerated and skipped.
func ReadEigenvec(r io.Reader) ([]Sample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var out []Sample

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		pcs := make([]float64, 0, len(fields)-2)
		bad := false
		for _, cell := range fields[2:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				bad = true
				break
			}
			pcs = append(pcs, v)
		}

		if bad {
			// Header row, or junk; either way not a sample.
			continue
		}

		out = append(out, Sample{FID: fields[0], IID: fields[1], PCs: pcs})
	}

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// PCA renders PC1 vs PC2 and PC2 vs PC3 as two panels of a single image.
func PCA(samples []Sample, w io.Writer) error {
	if len(samples) == 0 {
		return pfx.Err(fmt.Errorf("no samples to plot"))
	}

	panel1, err := pcPanel(samples, 0, 1)
	if err != nil {
		return err
	}

	panel2, err := pcPanel(samples, 1, 2)
	if err != nil {
		return err
	}

	return writePNG(w, sideBySide(panel1, panel2))
}

func pcPanel(samples []Sample, xPC, yPC int) (image.Image, error) {
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, sample := range samples {
		if len(sample.PCs) <= yPC {
			continue
		}
		xs = append(xs, sample.PCs[xPC])
		ys = append(ys, sample.PCs[yPC])
	}

	if len(xs) == 0 {
		return nil, pfx.Err(fmt.Errorf("no samples carry PC%d", yPC+1))
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("PC%d vs PC%d", xPC+1, yPC+1),
		Width:  700,
		Height: 600,
		DPI:    300,
		XAxis: chart.XAxis{
			Name: fmt.Sprintf("PC%d", xPC+1),
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("PC%d", yPC+1),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
				},
			},
		},
	}

	return renderPanel(graph)
}
