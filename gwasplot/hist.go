package gwasplot

import (
	"github.com/carbocation/pfx"
	hist2 "github.com/grd/histogram"
)

// binCounts buckets values into equal-width bins over [0, hi], where hi is
// the largest observed value or atLeast, whichever is greater (so a threshold
// marker always lands inside the plotted range). It returns bin centers and
// counts.
func binCounts(values []float64, bins int, atLeast float64) (centers, counts []float64, err error) {
	hi := atLeast
	for _, v := range values {
		if v > hi {
			hi = v
		}
	}
	if hi <= 0 {
		hi = 1
	}

	// Histogram bins are half-open; nudge the top edge up so the maximum
	// observed value falls inside the final bin rather than past it.
	width := hi * (1 + 1e-9) / float64(bins)

	hg, err := hist2.NewHistogram(hist2.Range(0, uint(bins), width))
	if err != nil {
		return nil, nil, pfx.Err(err)
	}

	for _, v := range values {
		if v < 0 || v > hi {
			continue
		}
		hg.Add(v)
	}

	centers = make([]float64, bins)
	counts = make([]float64, bins)
	for i := range centers {
		centers[i] = width * (float64(i) + 0.5)
		counts[i] = float64(hg.Get(i))
	}

	return centers, counts, nil
}
