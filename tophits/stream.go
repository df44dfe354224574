package tophits

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/plinktools/gwaspost/assoc"
)

// streamStrategy is the dependency-light tier: a plain line scan with the
// p-value pulled out by column index, equivalent to a shell sort-and-head. It
// performs no delimiter sniffing and cannot read compressed inputs.
type streamStrategy struct{}

func (streamStrategy) Name() string { return "stream" }

type rankedLine struct {
	p      float64
	fields []string
}

func (streamStrategy) Run(inputPath, outDir string, opts Options) (Report, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return Report{}, pfx.Err(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	report := Report{}

	var header []string
	var layout assoc.Layout
	var valid []rankedLine

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if header == nil {
			header = fields
			_, layout = assoc.DetectLayout(fields)
			continue
		}

		if layout.ColTest >= 0 && layout.ColTest < len(fields) && fields[layout.ColTest] != layout.KeepTest {
			continue
		}
		if layout.ColP >= len(fields) {
			continue
		}

		report.RowsTotal++

		if pv, ok := assoc.ParseP(fields[layout.ColP]); ok {
			valid = append(valid, rankedLine{p: pv, fields: fields})
		}
	}

	if err := scanner.Err(); err != nil {
		return report, pfx.Err(err)
	}

	report.RowsValid = len(valid)

	ranked := make([]rankedLine, len(valid))
	copy(ranked, valid)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].p < ranked[j].p
	})

	if err := writeDerived(outDir, Top100File, header, lineRows(ranked, 100)); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, Top1000File, header, lineRows(ranked, 1000)); err != nil {
		return report, err
	}

	var genomeWide, suggestive [][]string
	for _, rl := range valid {
		if rl.p < opts.GenomeWideP {
			genomeWide = append(genomeWide, rl.fields)
		}
		if rl.p < opts.SuggestiveP {
			suggestive = append(suggestive, rl.fields)
		}
	}
	report.RowsSignificant = len(genomeWide)
	report.RowsSuggestive = len(suggestive)

	if err := writeDerived(outDir, GenomeWideFile, header, genomeWide); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, SuggestiveFile, header, suggestive); err != nil {
		return report, err
	}

	return report, nil
}

func lineRows(ranked []rankedLine, n int) [][]string {
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([][]string, 0, len(ranked))
	for _, rl := range ranked {
		out = append(out, rl.fields)
	}

	return out
}
