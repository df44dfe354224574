package tophits

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/plinktools/gwaspost/assoc"
)

// headStrategy is the last-resort tier: no ranking at all, just a copy of the
// first usable rows in file order. The threshold files come back headers-only
// and the report carries no significance counts.
type headStrategy struct{}

func (headStrategy) Name() string { return "head" }

func (headStrategy) Run(inputPath, outDir string, opts Options) (Report, error) {
	log.Println("degraded mode: top-SNP files are unranked head copies")

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
	var kept [][]string

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

		// Regression covariate rows are excluded even in degraded mode.
		if layout.ColTest >= 0 && layout.ColTest < len(fields) && fields[layout.ColTest] != layout.KeepTest {
			continue
		}

		report.RowsTotal++

		// Sentinel and unparseable p-values stay excluded even in degraded
		// mode.
		if layout.ColP >= len(fields) {
			continue
		}
		if _, ok := assoc.ParseP(fields[layout.ColP]); !ok {
			continue
		}

		report.RowsValid++
		if len(kept) < 1000 {
			kept = append(kept, fields)
		}
	}

	if err := scanner.Err(); err != nil {
		return report, pfx.Err(err)
	}

	top100 := kept
	if len(top100) > 100 {
		top100 = top100[:100]
	}

	if err := writeDerived(outDir, Top100File, header, top100); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, Top1000File, header, kept); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, GenomeWideFile, header, nil); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, SuggestiveFile, header, nil); err != nil {
		return report, err
	}

	return report, nil
}
