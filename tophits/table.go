package tophits

import (
	"sort"
	"strconv"

	"github.com/plinktools/gwaspost/assoc"
)

// tableStrategy is the preferred tier: full layout detection, delimiter
// sniffing, compressed input support, and the summary-statistics export.
type tableStrategy struct{}

func (tableStrategy) Name() string { return "table" }

func readWhole(path string) (*assoc.Table, error) {
	return assoc.ReadTableFile(path)
}

func (tableStrategy) Run(inputPath, outDir string, opts Options) (Report, error) {
	table, err := readWhole(inputPath)
	if err != nil {
		return Report{}, err
	}

	report := Report{RowsTotal: len(table.Records)}

	// Records with a parseable p-value, in input order.
	valid := make([]assoc.Record, 0, len(table.Records))
	for _, rec := range table.Records {
		if rec.HasP() {
			valid = append(valid, rec)
		}
	}
	report.RowsValid = len(valid)

	// Ranked copy; ties keep input order so reruns are byte-identical.
	ranked := make([]assoc.Record, len(valid))
	copy(ranked, valid)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].P < ranked[j].P
	})

	if err := writeDerived(outDir, Top100File, table.Header, rawRows(head(ranked, 100))); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, Top1000File, table.Header, rawRows(head(ranked, 1000))); err != nil {
		return report, err
	}

	// Threshold buckets are filtered from the valid set in input order, and
	// each bucket is complete on its own: genome-wide rows also appear in the
	// suggestive file.
	var genomeWide, suggestive [][]string
	for _, rec := range valid {
		if rec.P < opts.GenomeWideP {
			genomeWide = append(genomeWide, rec.Raw)
		}
		if rec.P < opts.SuggestiveP {
			suggestive = append(suggestive, rec.Raw)
		}
	}
	report.RowsSignificant = len(genomeWide)
	report.RowsSuggestive = len(suggestive)

	if err := writeDerived(outDir, GenomeWideFile, table.Header, genomeWide); err != nil {
		return report, err
	}
	if err := writeDerived(outDir, SuggestiveFile, table.Header, suggestive); err != nil {
		return report, err
	}

	if err := writeSummary(outDir, table, valid); err != nil {
		return report, err
	}

	return report, nil
}

// writeSummary exports the compact per-variant summary the reporting step
// consumes: identity columns plus P, with an odds ratio column whenever the
// table carries an effect estimate. Log-scale coefficients get the exact
// exponential transform.
func writeSummary(outDir string, table *assoc.Table, valid []assoc.Record) error {
	parser := assoc.NewWithLayout(table.Layout)

	withEffect := table.Layout.ColEffect >= 0

	header := []string{"CHR", "SNP", "BP", "A1", "P"}
	if withEffect {
		header = append(header, "OR")
	}

	rows := make([][]string, 0, len(valid))
	for _, rec := range valid {
		row := []string{
			orNA(rec.Chromosome),
			orNA(rec.SNP),
			positionString(rec),
			orNA(string(rec.EffectAllele)),
			rec.Raw[table.Layout.ColP],
		}

		if withEffect {
			if or, ok := parser.OddsRatio(rec); ok {
				row = append(row, strconv.FormatFloat(or, 'g', -1, 64))
			} else {
				row = append(row, assoc.MissingValue)
			}
		}

		rows = append(rows, row)
	}

	return writeDerived(outDir, SummaryFile, header, rows)
}

func head(records []assoc.Record, n int) []assoc.Record {
	if len(records) < n {
		return records
	}

	return records[:n]
}

func rawRows(records []assoc.Record) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Raw)
	}

	return out
}

func orNA(s string) string {
	if s == "" {
		return assoc.MissingValue
	}

	return s
}

func positionString(rec assoc.Record) string {
	if !rec.HasPosition() {
		return assoc.MissingValue
	}

	return strconv.Itoa(rec.Position)
}
