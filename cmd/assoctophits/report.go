package main

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/plinktools/gwaspost/tophits"
)

const reportFile = "extraction_report.tsv"

func init() {
	// All of the pipeline's tabular artifacts are tab-delimited.
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})
}

// writeReport hands the orchestrator an explicit result record rather than
// counters buried in log text.
func writeReport(outDir string, report tophits.Report) error {
	f, err := os.Create(filepath.Join(outDir, reportFile))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	reports := []tophits.Report{report}

	return pfx.Err(gocsv.MarshalFile(&reports, f))
}
