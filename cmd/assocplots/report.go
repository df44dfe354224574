package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

const inflationReportFile = "inflation_report.tsv"

// lambdaRecord is the per-table genomic inflation factor handed back to the
// orchestrator for its report.
type lambdaRecord struct {
	Table  string  `csv:"table"`
	Label  string  `csv:"label"`
	Lambda float64 `csv:"lambda"`
}

func init() {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})
}

func writeInflationReport(plotsDir string, lambdas []lambdaRecord) error {
	path := filepath.Join(plotsDir, inflationReportFile)

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&lambdas, f); err != nil {
		return pfx.Err(err)
	}

	log.Println("Inflation report saved to:", path)

	return nil
}
