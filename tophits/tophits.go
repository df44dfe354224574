// Package tophits extracts ranked and threshold-filtered SNP lists from an
// association result table. It tries a priority-ordered list of strategies,
// falling back to progressively simpler implementations of the same
// table-in, four-files-out contract.
package tophits

import (
	"log"
	"os"

	"github.com/plinktools/gwaspost"
)

// Output filenames, written into the output directory and overwritten on
// every run.
const (
	Top100File     = "top_100_snps.txt"
	Top1000File    = "top_1000_snps.txt"
	GenomeWideFile = "genome_wide_significant_snps_5e-8.txt"
	SuggestiveFile = "suggestive_snps_1e-5.txt"
	SummaryFile    = "summary_statistics.txt"
)

// Options carries the significance thresholds. Both buckets are
// strictly-less-than comparisons.
type Options struct {
	GenomeWideP float64
	SuggestiveP float64
}

func DefaultOptions() Options {
	cfg := gwaspost.DefaultConfig()

	return Options{
		GenomeWideP: cfg.GenomeWideP,
		SuggestiveP: cfg.SuggestiveP,
	}
}

// Report is the per-invocation result record handed back to the orchestrator
// instead of process-wide counters.
type Report struct {
	Input           string `csv:"input"`
	Strategy        string `csv:"strategy"`
	RowsTotal       int    `csv:"rows_total"`
	RowsValid       int    `csv:"rows_valid"`
	RowsSignificant int    `csv:"rows_significant"`
	RowsSuggestive  int    `csv:"rows_suggestive"`
}

// Strategy is one implementation of the extraction contract. Run must either
// produce all of the derived files or return an error without claiming
// success; the caller moves on to the next tier on error.
type Strategy interface {
	Name() string
	Run(inputPath, outDir string, opts Options) (Report, error)
}

// DefaultStrategies is the priority-ordered capability list: the full table
// engine (delimiter sniffing, compressed inputs, layout detection), then a
// streaming sort-and-head over plain lines, then a degraded copy of the first
// N usable rows.
func DefaultStrategies() []Strategy {
	return []Strategy{
		tableStrategy{},
		streamStrategy{},
		headStrategy{},
	}
}

// Extract produces the four derived files (plus summary statistics when the
// richest strategy succeeds) for inputPath under outDir. A missing or empty
// input is not an error: the outputs are written headers-only and the report
// carries zero counts.
func Extract(inputPath, outDir string, opts Options) (Report, error) {
	if empty, err := inputMissingOrEmpty(inputPath); err != nil {
		return Report{}, err
	} else if empty {
		log.Printf("%s is missing or empty; emitting empty outputs", inputPath)

		if err := writeEmptyOutputs(inputPath, outDir); err != nil {
			return Report{}, err
		}

		return Report{Input: inputPath, Strategy: "empty-input"}, nil
	}

	var lastErr error
	for _, strategy := range DefaultStrategies() {
		report, err := strategy.Run(inputPath, outDir, opts)
		if err == nil {
			report.Input = inputPath
			report.Strategy = strategy.Name()
			return report, nil
		}

		lastErr = err
		log.Printf("strategy %s failed (%v); trying next tier", strategy.Name(), err)
	}

	return Report{}, lastErr
}

func inputMissingOrEmpty(path string) (bool, error) {
	expanded, err := gwaspost.ExpandHome(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(expanded)
	if os.IsNotExist(err) {
		return true, nil
	} else if err != nil {
		return false, err
	}

	return info.Size() == 0, nil
}

// writeEmptyOutputs emits the four derived files with a header when one can
// be read and nothing at all otherwise, so downstream globs always find the
// expected filenames.
func writeEmptyOutputs(inputPath, outDir string) error {
	var header []string

	if table, err := readWhole(inputPath); err == nil && table != nil {
		header = table.Header
	}

	for _, name := range []string{Top100File, Top1000File, GenomeWideFile, SuggestiveFile} {
		if err := writeDerived(outDir, name, header, nil); err != nil {
			return err
		}
	}

	return nil
}
