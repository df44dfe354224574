package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/plinktools/gwaspost"
	"github.com/plinktools/gwaspost/assoc"
	"github.com/plinktools/gwaspost/gwasplot"
)

// renderDiscoveredTables globs the association directory for result tables
// (the orchestrator may produce no-QC, with-QC, and N-principal-component
// variants with different names), renders a Manhattan and a Q-Q plot for
// each, and returns the per-table lambda records.
func renderDiscoveredTables(assocDir, plotsDir string, cfg gwaspost.Config) []lambdaRecord {
	files, err := filepath.Glob(filepath.Join(assocDir, cfg.AssocPattern))
	if err != nil {
		log.Println("Bad association glob pattern:", err)
		return nil
	}

	if len(files) == 0 {
		log.Printf("No association tables matched %s in %s; skipping per-table plots", cfg.AssocPattern, assocDir)
		return nil
	}

	// Deterministic processing order regardless of directory iteration.
	sort.Strings(files)

	labeler := gwasplot.NewLabeler(cfg.Labels)

	var lambdas []lambdaRecord

	for _, file := range files {
		label := labeler.Label(file)
		log.Printf("--- Processing %s (%s) ---", filepath.Base(file), label)

		table, err := assoc.ReadTableFile(file)
		if err != nil {
			log.Printf("Could not read %s: %v; skipping its plots", file, err)
			continue
		}

		logTopSNPs(table, 10)

		slug := gwasplot.Slug(label)

		manhattanOut := filepath.Join(plotsDir, fmt.Sprintf("manhattan_plot_%s.png", slug))
		if err := renderToFile(manhattanOut, func(f *os.File) error {
			return gwasplot.Manhattan(table, fmt.Sprintf("Manhattan Plot (%s)", label), cfg.GenomeWideP, cfg.SuggestiveP, f)
		}); err != nil {
			log.Printf("Error creating Manhattan plot for %s: %v", label, err)
		} else {
			log.Println("Manhattan plot saved to:", manhattanOut)
		}

		qqOut := filepath.Join(plotsDir, fmt.Sprintf("qq_plot_%s.png", slug))
		var lambda float64
		if err := renderToFile(qqOut, func(f *os.File) error {
			var qqErr error
			lambda, qqErr = gwasplot.QQ(pvalues(table), fmt.Sprintf("Q-Q Plot (%s)", label), f)
			return qqErr
		}); err != nil {
			log.Printf("Error creating Q-Q plot for %s: %v", label, err)
			continue
		}

		log.Printf("Q-Q plot saved to: %s (genomic inflation factor lambda = %.3f)", qqOut, lambda)
		lambdas = append(lambdas, lambdaRecord{
			Table:  filepath.Base(file),
			Label:  label,
			Lambda: lambda,
		})
	}

	return lambdas
}

func pvalues(table *assoc.Table) []float64 {
	out := make([]float64, 0, len(table.Records))
	for _, rec := range table.Records {
		if rec.HasP() {
			out = append(out, rec.P)
		}
	}

	return out
}

// logTopSNPs prints the strongest associations for quick eyeballing in the
// job log.
func logTopSNPs(table *assoc.Table, n int) {
	ranked := make([]assoc.Record, 0, len(table.Records))
	for _, rec := range table.Records {
		if rec.HasP() {
			ranked = append(ranked, rec)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].P < ranked[j].P
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	for _, rec := range ranked {
		log.Printf("  top hit: chr%s %s bp %d p=%g", rec.Chromosome, rec.SNP, rec.Position, rec.P)
	}
}

// renderToFile writes a plot through a temp-free create-then-render so a
// failed render leaves an obvious zero-byte artifact rather than a stale
// image from a previous run.
func renderToFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return render(f)
}
