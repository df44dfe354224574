// assoctophits consumes an association result table and writes the four
// derived SNP lists (top-100, top-1000, genome-wide significant, suggestive)
// plus a compact summary-statistics export into an output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/plinktools/gwaspost"
	_ "github.com/plinktools/gwaspost/compileinfoprint"
	"github.com/plinktools/gwaspost/tophits"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config", "", "Optional TOML config file overriding the significance thresholds.")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: assoctophits [flags] <input_assoc_file> <output_directory>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), configPath); err != nil {
		log.Fatalln(err)
	}

	log.Println("assoctophits completed")
}

func run(input, outDir, configPath string) error {
	cfg, err := gwaspost.LoadConfig(configPath)
	if err != nil {
		return err
	}

	outDir, err = gwaspost.ExpandHome(outDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	log.Println("Reading association file:", input)

	report, err := tophits.Extract(input, outDir, tophits.Options{
		GenomeWideP: cfg.GenomeWideP,
		SuggestiveP: cfg.SuggestiveP,
	})
	if err != nil {
		return err
	}

	log.Println("Total rows:", report.RowsTotal)
	log.Println("Rows with valid p-values:", report.RowsValid)
	log.Printf("Genome-wide significant (p<%g): %d", cfg.GenomeWideP, report.RowsSignificant)
	log.Printf("Suggestive (p<%g): %d", cfg.SuggestiveP, report.RowsSuggestive)

	return writeReport(outDir, report)
}
