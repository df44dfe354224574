// assocplots discovers association result tables and QC by-products, then
// renders Manhattan, Q-Q, principal-component, and missingness plots as
// print-resolution PNGs. A missing input degrades only its own plot.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/plinktools/gwaspost"
	_ "github.com/plinktools/gwaspost/compileinfoprint"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config", "", "Optional TOML config file overriding thresholds, discovery patterns, and labels.")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: assocplots [flags] <assoc_directory> <qc_directory> <plots_directory>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), configPath); err != nil {
		log.Fatalln(err)
	}

	log.Println("assocplots completed")
}

func run(assocDir, qcDir, plotsDir, configPath string) error {
	cfg, err := gwaspost.LoadConfig(configPath)
	if err != nil {
		return err
	}

	assocDir, err = gwaspost.ExpandHome(assocDir)
	if err != nil {
		return err
	}
	qcDir, err = gwaspost.ExpandHome(qcDir)
	if err != nil {
		return err
	}
	plotsDir, err = gwaspost.ExpandHome(plotsDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(plotsDir, 0755); err != nil {
		return err
	}

	// Per-table plots. Every failure from here on degrades one plot and is
	// logged; the run itself keeps going.
	lambdas := renderDiscoveredTables(assocDir, plotsDir, cfg)

	renderSharedQC(qcDir, plotsDir, cfg)

	if len(lambdas) > 0 {
		if err := writeInflationReport(plotsDir, lambdas); err != nil {
			log.Println("Could not write the inflation report:", err)
		}
	}

	log.Println("All plots saved to:", plotsDir)

	return nil
}
