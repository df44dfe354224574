package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/plinktools/gwaspost"
	"github.com/plinktools/gwaspost/gwasplot"
)

// renderSharedQC renders the plots that are shared across analyses: the
// principal-component scatter and the missingness distributions. Each one
// degrades independently when its input is absent.
func renderSharedQC(qcDir, plotsDir string, cfg gwaspost.Config) {
	if path, ok := firstMatch(qcDir, "*.eigenvec"); ok {
		log.Println("--- Creating PCA plot ---")
		if err := renderPCA(path, filepath.Join(plotsDir, "pca_plot.png")); err != nil {
			log.Println("Error creating PCA plot:", err)
		}
	} else {
		log.Println("No .eigenvec file found; skipping the PCA plot")
	}

	lmiss, haveLmiss := firstMatch(qcDir, "*.lmiss")
	imiss, haveImiss := firstMatch(qcDir, "*.imiss")
	if haveLmiss && haveImiss {
		log.Println("--- Creating missingness plots ---")
		if err := renderMissingness(lmiss, imiss, filepath.Join(plotsDir, "missingness_plots.png"), cfg.MissingnessThreshold); err != nil {
			log.Println("Error creating missingness plots:", err)
		}
	} else {
		log.Println("Missingness reports not found; skipping the missingness plot")
	}
}

// firstMatch returns the lexically first file matching pattern under dir.
func firstMatch(dir, pattern string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(matches) == 0 {
		return "", false
	}

	return matches[0], true
}

func renderPCA(eigenvecPath, outPath string) error {
	rc, err := gwaspost.OpenMaybeCompressed(eigenvecPath)
	if err != nil {
		return err
	}
	defer rc.Close()

	samples, err := gwasplot.ReadEigenvec(rc)
	if err != nil {
		return err
	}

	if err := renderToFile(outPath, func(f *os.File) error {
		return gwasplot.PCA(samples, f)
	}); err != nil {
		return err
	}

	log.Println("PCA plot saved to:", outPath)

	return nil
}

func renderMissingness(lmissPath, imissPath, outPath string, threshold float64) error {
	variant, err := readMissingnessFile(lmissPath)
	if err != nil {
		return err
	}

	individual, err := readMissingnessFile(imissPath)
	if err != nil {
		return err
	}

	// A quick terminal histogram so cluster logs show the distribution
	// without anyone opening the image.
	log.Println("Per-variant missingness:")
	if err := histogram.Fprint(os.Stdout, histogram.Hist(10, variant), histogram.Linear(40)); err != nil {
		log.Println("Could not print the terminal histogram:", err)
	}

	if err := renderToFile(outPath, func(f *os.File) error {
		return gwasplot.Missingness(variant, individual, threshold, f)
	}); err != nil {
		return err
	}

	log.Println("Missingness plots saved to:", outPath)

	return nil
}

func readMissingnessFile(path string) ([]float64, error) {
	rc, err := gwaspost.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return gwasplot.ReadMissingness(rc)
}
