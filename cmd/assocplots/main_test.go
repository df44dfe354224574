package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeQCFixtures(t *testing.T, qcDir string) {
	t.Helper()

	eigenvec := `fam1 ind1 0.01 0.02 0.03
fam2 ind2 -0.02 0.01 0.00
fam3 ind3 0.03 -0.01 0.02
fam4 ind4 0.00 0.03 -0.02
`
	lmiss := `CHR SNP N_MISS N_GENO F_MISS
1 rs1 2 100 0.02
1 rs2 5 100 0.05
2 rs3 1 100 0.01
`
	imiss := `FID IID MISS_PHENO N_MISS N_GENO F_MISS
fam1 ind1 N 3 300 0.01
fam2 ind2 N 9 300 0.03
`

	for name, contents := range map[string]string{
		"study.eigenvec": eigenvec,
		"study.lmiss":    lmiss,
		"study.imiss":    imiss,
	} {
		if err := os.WriteFile(filepath.Join(qcDir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("%s: %v", filepath.Base(path), err)
	}
	magic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if len(b) < 8 || !bytes.Equal(b[:8], magic) {
		t.Errorf("%s is not a PNG", filepath.Base(path))
	}
}

// An analysis can finish without producing any association tables (every
// model failed upstream). The shared QC plots still render.
func TestRunEmptyAssocDirStillRendersQC(t *testing.T) {
	assocDir := t.TempDir()
	qcDir := t.TempDir()
	plotsDir := filepath.Join(t.TempDir(), "plots")

	writeQCFixtures(t, qcDir)

	if err := run(assocDir, qcDir, plotsDir, ""); err != nil {
		t.Fatal(err)
	}

	assertPNG(t, filepath.Join(plotsDir, "pca_plot.png"))
	assertPNG(t, filepath.Join(plotsDir, "missingness_plots.png"))

	for _, pattern := range []string{"manhattan_plot_*.png", "qq_plot_*.png", inflationReportFile} {
		matches, err := filepath.Glob(filepath.Join(plotsDir, pattern))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 0 {
			t.Errorf("With no association tables, %s should not exist: %v", pattern, matches)
		}
	}
}
