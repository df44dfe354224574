package gwaspost

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectDataTypeGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("CHR SNP BP\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	dt, err := DetectDataType(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeGzip {
		t.Errorf("Detected %v, expected gzip", dt)
	}
}

func TestDetectDataTypePlain(t *testing.T) {
	dt, err := DetectDataType(strings.NewReader("CHR SNP BP\n"))
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeNoCompression {
		t.Errorf("Detected %v, expected no compression", dt)
	}
}

func TestOpenMaybeCompressed(t *testing.T) {
	const contents = "CHR SNP BP A1 P\n1 rs1 1000 A 0.5\n"

	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.assoc")
	if err := os.WriteFile(plain, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	gzipped := filepath.Join(dir, "gzipped.assoc.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(contents))
	zw.Close()
	if err := os.WriteFile(gzipped, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{plain, gzipped} {
		rc, err := OpenMaybeCompressed(path)
		if err != nil {
			t.Fatal(err)
		}

		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != contents {
			t.Errorf("%s read back %q", path, got)
		}
	}
}

func TestOpenMaybeCompressedEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.assoc")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := OpenMaybeCompressed(path)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Empty file read back %d bytes", len(got))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GenomeWideP != 5e-8 || cfg.SuggestiveP != 1e-5 {
		t.Errorf("Default thresholds wrong: %+v", cfg)
	}
	if cfg.MissingnessThreshold != 0.02 {
		t.Errorf("Default missingness threshold %v", cfg.MissingnessThreshold)
	}
	if len(cfg.Labels) == 0 {
		t.Error("Expected default label rules")
	}
}

func TestLoadConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gwaspost.toml")
	override := `genome_wide_p = 1e-9
assoc_pattern = "*.results"

[[labels]]
contains = "fancy"
label = "Fancy Model"
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.GenomeWideP != 1e-9 {
		t.Errorf("Override not applied: %v", cfg.GenomeWideP)
	}
	if cfg.AssocPattern != "*.results" {
		t.Errorf("Pattern override not applied: %v", cfg.AssocPattern)
	}
	// Untouched fields keep their defaults.
	if cfg.SuggestiveP != 1e-5 {
		t.Errorf("Suggestive threshold clobbered: %v", cfg.SuggestiveP)
	}
	if len(cfg.Labels) != 1 || cfg.Labels[0].Label != "Fancy Model" {
		t.Errorf("Label rules: %+v", cfg.Labels)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("~/x/y")
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(got, "~") || !strings.HasSuffix(got, filepath.Join("x", "y")) {
		t.Errorf("ExpandHome gave %q", got)
	}

	got, err = ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("Absolute path changed: %q, %v", got, err)
	}
}

func TestDetermineDelimiter(t *testing.T) {
	if d := DetermineDelimiter(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n")); d != ',' {
		t.Errorf("Comma table detected as %q", d)
	}
}
