package gwaspost

import (
	"github.com/BurntSushi/toml"
	"github.com/carbocation/pfx"
)

// Config carries the small set of tunables shared by the post-processing
// tools. Every field has a default, so the tools run with no config file at
// all; a TOML file can override thresholds or the file-discovery rules when an
// orchestrator names its outputs differently.
type Config struct {
	// GenomeWideP is the genome-wide significance threshold.
	GenomeWideP float64 `toml:"genome_wide_p"`

	// SuggestiveP is the suggestive significance threshold.
	SuggestiveP float64 `toml:"suggestive_p"`

	// MissingnessThreshold is the per-variant and per-individual call-rate
	// cutoff used during QC; the missingness plots mark it.
	MissingnessThreshold float64 `toml:"missingness_threshold"`

	// AssocPattern is the glob used to discover association result tables.
	AssocPattern string `toml:"assoc_pattern"`

	// Labels maps filename substrings to human-readable analysis labels for
	// plot titles. Rules are evaluated in order; the first match wins.
	Labels []LabelRule `toml:"labels"`
}

type LabelRule struct {
	Contains string `toml:"contains"`
	Label    string `toml:"label"`
}

// DefaultConfig returns the thresholds and discovery rules used by the
// standard pipeline.
func DefaultConfig() Config {
	return Config{
		GenomeWideP:          5e-8,
		SuggestiveP:          1e-5,
		MissingnessThreshold: 0.02,
		AssocPattern:         "*.assoc*",
		Labels: []LabelRule{
			{Contains: "noQC", Label: "No QC"},
			{Contains: "withQC", Label: "With QC"},
			{Contains: "3PC", Label: "3 Principal Components"},
			{Contains: "5PC", Label: "5 Principal Components"},
			{Contains: "10PC", Label: "10 Principal Components"},
		},
	}
}

// LoadConfig overlays the TOML file at path onto the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return cfg, err
	}

	if _, err := toml.DecodeFile(expanded, &cfg); err != nil {
		return cfg, pfx.Err(err)
	}

	return cfg, nil
}
