package assoc

import "math"

// Allele is an allele label: a single base, or a longer string for indels.
type Allele string

// MissingValue is the sentinel PLINK and its relatives emit for a cell with no
// value. It must never reach a numeric parser.
const MissingValue = "NA"

// Record is one row of an association result table. Raw preserves the
// original fields so pass-through outputs keep the input's column layout
// byte-for-byte.
type Record struct {
	Chromosome   string
	SNP          string
	Position     int // -1 when missing or unparseable
	EffectAllele Allele
	OtherAllele  Allele
	Effect       float64 // odds ratio or regression coefficient; NaN when absent
	P            float64 // NaN when the cell was NA or unparseable
	Raw          []string
}

func (r Record) HasP() bool {
	return !math.IsNaN(r.P)
}

func (r Record) HasEffect() bool {
	return !math.IsNaN(r.Effect)
}

func (r Record) HasPosition() bool {
	return r.Position >= 0
}
