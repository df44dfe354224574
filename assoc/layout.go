package assoc

import "strings"

// Layout describes where the logical columns live in one of the association
// table formats the genotype tool emits. Column indices are zero-based; -1
// marks a column the format does not carry.
type Layout struct {
	ColChromosome   int
	ColSNP          int
	ColPosition     int
	ColEffectAllele int
	ColOtherAllele  int
	ColEffect       int
	// EffectIsLog is true when the effect column is a regression coefficient
	// (log odds) rather than an odds ratio.
	EffectIsLog bool
	ColP        int
	// ColTest and KeepTest filter regression tables down to the primary
	// effect row: regression output repeats each variant once per tested
	// term (ADD, covariates, interactions).
	ColTest  int
	KeepTest string
}

var Layouts = map[string]Layout{
	// CHR SNP BP A1 F_A F_U A2 CHISQ P OR
	"ASSOC": {
		ColChromosome:   0,
		ColSNP:          1,
		ColPosition:     2,
		ColEffectAllele: 3,
		ColOtherAllele:  6,
		ColEffect:       9,
		ColP:            8,
		ColTest:         -1,
	},
	// CHR SNP BP A1 TEST NMISS OR SE L95 U95 STAT P
	"LOGISTIC": {
		ColChromosome:   0,
		ColSNP:          1,
		ColPosition:     2,
		ColEffectAllele: 3,
		ColOtherAllele:  -1,
		ColEffect:       6,
		ColP:            -1, // resolved against the header; PLINK varies the CI columns
		ColTest:         4,
		KeepTest:        "ADD",
	},
	// CHR SNP BP A1 TEST NMISS BETA SE L95 U95 STAT P
	"LINEAR": {
		ColChromosome:   0,
		ColSNP:          1,
		ColPosition:     2,
		ColEffectAllele: 3,
		ColOtherAllele:  -1,
		ColEffect:       6,
		EffectIsLog:     true,
		ColP:            -1,
		ColTest:         4,
		KeepTest:        "ADD",
	},
	// CHR SNP BP NMISS BETA SE R2 T P. The quantitative-trait coefficient
	// is not a log odds, so it gets no odds-ratio export.
	"QASSOC": {
		ColChromosome:   0,
		ColSNP:          1,
		ColPosition:     2,
		ColEffectAllele: -1,
		ColOtherAllele:  -1,
		ColEffect:       -1,
		ColP:            8,
		ColTest:         -1,
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}

// DetectLayout chooses a layout from a header row and resolves any
// header-dependent columns. When the header matches none of the known
// formats, it falls back to a minimal layout whose p-value column is the "P"
// header entry if present, or column 9 otherwise, matching the established
// pipeline convention.
func DetectLayout(header []string) (string, Layout) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	name := layoutNameFor(cols)
	layout, known := Layouts[name]
	if !known {
		layout = fallbackLayout(cols, len(header))
	}

	if layout.ColP < 0 {
		if pCol, ok := cols["P"]; ok {
			layout.ColP = pCol
		} else {
			layout.ColP = 8
		}
	}

	return name, layout
}

func layoutNameFor(cols map[string]int) string {
	_, hasTest := cols["TEST"]
	_, hasOR := cols["OR"]
	_, hasBeta := cols["BETA"]
	_, hasCaseFreq := cols["F_A"]

	switch {
	case hasTest && hasOR:
		return "LOGISTIC"
	case hasTest:
		return "LINEAR"
	case hasCaseFreq:
		return "ASSOC"
	case hasBeta && !hasTest:
		return "QASSOC"
	}

	return ""
}

func fallbackLayout(cols map[string]int, width int) Layout {
	layout := Layout{
		ColChromosome:   -1,
		ColSNP:          -1,
		ColPosition:     -1,
		ColEffectAllele: -1,
		ColOtherAllele:  -1,
		ColEffect:       -1,
		ColP:            -1,
		ColTest:         -1,
	}

	for header, col := range map[string]*int{
		"CHR": &layout.ColChromosome,
		"SNP": &layout.ColSNP,
		"BP":  &layout.ColPosition,
		"A1":  &layout.ColEffectAllele,
		"A2":  &layout.ColOtherAllele,
		"P":   &layout.ColP,
	} {
		if i, ok := cols[header]; ok {
			*col = i
		}
	}

	return layout
}
