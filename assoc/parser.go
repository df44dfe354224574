package assoc

import (
	"fmt"
	"math"
	"strconv"
)

// Parser applies a Layout to whitespace-split rows.
type Parser struct {
	Layout Layout
}

func New(layout string) (*Parser, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return NewWithLayout(l), nil
}

func NewWithLayout(layout Layout) *Parser {
	return &Parser{Layout: layout}
}

// Keep reports whether this row belongs in the analysis at all. Regression
// tables repeat each variant once per tested term; only the primary effect
// row counts.
func (p *Parser) Keep(row []string) bool {
	if p.Layout.ColTest < 0 || p.Layout.ColTest >= len(row) {
		return true
	}

	return row[p.Layout.ColTest] == p.Layout.KeepTest
}

// ParseRow converts one row into a Record. It returns an error only when the
// row is too short for the layout; a cell that fails numeric parsing yields
// the field's missing sentinel instead, so one bad cell excludes the record
// from numeric outputs without aborting the run.
func (p *Parser) ParseRow(row []string) (Record, error) {
	rec := Record{
		Position: -1,
		Effect:   math.NaN(),
		P:        math.NaN(),
	}

	if p.Layout.ColP >= len(row) {
		return rec, fmt.Errorf("row has %d columns but the p-value lives in column %d", len(row), p.Layout.ColP+1)
	}

	rec.Raw = append(rec.Raw, row...)

	if c := p.Layout.ColChromosome; c >= 0 && c < len(row) {
		rec.Chromosome = row[c]
	}
	if c := p.Layout.ColSNP; c >= 0 && c < len(row) {
		rec.SNP = row[c]
	}
	if c := p.Layout.ColEffectAllele; c >= 0 && c < len(row) {
		rec.EffectAllele = Allele(row[c])
	}
	if c := p.Layout.ColOtherAllele; c >= 0 && c < len(row) {
		rec.OtherAllele = Allele(row[c])
	}

	if c := p.Layout.ColPosition; c >= 0 && c < len(row) {
		if pos, err := strconv.Atoi(row[c]); err == nil && pos >= 0 {
			rec.Position = pos
		}
	}

	if c := p.Layout.ColEffect; c >= 0 && c < len(row) && row[c] != MissingValue {
		if eff, err := strconv.ParseFloat(row[c], 64); err == nil {
			rec.Effect = eff
		}
	}

	if pv, ok := ParseP(row[p.Layout.ColP]); ok {
		rec.P = pv
	}

	return rec, nil
}

// ParseP parses a p-value cell. The sentinel, non-numeric junk, and values
// outside [0,1] all come back as not-ok; they are excluded from ranking, not
// errors.
func ParseP(cell string) (float64, bool) {
	if cell == MissingValue {
		return math.NaN(), false
	}

	pv, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(pv) || math.IsInf(pv, 0) || pv < 0 || pv > 1 {
		return math.NaN(), false
	}

	return pv, true
}

// OddsRatio reports the record's effect as an odds ratio. Regression tables
// carry a log-scale coefficient, which gets the exact exponential transform.
func (p *Parser) OddsRatio(rec Record) (float64, bool) {
	if !rec.HasEffect() {
		return 0, false
	}

	if p.Layout.EffectIsLog {
		return math.Exp(rec.Effect), true
	}

	return rec.Effect, true
}
