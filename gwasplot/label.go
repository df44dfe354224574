// Package gwasplot renders the diagnostic plot families for GWAS results:
// Manhattan, Q-Q, principal components, and missingness distributions.
package gwasplot

import (
	"path/filepath"
	"strings"

	"github.com/plinktools/gwaspost"
)

// Labeler turns discovered result filenames into human-readable analysis
// labels for plot titles. The rule list is fixed at construction; matching is
// first-substring-wins rather than ad hoc string checks at render time.
type Labeler struct {
	rules []gwaspost.LabelRule
}

func NewLabeler(rules []gwaspost.LabelRule) *Labeler {
	return &Labeler{rules: rules}
}

// Label returns the semantic label for a result file. Files matching no rule
// fall back to their base name with the table extensions removed.
func (l *Labeler) Label(path string) string {
	base := filepath.Base(path)

	for _, rule := range l.rules {
		if strings.Contains(base, rule.Contains) {
			return rule.Label
		}
	}

	for _, ext := range []string{".gz", ".logistic", ".linear", ".assoc", ".qassoc"} {
		base = strings.TrimSuffix(base, ext)
	}

	return base
}

// Slug converts a label into a filename fragment: lowercased, spaces to
// underscores.
func Slug(label string) string {
	return strings.ToLower(strings.ReplaceAll(label, " ", "_"))
}
