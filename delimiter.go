package gwaspost

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. PLINK writes its tables
// as runs of whitespace rather than a single delimiter, so callers should
// treat a space result as "tokenize on whitespace" rather than configuring a
// csv.Reader with a space comma.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ' '
}
