package tophits

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// writeDerived writes header + rows as a tab-delimited file, clobbering any
// previous run's output. A nil header writes an empty file; a nil rows slice
// writes the header alone.
func writeDerived(outDir, name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(outDir, name))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if header != nil {
		if _, err := w.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
			return pfx.Err(err)
		}
	}

	for _, row := range rows {
		if _, err := w.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return pfx.Err(err)
		}
	}

	if err := w.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
