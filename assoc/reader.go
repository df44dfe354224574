package assoc

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/plinktools/gwaspost"
)

// Table is a fully parsed association result table.
type Table struct {
	// Header holds the original column names in input order.
	Header []string

	// LayoutName is the detected format, or "" for the generic fallback.
	LayoutName string

	Layout Layout

	// Records are the parsed rows, in input order, already filtered down to
	// the primary effect rows for regression tables.
	Records []Record
}

// ReadTable parses a whitespace-delimited association table. The table is
// read whole; these files top out in the low millions of rows, well within
// memory for the machines this runs on.
func ReadTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	out := &Table{}
	var parser *Parser

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if out.Header == nil {
			out.Header = fields
			out.LayoutName, out.Layout = DetectLayout(fields)
			parser = NewWithLayout(out.Layout)
			continue
		}

		if !parser.Keep(fields) {
			continue
		}

		rec, err := parser.ParseRow(fields)
		if err != nil {
			// Misshapen row; skip it rather than aborting the table.
			continue
		}

		out.Records = append(out.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// ReadDelimitedTable parses a table whose fields are separated by a single
// rune (comma- or tab-separated exports of the same results) rather than by
// runs of whitespace.
func ReadDelimitedTable(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	out := &Table{}
	var parser *Parser

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		if out.Header == nil {
			out.Header = fields
			out.LayoutName, out.Layout = DetectLayout(fields)
			parser = NewWithLayout(out.Layout)
			continue
		}

		if !parser.Keep(fields) {
			continue
		}

		rec, err := parser.ParseRow(fields)
		if err != nil {
			continue
		}

		out.Records = append(out.Records, rec)
	}

	return out, nil
}

// ReadTableFile opens path (decompressing if needed), sniffs the delimiter,
// and parses the table. PLINK's own whitespace-run layout and single-rune
// comma/tab exports are both accepted.
func ReadTableFile(path string) (*Table, error) {
	expanded, err := gwaspost.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	rc, err := gwaspost.OpenMaybeCompressed(expanded)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if delim := gwaspost.DetermineDelimiter(bytes.NewReader(data)); delim == ',' {
		return ReadDelimitedTable(bytes.NewReader(data), delim)
	}

	return ReadTable(bytes.NewReader(data))
}
