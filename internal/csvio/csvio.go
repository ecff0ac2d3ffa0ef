package csvio

import (
	"fmt"
	"strings"
)

// Table is the tokenized form of a CSV payload. Header is row 0 of the source;
// Rows holds every data row whose field count matches the header. Fields are
// never trimmed here; whitespace handling belongs to the normalizer.
type Table struct {
	Header   []string
	Rows     [][]string
	Skipped  int
	Warnings []string
}

// DetectDelimiter inspects the first two lines and counts unquoted commas and
// semicolons. Semicolon wins only when it strictly outnumbers the comma.
func DetectDelimiter(text string) rune {
	lines := splitLines(text)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	var commas, semis int
	for _, line := range lines {
		inQuotes := false
		for _, ch := range line {
			switch {
			case ch == '"':
				inQuotes = !inQuotes
			case inQuotes:
			case ch == ',':
				commas++
			case ch == ';':
				semis++
			}
		}
	}
	if semis > commas {
		return ';'
	}
	return ','
}

// SplitLine parses a single CSV line into fields using a quote-aware scanner.
// A doubled quote inside a quoted field decodes to a literal quote.
func SplitLine(line string, delim rune) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteRune(ch)
			}
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
		case delim:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	out = append(out, cur.String())
	return out
}

// Tokenize splits raw CSV text into a header and data rows. A leading BOM is
// stripped and all line endings are normalized before splitting. Blank lines
// are skipped; rows whose field count disagrees with the header are dropped
// with a warning rather than aborting the parse. Pass delim 0 to auto-detect.
func Tokenize(text string, delim rune) Table {
	text = strings.TrimPrefix(text, "\uFEFF")
	if delim == 0 {
		delim = DetectDelimiter(text)
	}
	var t Table
	lineNo := 0
	for _, line := range splitLines(text) {
		lineNo++
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitLine(line, delim)
		if t.Header == nil {
			t.Header = fields
			continue
		}
		if len(fields) != len(t.Header) {
			t.Skipped++
			t.Warnings = append(t.Warnings,
				fmt.Sprintf("line %d: %d fields, header has %d", lineNo, len(fields), len(t.Header)))
			continue
		}
		t.Rows = append(t.Rows, fields)
	}
	return t
}

// Zip pairs a tokenized row with the header, producing the column-name to
// value mapping the normalizer consumes.
func (t Table) Zip(row []string) map[string]string {
	m := make(map[string]string, len(t.Header))
	for i, h := range t.Header {
		if i < len(row) {
			m[h] = row[i]
		}
	}
	return m
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
