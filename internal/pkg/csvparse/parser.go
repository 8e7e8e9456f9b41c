// Package csvparse reads the loose CSV produced by published spreadsheets.
//
// It is deliberately more forgiving than encoding/csv: rows may have any number
// of fields, a stray quote never fails the parse, and every field is trimmed.
// Doubled quotes ("") are not un-escaped; each quote only toggles quoting.
package csvparse

import "strings"

// Parse splits text into rows of trimmed fields. Commas inside double quotes
// do not separate fields and the quote characters themselves are dropped.
func Parse(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, ParseLine(line))
	}
	return rows
}

// ParseLine splits a single line into trimmed fields
func ParseLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}
