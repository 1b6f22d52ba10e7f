// Package parser implements the spreadsheet-to-document extraction
// passes: layout detection, lot segmentation, the row classification
// state machine, and the tail summary block.
package parser

import (
	"strconv"
	"strings"
)

// parseValue converts raw cell text into the value stored on a record:
// int64 for integers, float64 for decimals, nil for empty cells, the
// trimmed string otherwise.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// rawValue keeps cell text as a trimmed string, nil for empty cells.
// Used for code-like columns ("1.10" must not collapse to 1.1).
func rawValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// hasFoldedPrefix reports whether the trimmed, case-folded cell text
// starts with the marker phrase.
func hasFoldedPrefix(cell, marker string) bool {
	return strings.HasPrefix(
		strings.ToLower(strings.TrimSpace(cell)),
		strings.ToLower(marker),
	)
}
