package parser

import (
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// ReadAdditionalInfo collects the free-form rows between the tail
// totals block and the executor region: rows with a label in the
// first column, valued at the contractor's start column. The block is
// sheet-global, like the totals block. No totals block or no labeled
// rows means an empty result.
func ReadAdditionalInfo(s sheet.Sheet, geo sheet.Geometry, slot Slot, p SummaryParams) map[string]any {
	info := make(map[string]any)

	start, ok := summaryStartRow(s, geo, p.StartRow)
	if !ok {
		return info
	}
	row := summaryEndRow(s, start)

	// The executor block occupies the last handful of rows; stop
	// before it.
	limit := s.MaxRow() - 6
	for ; row <= limit; row++ {
		label := strings.TrimSpace(s.Value(row, colNumber))
		if label == "" {
			continue
		}
		info[label] = parseValue(s.Value(row, slot.Col))
	}
	return info
}
