package parser

import (
	"fmt"
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// SummaryParams configures the tail totals block scan and its keyword
// classification. The keyword rules are phrasing-specific heuristics;
// unrecognized rows keep the generic "merged_<row>" key rather than
// being forced into a canonical bucket.
type SummaryParams struct {
	// StartRow is where the scan for the block begins.
	StartRow int `mapstructure:"start_row" yaml:"start_row"`
	// TotalWord and VATWord classify "total incl. VAT" vs "VAT" rows:
	// both words -> total_cost_vat, VATWord alone (or VATPhrase) -> vat.
	TotalWord string `mapstructure:"total_word" yaml:"total_word"`
	VATWord   string `mapstructure:"vat_word" yaml:"vat_word"`
	VATPhrase string `mapstructure:"vat_phrase" yaml:"vat_phrase"`
	// DeviationPhrase and InitialCostPhrase mark the remaining
	// canonical rows.
	DeviationPhrase   string `mapstructure:"deviation_phrase" yaml:"deviation_phrase"`
	InitialCostPhrase string `mapstructure:"initial_cost_phrase" yaml:"initial_cost_phrase"`
}

// DefaultSummaryParams matches the source convention (Russian tender
// phrasing).
func DefaultSummaryParams() SummaryParams {
	return SummaryParams{
		StartRow:          13,
		TotalWord:         "итого",
		VATWord:           "ндс",
		VATPhrase:         "в том числе ндс",
		DeviationPhrase:   "отклонение от расчетной стоимости",
		InitialCostPhrase: "первоначальная стоимость",
	}
}

// ExtractSummary reads the sheet-tail totals block for one contractor
// slot. The block opens at the first row (from p.StartRow on) whose
// first cell is merged and runs until the first fully empty row. The
// block is sheet-global: every lot shares it. No merged first cell
// anywhere means no totals block: an empty result, not an error.
func ExtractSummary(s sheet.Sheet, geo sheet.Geometry, slot Slot, p SummaryParams) map[string]models.Record {
	summary := make(map[string]models.Record)

	start, ok := summaryStartRow(s, geo, p.StartRow)
	if !ok {
		return summary
	}

	for row := start; row <= s.MaxRow(); row++ {
		if sheet.RowEmpty(s, row) {
			break
		}
		key := classifySummaryKey(s.Value(row, colNumber), row, p)
		summary[key] = summaryRecord(s, row, slot)
	}
	return summary
}

// summaryStartRow finds the first row at or below startRow whose
// first-column cell lies inside a merged range.
func summaryStartRow(s sheet.Sheet, geo sheet.Geometry, startRow int) (int, bool) {
	for row := startRow; row <= s.MaxRow(); row++ {
		if geo.Merged(row, colNumber) {
			return row, true
		}
	}
	return 0, false
}

// summaryEndRow returns the first fully empty row at or below the
// block start (the row terminating the block), or MaxRow+1 when the
// block runs to the sheet end.
func summaryEndRow(s sheet.Sheet, start int) int {
	for row := start; row <= s.MaxRow(); row++ {
		if sheet.RowEmpty(s, row) {
			return row
		}
	}
	return s.MaxRow() + 1
}

// classifySummaryKey maps a totals row label onto its canonical key,
// falling back to "merged_<row>" for unrecognized phrasing.
func classifySummaryKey(label string, row int, p SummaryParams) string {
	l := strings.ToLower(strings.TrimSpace(label))

	hasTotal := p.TotalWord != "" && strings.Contains(l, p.TotalWord)
	hasVAT := p.VATWord != "" && strings.Contains(l, p.VATWord)

	switch {
	case hasTotal && hasVAT:
		return models.SummaryTotalCostVAT
	case (p.VATPhrase != "" && strings.Contains(l, p.VATPhrase)) || (hasVAT && !hasTotal):
		return models.SummaryVAT
	case p.DeviationPhrase != "" && strings.Contains(l, p.DeviationPhrase):
		return models.SummaryDeviation
	case p.InitialCostPhrase != "" && strings.Contains(l, p.InitialCostPhrase):
		return models.SummaryInitialCost
	default:
		return fmt.Sprintf("merged_%d", row)
	}
}

// summaryRecord assembles one totals row: its label plus the
// contractor fields for the slot.
func summaryRecord(s sheet.Sheet, row int, slot Slot) models.Record {
	rec := models.Record{
		models.KeyJobTitle: rawValue(s.Value(row, colNumber)),
	}
	for k, v := range contractorFields(s, row, slot) {
		rec[k] = v
	}
	return rec
}
