package parser

import (
	"strconv"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// TitleNormalizer produces the lemmatized/cleaned variant of a job
// title. Implementations must be pure and total: any input string, no
// errors. Returning "" means "no normalized form".
type TitleNormalizer interface {
	Normalize(title string) string
}

// rowState is the extractor's classification state. The transition
// NORMAL -> SUMMARY is one-way and happens only in whole-sheet mode.
type rowState int

const (
	stateNormal rowState = iota
	stateSummary
)

// Organizer columns, fixed across all layouts.
const (
	colNumber           = 1
	colChapterNumber    = 2
	colArticleCode      = 3
	colJobTitle         = 4
	colCommentOrganizer = 6
	colUnit             = 7
	colQuantity         = 8
)

// RowParams configures position extraction.
type RowParams struct {
	// StartRow is where position rows can begin on the sheet.
	StartRow int `mapstructure:"start_row" yaml:"start_row"`
}

// DefaultRowParams matches the source convention: positions start at
// row 13.
func DefaultRowParams() RowParams {
	return RowParams{StartRow: 13}
}

// ExtractLotPositions reads one contractor's position rows inside one
// lot's row window. A merged first-column cell ends the position block:
// the tail totals block has begun, and that block belongs to
// ExtractSummary, not to any lot. Fully empty rows are skipped.
// Sequence keys "1", "2", ... are dense per (contractor, lot).
func ExtractLotPositions(s sheet.Sheet, geo sheet.Geometry, slot Slot, lot Lot, p RowParams, tn TitleNormalizer) map[string]models.Record {
	positions := make(map[string]models.Record)
	seq := 1

	start := p.StartRow
	if lot.StartRow > start {
		start = lot.StartRow
	}

	for row := start; row <= lot.EndRow && row <= s.MaxRow(); row++ {
		if geo.Merged(row, colNumber) {
			break
		}
		if sheet.RowEmpty(s, row) {
			continue
		}
		positions[strconv.Itoa(seq)] = positionRecord(s, row, slot, tn)
		seq++
	}
	return positions
}

// ExtractPositions is the whole-sheet mode: it walks rows from
// p.StartRow until the first fully empty row or the sheet end,
// switching from NORMAL to SUMMARY the first time a row's first cell
// lies inside a merged range. NORMAL rows become sequenced positions;
// SUMMARY rows are classified by keyword into the summary map. Used
// when the sheet has no lot structure to honor.
func ExtractPositions(s sheet.Sheet, geo sheet.Geometry, slot Slot, p RowParams, sp SummaryParams, tn TitleNormalizer) (positions, summary map[string]models.Record) {
	positions = make(map[string]models.Record)
	summary = make(map[string]models.Record)

	state := stateNormal
	seq := 1

	for row := p.StartRow; row <= s.MaxRow(); row++ {
		if sheet.RowEmpty(s, row) {
			break
		}
		if state == stateNormal && geo.Merged(row, colNumber) {
			state = stateSummary
		}

		switch state {
		case stateNormal:
			positions[strconv.Itoa(seq)] = positionRecord(s, row, slot, tn)
			seq++
		case stateSummary:
			key := classifySummaryKey(s.Value(row, colNumber), row, sp)
			summary[key] = summaryRecord(s, row, slot)
		}
	}
	return positions, summary
}

// positionRecord assembles one position row: the seven organizer
// fields plus the contractor fields selected by the slot's column
// span. Unsupported spans keep the organizer fields and carry an error
// marker instead of contractor data.
func positionRecord(s sheet.Sheet, row int, slot Slot, tn TitleNormalizer) models.Record {
	rec := newPositionRecord(slot.Span.ColSpan)

	rec[models.KeyNumber] = rawValue(s.Value(row, colNumber))
	rec[models.KeyChapterNumber] = rawValue(s.Value(row, colChapterNumber))
	rec[models.KeyArticleCode] = rawValue(s.Value(row, colArticleCode))

	title := s.Value(row, colJobTitle)
	rec[models.KeyJobTitle] = rawValue(title)
	if tn != nil {
		if n := tn.Normalize(title); n != "" {
			rec[models.KeyJobTitleNormalized] = n
		}
	}

	rec[models.KeyCommentOrganizer] = parseValue(s.Value(row, colCommentOrganizer))
	rec[models.KeyUnit] = rawValue(s.Value(row, colUnit))
	rec[models.KeyQuantity] = parseValue(s.Value(row, colQuantity))

	for k, v := range contractorFields(s, row, slot) {
		rec[k] = v
	}
	return rec
}
