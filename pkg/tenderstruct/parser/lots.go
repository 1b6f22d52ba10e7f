package parser

import (
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// Lot is one bid package's row range on the sheet, inclusive on both
// ends. Ranges of consecutive lots are contiguous and disjoint.
type Lot struct {
	Title    string
	StartRow int
	EndRow   int
}

// LotParams bounds the lot marker scan.
type LotParams struct {
	// Column is the fixed column scanned for lot markers.
	Column int `mapstructure:"column" yaml:"column"`
	// StartRow is the first row scanned.
	StartRow int `mapstructure:"start_row" yaml:"start_row"`
	// Marker is the case-insensitive prefix opening a lot.
	Marker string `mapstructure:"marker" yaml:"marker"`
}

// DefaultLotParams matches the source convention: column 4 from row
// 13, marker "лот №".
func DefaultLotParams() LotParams {
	return LotParams{Column: 4, StartRow: 13, Marker: "лот №"}
}

// SegmentLots finds every lot marker in the scan column and derives
// each lot's row range: up to one row before the next marker, or the
// sheet's last row for the final lot. Zero matches yields nil; a
// document without lots is a valid outcome.
func SegmentLots(s sheet.Sheet, p LotParams) []Lot {
	var lots []Lot
	for row := p.StartRow; row <= s.MaxRow(); row++ {
		v := s.Value(row, p.Column)
		if v == "" || !hasFoldedPrefix(v, p.Marker) {
			continue
		}
		lots = append(lots, Lot{
			Title:    strings.TrimSpace(v),
			StartRow: row,
			EndRow:   s.MaxRow(),
		})
		if n := len(lots); n > 1 {
			lots[n-2].EndRow = row - 1
		}
	}
	return lots
}
