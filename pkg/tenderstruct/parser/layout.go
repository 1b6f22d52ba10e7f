package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// Slot is one column block of the contractor header row: the marker
// cell itself or one contractor's block.
type Slot struct {
	// Label is the header cell text.
	Label string
	// Row and Col locate the header cell, 1-based.
	Row int
	Col int
	// Coordinate is the A1-style cell name of the header cell.
	Coordinate string
	// Span is the merged extent of the header cell; {1,1} when the
	// cell is not merged. ColSpan selects the contractor field schema.
	Span sheet.Span
}

// LayoutParams bounds the header search.
type LayoutParams struct {
	// MinRow..MaxRow is the inclusive row window scanned for the
	// header marker.
	MinRow int `mapstructure:"min_row" yaml:"min_row"`
	MaxRow int `mapstructure:"max_row" yaml:"max_row"`
	// Marker is the case-insensitive prefix identifying the header
	// row's marker cell.
	Marker string `mapstructure:"marker" yaml:"marker"`
}

// DefaultLayoutParams matches the source convention: rows 4-10,
// marker "наименование контрагента".
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{MinRow: 4, MaxRow: 10, Marker: "наименование контрагента"}
}

// DetectLayout scans the window for the first row containing the
// marker prefix and returns every populated cell of that row as a
// layout slot in column order. found is false when no row in the
// window matches; callers must treat that as "no contractor table
// present", not as an error. Later matching rows are ignored.
func DetectLayout(s sheet.Sheet, geo sheet.Geometry, p LayoutParams) (slots []Slot, found bool) {
	for row := p.MinRow; row <= p.MaxRow && row <= s.MaxRow(); row++ {
		if !rowHasMarker(s, row, p.Marker) {
			continue
		}
		for col := 1; col <= s.MaxCol(); col++ {
			v := s.Value(row, col)
			if v == "" {
				continue
			}
			slot := Slot{
				Label: v,
				Row:   row,
				Col:   col,
				Span:  sheet.Span{RowSpan: 1, ColSpan: 1},
			}
			if name, err := excelize.CoordinatesToCellName(col, row); err == nil {
				slot.Coordinate = name
			}
			if sp, ok := geo.Span(row, col); ok {
				slot.Span = sp
			}
			slots = append(slots, slot)
		}
		return slots, true
	}
	return nil, false
}

func rowHasMarker(s sheet.Sheet, row int, marker string) bool {
	for col := 1; col <= s.MaxCol(); col++ {
		if v := s.Value(row, col); v != "" && hasFoldedPrefix(v, marker) {
			return true
		}
	}
	return false
}
