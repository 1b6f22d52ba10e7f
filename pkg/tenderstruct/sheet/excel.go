package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX adapts one excelize worksheet to the Sheet interface. All cell
// values and merged ranges are read up front, so the adapter holds no
// reference to the file after construction.
type XLSX struct {
	rows   [][]string
	merged []Range
	maxCol int
}

// FromExcelize snapshots the named worksheet of an open workbook.
func FromExcelize(f *excelize.File, sheetName string) (*XLSX, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheetName, err)
	}

	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	mcs, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read merged cells of %q: %w", sheetName, err)
	}
	merged := make([]Range, 0, len(mcs))
	for _, mc := range mcs {
		minCol, minRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range start %q: %w", mc.GetStartAxis(), err)
		}
		maxCellCol, maxRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range end %q: %w", mc.GetEndAxis(), err)
		}
		merged = append(merged, Range{
			MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCellCol,
		})
		if maxCellCol > maxCol {
			maxCol = maxCellCol
		}
	}

	return &XLSX{rows: rows, merged: merged, maxCol: maxCol}, nil
}

func (x *XLSX) Value(row, col int) string {
	if row < 1 || row > len(x.rows) {
		return ""
	}
	r := x.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func (x *XLSX) MergedRanges() []Range { return x.merged }

func (x *XLSX) MaxRow() int { return len(x.rows) }

func (x *XLSX) MaxCol() int { return x.maxCol }
