// Package sheet provides the read-only worksheet abstraction the
// compiler works against, plus the merged-cell geometry index.
package sheet

// Ref addresses a single cell with 1-based row and column.
type Ref struct {
	Row int
	Col int
}

// Span is the size of the merged range a cell belongs to.
type Span struct {
	RowSpan int `json:"rowspan"`
	ColSpan int `json:"colspan"`
}

// Range describes one merged cell range, 1-based and inclusive.
type Range struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// Sheet is the minimal worksheet surface the compiler needs: cell
// lookup, merged range enumeration, and the populated extent.
// Implementations must be safe for read-only sharing.
type Sheet interface {
	// Value returns the cell text at (row, col), "" for empty or
	// out-of-range cells.
	Value(row, col int) string
	// MergedRanges enumerates all merged cell ranges on the sheet.
	MergedRanges() []Range
	// MaxRow is the last populated row, 0 for an empty sheet.
	MaxRow() int
	// MaxCol is the widest populated row's column count.
	MaxCol() int
}

// RowEmpty reports whether every cell of the row is empty.
func RowEmpty(s Sheet, row int) bool {
	for col := 1; col <= s.MaxCol(); col++ {
		if s.Value(row, col) != "" {
			return false
		}
	}
	return true
}
