package sheet

// Geometry maps every cell inside a merged range to the span of that
// range. Built once per sheet and read-only afterwards, so it can be
// shared across lots and contractors without locking.
type Geometry map[Ref]Span

// BuildGeometry indexes all merged ranges of the sheet. An empty sheet
// yields an empty index.
func BuildGeometry(s Sheet) Geometry {
	g := make(Geometry)
	for _, r := range s.MergedRanges() {
		span := Span{
			RowSpan: r.MaxRow - r.MinRow + 1,
			ColSpan: r.MaxCol - r.MinCol + 1,
		}
		for row := r.MinRow; row <= r.MaxRow; row++ {
			for col := r.MinCol; col <= r.MaxCol; col++ {
				g[Ref{Row: row, Col: col}] = span
			}
		}
	}
	return g
}

// Span returns the merged span covering (row, col), if any.
func (g Geometry) Span(row, col int) (Span, bool) {
	sp, ok := g[Ref{Row: row, Col: col}]
	return sp, ok
}

// Merged reports whether (row, col) lies inside a merged range.
func (g Geometry) Merged(row, col int) bool {
	_, ok := g[Ref{Row: row, Col: col}]
	return ok
}
