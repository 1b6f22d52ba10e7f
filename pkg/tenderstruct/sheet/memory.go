package sheet

// Memory is an in-memory Sheet, used by tests and by callers that
// assemble sheets from sources other than xlsx files.
type Memory struct {
	cells  map[Ref]string
	merged []Range
	maxRow int
	maxCol int
}

// NewMemory returns an empty in-memory sheet.
func NewMemory() *Memory {
	return &Memory{cells: make(map[Ref]string)}
}

// Set assigns a cell value. Setting "" clears the cell but keeps the
// sheet extent.
func (m *Memory) Set(row, col int, value string) {
	m.cells[Ref{Row: row, Col: col}] = value
	if row > m.maxRow {
		m.maxRow = row
	}
	if col > m.maxCol {
		m.maxCol = col
	}
}

// Merge registers a merged range, 1-based and inclusive.
func (m *Memory) Merge(minRow, minCol, maxRow, maxCol int) {
	m.merged = append(m.merged, Range{
		MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCol,
	})
	if maxRow > m.maxRow {
		m.maxRow = maxRow
	}
	if maxCol > m.maxCol {
		m.maxCol = maxCol
	}
}

func (m *Memory) Value(row, col int) string {
	return m.cells[Ref{Row: row, Col: col}]
}

func (m *Memory) MergedRanges() []Range { return m.merged }

func (m *Memory) MaxRow() int { return m.maxRow }

func (m *Memory) MaxCol() int { return m.maxCol }
