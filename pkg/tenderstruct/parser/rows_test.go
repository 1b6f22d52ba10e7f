package parser

import (
	"strings"
	"testing"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func setPositionRow(m *sheet.Memory, row int, number, title, unit, qty string) {
	m.Set(row, colNumber, number)
	m.Set(row, colJobTitle, title)
	m.Set(row, colUnit, unit)
	m.Set(row, colQuantity, qty)
}

func TestExtractLotPositions(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "Разработка грунта", "м3", "100")
	// row 14 fully empty, skipped
	setPositionRow(m, 15, "2", "Кладка", "м2", "50")
	m.Set(15, colChapterNumber, "2.10")
	// merged first cell opens the totals block
	m.Set(16, colNumber, "Итого с НДС")
	m.Merge(16, 1, 16, 8)
	setPositionRow(m, 17, "3", "после блока", "шт", "1")

	geo := sheet.BuildGeometry(m)
	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}
	lot := Lot{StartRow: 13, EndRow: 20}

	positions := ExtractLotPositions(m, geo, slot, lot, DefaultRowParams(), lowerNormalizer{})
	if len(positions) != 2 {
		t.Fatalf("Expected 2 positions, got %d", len(positions))
	}

	first := positions["1"]
	if first[models.KeyNumber] != "1" {
		t.Errorf("Expected number '1', got %v", first[models.KeyNumber])
	}
	if first[models.KeyJobTitle] != "Разработка грунта" {
		t.Errorf("Unexpected job title: %v", first[models.KeyJobTitle])
	}
	if first[models.KeyJobTitleNormalized] != "разработка грунта" {
		t.Errorf("Unexpected normalized title: %v", first[models.KeyJobTitleNormalized])
	}
	if first[models.KeyQuantity] != int64(100) {
		t.Errorf("Expected int64(100), got %v (%T)", first[models.KeyQuantity], first[models.KeyQuantity])
	}

	// Sequence keys stay dense across the skipped empty row
	second := positions["2"]
	if second == nil {
		t.Fatal("Expected the row 15 position under key '2'")
	}
	// Chapter numbers survive as raw strings
	if second[models.KeyChapterNumber] != "2.10" {
		t.Errorf("Expected '2.10', got %v (%T)", second[models.KeyChapterNumber], second[models.KeyChapterNumber])
	}
}

func TestExtractLotPositionsHonorsLotWindow(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "первый лот", "м3", "10")
	setPositionRow(m, 14, "1", "второй лот", "м2", "20")

	geo := sheet.BuildGeometry(m)
	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}

	positions := ExtractLotPositions(m, geo, slot, Lot{StartRow: 14, EndRow: 14}, DefaultRowParams(), nil)
	if len(positions) != 1 {
		t.Fatalf("Expected 1 position, got %d", len(positions))
	}
	if positions["1"][models.KeyJobTitle] != "второй лот" {
		t.Errorf("Expected the second lot's row, got %v", positions["1"][models.KeyJobTitle])
	}
}

func TestExtractPositionsStateMachine(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "Разработка грунта", "м3", "100")
	setPositionRow(m, 14, "2", "Кладка", "м2", "50")
	m.Set(15, colNumber, "Итого с НДС")
	m.Merge(15, 1, 15, 8)
	m.Set(15, 9, "3550")
	m.Set(16, colNumber, "В том числе НДС")
	m.Merge(16, 1, 16, 8)
	// row 17 empty terminates the walk
	setPositionRow(m, 18, "9", "недостижимая строка", "шт", "1")

	geo := sheet.BuildGeometry(m)
	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}

	positions, summary := ExtractPositions(m, geo, slot, DefaultRowParams(), DefaultSummaryParams(), nil)
	if len(positions) != 2 {
		t.Errorf("Expected 2 positions, got %d", len(positions))
	}
	if len(summary) != 2 {
		t.Fatalf("Expected 2 summary rows, got %d", len(summary))
	}

	total, ok := summary["total_cost_vat"]
	if !ok {
		t.Fatal("Expected a total_cost_vat summary entry")
	}
	if total[models.KeyJobTitle] != "Итого с НДС" {
		t.Errorf("Unexpected summary label: %v", total[models.KeyJobTitle])
	}
	unit, _ := total[models.KeyUnitCost].(map[string]any)
	if unit == nil || unit[models.KeyMaterials] != int64(3550) {
		t.Errorf("Expected the contractor block to be read for summary rows, got %v", total[models.KeyUnitCost])
	}
	if _, ok := summary["vat"]; !ok {
		t.Error("Expected a vat summary entry")
	}
}

// Once the walk enters the summary state it never returns to
// sequencing positions.
func TestExtractPositionsNoReturnFromSummary(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "Позиция", "м3", "10")
	m.Set(14, colNumber, "Итого с НДС")
	m.Merge(14, 1, 14, 8)
	// an unmerged row after the merged one stays in the summary state
	m.Set(15, colNumber, "Отклонение от расчетной стоимости")

	geo := sheet.BuildGeometry(m)
	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}

	positions, summary := ExtractPositions(m, geo, slot, DefaultRowParams(), DefaultSummaryParams(), nil)
	if len(positions) != 1 {
		t.Errorf("Expected 1 position, got %d", len(positions))
	}
	if _, ok := summary["deviation_from_calculated_cost"]; !ok {
		t.Errorf("Expected the unmerged row to be classified as summary, got %v", summary)
	}
}

func TestPositionRecordUnsupportedWidth(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "Позиция", "шт", "5")

	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 5}}
	rec := positionRecord(m, 13, slot, nil)

	if _, ok := rec[models.KeyError]; !ok {
		t.Error("Expected an error marker on the record")
	}
	if rec[models.KeyJobTitle] != "Позиция" {
		t.Errorf("Expected organizer fields to survive, got %v", rec[models.KeyJobTitle])
	}
}
