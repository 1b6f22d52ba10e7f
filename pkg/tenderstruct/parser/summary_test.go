package parser

import (
	"testing"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

func TestClassifySummaryKey(t *testing.T) {
	p := DefaultSummaryParams()
	tests := []struct {
		label    string
		expected string
	}{
		{"Итого с НДС", "total_cost_vat"},
		{"ИТОГО, в т.ч. НДС 20%", "total_cost_vat"},
		{"В том числе НДС", "vat"},
		{"НДС 20%", "vat"},
		{"Отклонение от расчетной стоимости", "deviation_from_calculated_cost"},
		{"Первоначальная стоимость", "initial_cost"},
		{"Какая-то другая строка", "merged_42"},
		{"", "merged_42"},
	}

	for _, tt := range tests {
		if got := classifySummaryKey(tt.label, 42, p); got != tt.expected {
			t.Errorf("classifySummaryKey(%q) = %q, expected %q", tt.label, got, tt.expected)
		}
	}
}

func TestExtractSummary(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "Позиция", "м3", "10")
	m.Set(20, colNumber, "Итого с НДС")
	m.Merge(20, 1, 20, 8)
	m.Set(20, 9+7, "3550") // total_cost.total of the 8-wide block
	m.Set(21, colNumber, "Непонятная строка")
	// row 22 empty ends the block
	m.Set(23, colNumber, "после блока")

	geo := sheet.BuildGeometry(m)
	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}

	summary := ExtractSummary(m, geo, slot, DefaultSummaryParams())
	if len(summary) != 2 {
		t.Fatalf("Expected 2 summary rows, got %d", len(summary))
	}

	total := summary["total_cost_vat"]
	if total == nil {
		t.Fatal("Expected a total_cost_vat entry")
	}
	block, _ := total[models.KeyTotalCost].(map[string]any)
	if block == nil || block[models.KeyTotal] != int64(3550) {
		t.Errorf("Unexpected total_cost block: %v", total[models.KeyTotalCost])
	}

	// Unrecognized labels keep the positional key
	if _, ok := summary["merged_21"]; !ok {
		t.Errorf("Expected a merged_21 entry, got %v", summary)
	}
}

func TestExtractSummaryAbsent(t *testing.T) {
	m := sheet.NewMemory()
	setPositionRow(m, 13, "1", "Позиция", "м3", "10")

	geo := sheet.BuildGeometry(m)
	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}

	summary := ExtractSummary(m, geo, slot, DefaultSummaryParams())
	if len(summary) != 0 {
		t.Errorf("Expected an empty summary without a merged block, got %v", summary)
	}
}
