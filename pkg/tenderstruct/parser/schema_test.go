package parser

import (
	"testing"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

func TestColumnKeysWidths(t *testing.T) {
	tests := []struct {
		colSpan int
		count   int
		extra   []string
	}{
		{8, 8, nil},
		{9, 9, []string{models.KeyDeviation}},
		{10, 10, []string{models.KeyDeviation, models.KeyCommentContractor}},
		{11, 11, []string{models.KeyDeviation, models.KeyCommentContractor, models.KeyOrganizerQuantityTotalCost}},
		{12, 12, []string{models.KeyDeviation, models.KeyCommentContractor, models.KeyOrganizerQuantityTotalCost, models.KeySuggestedQuantity}},
	}

	for _, tt := range tests {
		keys, ok := columnKeys(tt.colSpan)
		if !ok {
			t.Errorf("colspan %d: expected a schema", tt.colSpan)
			continue
		}
		if len(keys) != tt.count {
			t.Errorf("colspan %d: expected %d keys, got %d", tt.colSpan, tt.count, len(keys))
		}
		set := make(map[string]bool, len(keys))
		for _, k := range keys {
			set[k] = true
		}
		for _, k := range append(unitCostKeys, totalCostKeys...) {
			if !set[k] {
				t.Errorf("colspan %d: missing cost key %q", tt.colSpan, k)
			}
		}
		for _, k := range tt.extra {
			if !set[k] {
				t.Errorf("colspan %d: missing key %q", tt.colSpan, k)
			}
		}
	}
}

// Each width's key set must contain the previous width's key set.
func TestColumnKeysMonotonic(t *testing.T) {
	prev := map[string]bool{}
	for colSpan := 8; colSpan <= 12; colSpan++ {
		keys, ok := columnKeys(colSpan)
		if !ok {
			t.Fatalf("colspan %d: expected a schema", colSpan)
		}
		cur := make(map[string]bool, len(keys))
		for _, k := range keys {
			cur[k] = true
		}
		for k := range prev {
			if !cur[k] {
				t.Errorf("colspan %d dropped key %q present at colspan %d", colSpan, k, colSpan-1)
			}
		}
		prev = cur
	}
}

func TestColumnKeysUnsupported(t *testing.T) {
	for _, colSpan := range []int{1, 7, 13} {
		if _, ok := columnKeys(colSpan); ok {
			t.Errorf("colspan %d: expected no schema", colSpan)
		}
	}
}

func TestNewPositionRecordErrorMarker(t *testing.T) {
	rec := newPositionRecord(7)
	if _, ok := rec[models.KeyError]; !ok {
		t.Error("Expected an error marker for the unsupported width")
	}
	if _, ok := rec[models.KeyUnitCost]; ok {
		t.Error("Expected no contractor fields alongside the error marker")
	}
	// Organizer fields survive the schema failure
	for _, k := range []string{models.KeyNumber, models.KeyJobTitle, models.KeyQuantity} {
		if _, ok := rec[k]; !ok {
			t.Errorf("Expected organizer field %q to be present", k)
		}
	}
}

func TestContractorFieldsNested(t *testing.T) {
	m := sheet.NewMemory()
	// 8-wide block at column 9: unit_cost ×4, total_cost ×4
	values := []string{"10", "20.5", "5", "35.5", "1000", "2050", "500", "3550"}
	for i, v := range values {
		m.Set(13, 9+i, v)
	}

	slot := Slot{Row: 5, Col: 9, Span: sheet.Span{RowSpan: 1, ColSpan: 8}}
	rec := contractorFields(m, 13, slot)

	unit, ok := rec[models.KeyUnitCost].(map[string]any)
	if !ok {
		t.Fatalf("Expected nested unit_cost map, got %T", rec[models.KeyUnitCost])
	}
	if unit[models.KeyMaterials] != int64(10) {
		t.Errorf("Expected int64(10), got %v (%T)", unit[models.KeyMaterials], unit[models.KeyMaterials])
	}
	if unit[models.KeyWorks] != 20.5 {
		t.Errorf("Expected 20.5, got %v", unit[models.KeyWorks])
	}

	total, ok := rec[models.KeyTotalCost].(map[string]any)
	if !ok {
		t.Fatalf("Expected nested total_cost map, got %T", rec[models.KeyTotalCost])
	}
	if total[models.KeyTotal] != int64(3550) {
		t.Errorf("Expected int64(3550), got %v", total[models.KeyTotal])
	}
}
