package parser

import (
	"testing"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

func TestSegmentLots(t *testing.T) {
	m := sheet.NewMemory()
	m.Set(13, 4, "Лот № 1. Земляные работы")
	m.Set(14, 4, "Разработка грунта")
	m.Set(20, 4, "Лот № 2. Кладка")
	m.Set(30, 1, "tail")

	lots := SegmentLots(m, DefaultLotParams())
	if len(lots) != 2 {
		t.Fatalf("Expected 2 lots, got %d", len(lots))
	}

	if lots[0].Title != "Лот № 1. Земляные работы" {
		t.Errorf("Unexpected first lot title: %q", lots[0].Title)
	}
	if lots[0].StartRow != 13 || lots[0].EndRow != 19 {
		t.Errorf("Expected first lot rows 13-19, got %d-%d", lots[0].StartRow, lots[0].EndRow)
	}
	if lots[1].StartRow != 20 || lots[1].EndRow != 30 {
		t.Errorf("Expected second lot rows 20-30, got %d-%d", lots[1].StartRow, lots[1].EndRow)
	}

	// Ranges are contiguous and disjoint
	if lots[0].EndRow+1 != lots[1].StartRow {
		t.Error("Expected consecutive lot ranges to be contiguous")
	}
}

func TestSegmentLotsCaseInsensitive(t *testing.T) {
	m := sheet.NewMemory()
	m.Set(15, 4, "ЛОТ № 3")

	lots := SegmentLots(m, DefaultLotParams())
	if len(lots) != 1 {
		t.Fatalf("Expected 1 lot, got %d", len(lots))
	}
	if lots[0].StartRow != 15 {
		t.Errorf("Expected start row 15, got %d", lots[0].StartRow)
	}
}

func TestSegmentLotsNone(t *testing.T) {
	m := sheet.NewMemory()
	m.Set(13, 4, "Разработка грунта")
	// marker in the wrong column does not count
	m.Set(14, 5, "Лот № 1")

	if lots := SegmentLots(m, DefaultLotParams()); lots != nil {
		t.Errorf("Expected nil, got %d lots", len(lots))
	}
}

func TestSegmentLotsIgnoresRowsAboveStart(t *testing.T) {
	m := sheet.NewMemory()
	m.Set(5, 4, "Лот № 0")
	m.Set(13, 4, "Лот № 1")

	lots := SegmentLots(m, DefaultLotParams())
	if len(lots) != 1 {
		t.Fatalf("Expected 1 lot, got %d", len(lots))
	}
	if lots[0].StartRow != 13 {
		t.Errorf("Expected the row 5 marker to be ignored, got start %d", lots[0].StartRow)
	}
}
