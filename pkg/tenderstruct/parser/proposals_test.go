package parser

import (
	"testing"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// Builds a minimal one-contractor sheet: header block at row 5,
// positions from row 13, totals and additional info below.
func buildContractorSheet() *sheet.Memory {
	m := sheet.NewMemory()
	m.Set(5, 3, "Наименование контрагента")
	m.Set(5, 9, "ООО Стройка")
	m.Merge(5, 9, 5, 16)
	m.Set(6, 9, "1650012345")
	m.Set(7, 9, "г. Казань")
	m.Set(8, 9, "аккредитован")

	setPositionRow(m, 13, "1", "Разработка грунта", "м3", "100")
	setPositionRow(m, 14, "2", "Кладка", "м2", "50")

	m.Set(15, 1, "Итого с НДС")
	m.Merge(15, 1, 15, 8)
	m.Set(15, 16, "3550")

	// additional info rows between the totals block and the executor
	m.Set(17, 1, "Срок выполнения работ")
	m.Set(17, 9, "90 дней")

	m.Set(25, 2, "Исполнитель: Иванов И.И.")
	m.Set(30, 1, "tail")
	return m
}

func TestBuildProposals(t *testing.T) {
	m := buildContractorSheet()
	geo := sheet.BuildGeometry(m)

	slots, found := DetectLayout(m, geo, DefaultLayoutParams())
	if !found {
		t.Fatal("Expected the header row to be found")
	}

	lot := Lot{Title: "Лот № 1", StartRow: 13, EndRow: 20}
	proposals := BuildProposals(m, geo, slots, lot, DefaultProposalParams(), nil)
	if len(proposals) != 1 {
		t.Fatalf("Expected 1 proposal, got %d", len(proposals))
	}

	prop := proposals["contractor_1"]
	if prop == nil {
		t.Fatal("Expected a contractor_1 proposal")
	}
	if prop.Title != "ООО Стройка" {
		t.Errorf("Unexpected title: %q", prop.Title)
	}
	if prop.INN != "1650012345" {
		t.Errorf("Unexpected INN: %v", prop.INN)
	}
	if prop.Width != 8 || prop.Height != 1 {
		t.Errorf("Unexpected block size: %dx%d", prop.Width, prop.Height)
	}
	if prop.Coordinate != "I5" {
		t.Errorf("Unexpected coordinate: %q", prop.Coordinate)
	}

	if len(prop.Positions) != 2 {
		t.Errorf("Expected 2 positions, got %d", len(prop.Positions))
	}
	if _, ok := prop.Summary["total_cost_vat"]; !ok {
		t.Errorf("Expected a total_cost_vat summary entry, got %v", prop.Summary)
	}
	if prop.AdditionalInfo["Срок выполнения работ"] != "90 дней" {
		t.Errorf("Unexpected additional info: %v", prop.AdditionalInfo)
	}
}

func TestBuildProposalsMarkerOnly(t *testing.T) {
	m := sheet.NewMemory()
	m.Set(5, 3, "Наименование контрагента")

	geo := sheet.BuildGeometry(m)
	slots, found := DetectLayout(m, geo, DefaultLayoutParams())
	if !found {
		t.Fatal("Expected the header row to be found")
	}

	proposals := BuildProposals(m, geo, slots, Lot{StartRow: 13, EndRow: 20}, DefaultProposalParams(), nil)
	if len(proposals) != 0 {
		t.Errorf("Expected no proposals without contractor slots, got %d", len(proposals))
	}
}
