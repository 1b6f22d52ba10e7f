package output

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteLotReports(t *testing.T) {
	doc := testReportDocument()
	dir := t.TempDir()

	paths, err := WriteLotReports(context.Background(), doc, dir, "777", 2)
	if err != nil {
		t.Fatalf("WriteLotReports failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d", len(paths))
	}

	report, err := os.ReadFile(filepath.Join(dir, "777_lot_1.md"))
	if err != nil {
		t.Fatalf("Failed to read lot report: %v", err)
	}
	if !strings.Contains(string(report), "### Подрядчик: ООО Стройка") {
		t.Error("Expected the contractor section in the lot report")
	}

	positions, err := os.ReadFile(filepath.Join(dir, "777_lot_1_positions.md"))
	if err != nil {
		t.Fatalf("Failed to read positions report: %v", err)
	}
	if !strings.Contains(string(positions), "Разработка грунта") {
		t.Error("Expected the position line in the positions report")
	}
}

func TestWriteLotReportsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WriteLotReports(ctx, testReportDocument(), t.TempDir(), "777", 1)
	if err == nil {
		t.Error("Expected an error for a canceled context")
	}
}
