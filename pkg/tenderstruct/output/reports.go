package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/worker"
)

// WriteLotReports writes two markdown files per lot into dir: the lot
// report (<base>_<lotKey>.md) and the detailed positions report
// (<base>_<lotKey>_positions.md). Lots are independent, so they are
// rendered concurrently. Returns the written paths.
func WriteLotReports(ctx context.Context, doc *models.Document, dir, base string, workers int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	lotKeys := sortedKeys(doc.Lots)
	paths := make([]string, 0, 2*len(lotKeys))
	tasks := make([]worker.Task, 0, len(lotKeys))

	for _, lotKey := range lotKeys {
		lotKey := lotKey
		reportPath := filepath.Join(dir, fmt.Sprintf("%s_%s.md", base, lotKey))
		positionsPath := filepath.Join(dir, fmt.Sprintf("%s_%s_positions.md", base, lotKey))
		paths = append(paths, reportPath, positionsPath)

		tasks = append(tasks, func(ctx context.Context) error {
			report := strings.Join(LotMarkdown(doc, lotKey), "\n")
			if err := os.WriteFile(reportPath, []byte(report), 0644); err != nil {
				return fmt.Errorf("lot report %s: %w", lotKey, err)
			}
			positions := strings.Join(PositionsReport(doc, lotKey), "\n")
			if err := os.WriteFile(positionsPath, []byte(positions), 0644); err != nil {
				return fmt.Errorf("positions report %s: %w", lotKey, err)
			}
			return nil
		})
	}

	if err := errors.Join(worker.Run(ctx, workers, tasks)...); err != nil {
		return paths, err
	}
	return paths, nil
}

// PositionsReport renders the per-position detail report for one lot,
// grouping ordinary positions under their chapters.
func PositionsReport(doc *models.Document, lotKey string) []string {
	lot := doc.Lots[lotKey]
	if lot == nil {
		return nil
	}

	md := []string{fmt.Sprintf("# Позиции: %s\n", lot.Title)}
	for _, propKey := range sortedKeys(lot.Proposals) {
		p := lot.Proposals[propKey]
		md = append(md, fmt.Sprintf("\n## %s\n", p.Title))

		for _, seq := range sortedKeys(p.Positions) {
			rec := p.Positions[seq]
			if isChapter, _ := rec[models.KeyIsChapter].(bool); isChapter {
				md = append(md, fmt.Sprintf("\n### %s %s\n",
					display(rec[models.KeyChapterNumber]), display(rec[models.KeyJobTitle])))
				continue
			}
			line := fmt.Sprintf("- %s. %s", display(rec[models.KeyNumber]), display(rec[models.KeyJobTitle]))
			if v := rec[models.KeyUnit]; v != nil {
				line += fmt.Sprintf(" — %s", display(v))
			}
			if v := rec[models.KeyQuantity]; v != nil {
				line += fmt.Sprintf(" × %s", display(v))
			}
			if block, ok := rec[models.KeyTotalCost].(map[string]any); ok {
				if v := block[models.KeyTotal]; v != nil {
					line += fmt.Sprintf(" = %s руб.", display(v))
				}
			}
			md = append(md, line)
		}
	}
	return md
}
