package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
)

// Display labels for the four-part cost blocks, in report order.
var costRows = []struct {
	key   string
	label string
}{
	{models.KeyMaterials, "Материалы"},
	{models.KeyWorks, "Работы"},
	{models.KeyIndirectCosts, "Косвенные расходы"},
	{models.KeyTotal, "Всего"},
}

// LotMarkdown renders one lot of a normalized document as markdown
// lines: tender header, baseline totals, then per-contractor totals,
// additional info and positions.
func LotMarkdown(doc *models.Document, lotKey string) []string {
	lot := doc.Lots[lotKey]
	if lot == nil {
		return nil
	}

	var md []string
	md = append(md, fmt.Sprintf("# Тендер №%s %q\n", display(doc.TenderID), display(doc.TenderTitle)))
	if doc.Object != nil {
		md = append(md, fmt.Sprintf("**Объект:** %s  ", display(doc.Object)))
	}
	if doc.Address != nil {
		md = append(md, fmt.Sprintf("**Адрес:** %s\n", display(doc.Address)))
	}

	if doc.Executor != (models.Executor{}) {
		md = append(md, "\n## Исполнитель")
		for _, kv := range [][2]any{
			{"Исполнитель", doc.Executor.Name},
			{"Телефон", doc.Executor.Phone},
			{"Дата", doc.Executor.Date},
		} {
			if kv[1] != nil {
				md = append(md, fmt.Sprintf("- %s: %s", kv[0], display(kv[1])))
			}
		}
		md = append(md, "")
	}

	md = append(md, fmt.Sprintf("\n---\n\n## %s: %s\n", strings.ToUpper(lotKey), lot.Title))
	md = append(md, baselineSection(lot)...)

	for _, key := range sortedKeys(lot.Proposals) {
		md = append(md, contractorSection(lot.Proposals[key])...)
	}
	return md
}

// AllLotMarkdown renders every lot of the document, keyed by lot key.
func AllLotMarkdown(doc *models.Document) map[string][]string {
	out := make(map[string][]string, len(doc.Lots))
	for lotKey := range doc.Lots {
		out[lotKey] = LotMarkdown(doc, lotKey)
	}
	return out
}

func baselineSection(lot *models.LotContent) []string {
	b := lot.Baseline
	if b == nil {
		return nil
	}
	if len(b.Summary) == 0 {
		return []string{fmt.Sprintf("**Расчетная стоимость:** %s\n", b.Title)}
	}

	md := []string{fmt.Sprintf("**Расчетная стоимость:** %s", b.Title)}
	md = append(md, summaryLines(b.Summary)...)
	md = append(md, "")
	return md
}

func contractorSection(p *models.Proposal) []string {
	md := []string{fmt.Sprintf("\n### Подрядчик: %s", p.Title)}
	md = append(md, summaryLines(p.Summary)...)

	if len(p.AdditionalInfo) > 0 {
		md = append(md, "- **Доп. информация:**")
		keys := make([]string, 0, len(p.AdditionalInfo))
		for k := range p.AdditionalInfo {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			md = append(md, fmt.Sprintf("  - %s: %s", k, display(p.AdditionalInfo[k])))
		}
	}

	md = append(md, fmt.Sprintf("\n#### Позиции подрядчика %s:", p.Title))
	if len(p.Positions) == 0 {
		md = append(md, "_Позиции отсутствуют или не найдены._")
		return md
	}
	for _, key := range sortedKeys(p.Positions) {
		md = append(md, positionLines(key, p.Positions[key])...)
	}
	return md
}

func summaryLines(summary map[string]models.Record) []string {
	var md []string
	for _, key := range sortedKeys(summary) {
		rec := summary[key]
		md = append(md, fmt.Sprintf("- %s:", display(rec[models.KeyJobTitle])))
		if block, ok := rec[models.KeyTotalCost].(map[string]any); ok {
			for _, row := range costRows {
				if v := block[row.key]; v != nil {
					md = append(md, fmt.Sprintf("  - %s: %s руб.", row.label, display(v)))
				}
			}
		}
	}
	return md
}

func positionLines(key string, rec models.Record) []string {
	md := []string{fmt.Sprintf("%s. **%s**  ", key, display(rec[models.KeyJobTitle]))}

	if v := rec[models.KeyUnit]; v != nil {
		md = append(md, fmt.Sprintf("  - Ед. изм.: %s", display(v)))
	}
	if v := rec[models.KeyQuantity]; v != nil {
		md = append(md, fmt.Sprintf("  - Кол-во: %s", display(v)))
	}

	md = append(md, costBlockLines("Стоимость за единицу", rec[models.KeyUnitCost])...)
	md = append(md, costBlockLines("Стоимость всего", rec[models.KeyTotalCost])...)

	if v := rec[models.KeyOrganizerQuantityTotalCost]; v != nil {
		md = append(md, fmt.Sprintf("  - За объемы заказчика: %s руб.", display(v)))
	}
	if v := rec[models.KeyCommentContractor]; v != nil {
		md = append(md, fmt.Sprintf("  - Комментарий участника: %s", display(v)))
	}
	md = append(md, "")
	return md
}

func costBlockLines(label string, block any) []string {
	m, ok := block.(map[string]any)
	if !ok {
		return nil
	}
	md := []string{fmt.Sprintf("  - %s:", label)}
	for _, row := range costRows {
		v := m[row.key]
		s := "0"
		if v != nil && display(v) != "" {
			s = display(v)
		}
		md = append(md, fmt.Sprintf("    - %s: %s руб.", row.label, s))
	}
	return md
}

// display renders a cell value for the report; nil becomes "".
func display(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// sortedKeys orders map keys numerically where possible ("2" before
// "10", "contractor_2" before "contractor_10"), lexically otherwise.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keyNumber(keys[i]), keyNumber(keys[j])
		if a != b {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

func keyNumber(key string) int {
	if idx := strings.LastIndex(key, "_"); idx >= 0 {
		key = key[idx+1:]
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
