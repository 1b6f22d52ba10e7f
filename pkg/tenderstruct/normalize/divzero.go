package normalize

import (
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
)

// Spreadsheet division-by-zero artifacts that must become nulls.
var divZeroStrings = map[string]struct{}{
	"div/0":        {},
	"#div/0!":      {},
	"деление на 0": {},
}

// stripDivZero recursively replaces div/0 error strings with nil
// throughout the document.
func stripDivZero(doc *models.Document) {
	doc.TenderID = scrubValue(doc.TenderID)
	doc.TenderTitle = scrubValue(doc.TenderTitle)
	doc.Object = scrubValue(doc.Object)
	doc.Address = scrubValue(doc.Address)
	doc.Executor.Name = scrubValue(doc.Executor.Name)
	doc.Executor.Phone = scrubValue(doc.Executor.Phone)
	doc.Executor.Date = scrubValue(doc.Executor.Date)

	for _, lot := range doc.Lots {
		scrubProposal(lot.Baseline)
		for _, prop := range lot.Proposals {
			scrubProposal(prop)
		}
	}
}

func scrubProposal(prop *models.Proposal) {
	if prop == nil {
		return
	}
	prop.INN = scrubValue(prop.INN)
	prop.Address = scrubValue(prop.Address)
	prop.Accreditation = scrubValue(prop.Accreditation)
	for _, rec := range prop.Positions {
		scrubMap(rec)
	}
	for _, rec := range prop.Summary {
		scrubMap(rec)
	}
	for k, v := range prop.AdditionalInfo {
		prop.AdditionalInfo[k] = scrubValue(v)
	}
}

func scrubMap(m map[string]any) {
	for k, v := range m {
		m[k] = scrubValue(v)
	}
}

func scrubValue(v any) any {
	switch t := v.(type) {
	case string:
		if _, ok := divZeroStrings[strings.ToLower(strings.TrimSpace(t))]; ok {
			return nil
		}
		return t
	case models.Record:
		scrubMap(t)
		return t
	case map[string]any:
		scrubMap(t)
		return t
	case []any:
		for i, vv := range t {
			t[i] = scrubValue(vv)
		}
		return t
	default:
		return v
	}
}
