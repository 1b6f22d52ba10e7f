package parser

import (
	"fmt"
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// The contractor block comes in five fixed widths. Each width selects
// one field schema; the schemas are supersets of each other, anchored
// on the two four-part cost blocks. Keys use dotted paths for the
// nested cost blocks ("unit_cost.materials").
var (
	unitCostKeys = []string{
		models.KeyUnitCost + "." + models.KeyMaterials,
		models.KeyUnitCost + "." + models.KeyWorks,
		models.KeyUnitCost + "." + models.KeyIndirectCosts,
		models.KeyUnitCost + "." + models.KeyTotal,
	}
	totalCostKeys = []string{
		models.KeyTotalCost + "." + models.KeyMaterials,
		models.KeyTotalCost + "." + models.KeyWorks,
		models.KeyTotalCost + "." + models.KeyIndirectCosts,
		models.KeyTotalCost + "." + models.KeyTotal,
	}
)

// columnKeys returns the ordered field keys for a contractor block of
// the given width. ok is false for unsupported widths. Each width adds
// exactly one field over the previous one:
//
//	 8: unit_cost ×4, total_cost ×4
//	 9: + deviation_from_calculated_cost
//	10: + comment_contractor
//	11: + organizer_quantity_total_cost
//	12: + suggested_quantity (leading column)
func columnKeys(colSpan int) (keys []string, ok bool) {
	costs := append(append([]string{}, unitCostKeys...), totalCostKeys...)

	switch colSpan {
	case 12:
		keys = append([]string{models.KeySuggestedQuantity}, costs...)
		keys = append(keys,
			models.KeyOrganizerQuantityTotalCost,
			models.KeyCommentContractor,
			models.KeyDeviation,
		)
	case 11:
		keys = append(costs,
			models.KeyOrganizerQuantityTotalCost,
			models.KeyCommentContractor,
			models.KeyDeviation,
		)
	case 10:
		keys = append(costs,
			models.KeyCommentContractor,
			models.KeyDeviation,
		)
	case 9:
		keys = append(costs, models.KeyDeviation)
	case 8:
		keys = costs
	default:
		return nil, false
	}
	return keys, true
}

// newPositionRecord returns the record template for one position row:
// the seven organizer fields plus the contractor fields selected by
// colSpan, all nil. An unsupported colSpan yields the organizer fields
// plus an error marker instead of contractor fields.
func newPositionRecord(colSpan int) models.Record {
	rec := models.Record{
		models.KeyNumber:             nil,
		models.KeyChapterNumber:      nil,
		models.KeyArticleCode:        nil,
		models.KeyJobTitle:           nil,
		models.KeyJobTitleNormalized: nil,
		models.KeyCommentOrganizer:   nil,
		models.KeyUnit:               nil,
		models.KeyQuantity:           nil,
	}

	keys, ok := columnKeys(colSpan)
	if !ok {
		rec[models.KeyError] = fmt.Sprintf("unsupported contractor colspan: %d", colSpan)
		return rec
	}
	for _, key := range keys {
		setNested(rec, key, nil)
	}
	return rec
}

// contractorFields reads the colSpan cells of the slot's block on the
// given row and maps them onto the schema's (possibly nested) keys.
// For unsupported widths only the error marker is returned.
func contractorFields(s sheet.Sheet, row int, slot Slot) models.Record {
	rec := models.Record{}
	keys, ok := columnKeys(slot.Span.ColSpan)
	if !ok {
		rec[models.KeyError] = fmt.Sprintf("unsupported contractor colspan: %d", slot.Span.ColSpan)
		return rec
	}
	for i, key := range keys {
		setNested(rec, key, parseValue(s.Value(row, slot.Col+i)))
	}
	return rec
}

// setNested assigns value at a dotted key path, creating intermediate
// maps as needed.
func setNested(rec models.Record, key string, value any) {
	parts := strings.Split(key, ".")
	level := map[string]any(rec)
	for _, part := range parts[:len(parts)-1] {
		next, ok := level[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			level[part] = next
		}
		level = next
	}
	level[parts[len(parts)-1]] = value
}
