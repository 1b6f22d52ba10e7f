package parser

import (
	"fmt"
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// ProposalParams aggregates the per-row extraction settings used when
// assembling contractor proposals.
type ProposalParams struct {
	Rows    RowParams     `mapstructure:"rows" yaml:"rows"`
	Summary SummaryParams `mapstructure:"summary" yaml:"summary"`
}

// DefaultProposalParams returns the source-convention defaults.
func DefaultProposalParams() ProposalParams {
	return ProposalParams{Rows: DefaultRowParams(), Summary: DefaultSummaryParams()}
}

// BuildProposals assembles one proposal per contractor slot for one
// lot. The first slot is the header marker cell and carries no
// contractor; it is skipped. Positions are read inside the lot's row
// window; summary and additional info are sheet-global and identical
// across lots. INN, address and accreditation sit in the three rows
// below a single-row header cell.
func BuildProposals(s sheet.Sheet, geo sheet.Geometry, slots []Slot, lot Lot, p ProposalParams, tn TitleNormalizer) map[string]*models.Proposal {
	proposals := make(map[string]*models.Proposal)
	if len(slots) < 2 {
		return proposals
	}

	for i, slot := range slots[1:] {
		prop := &models.Proposal{
			Title:      strings.TrimSpace(slot.Label),
			Coordinate: slot.Coordinate,
			Width:      slot.Span.ColSpan,
			Height:     slot.Span.RowSpan,
		}
		if slot.Span.RowSpan == 1 {
			prop.INN = rawValue(s.Value(slot.Row+1, slot.Col))
			prop.Address = rawValue(s.Value(slot.Row+2, slot.Col))
			prop.Accreditation = rawValue(s.Value(slot.Row+3, slot.Col))
		}

		prop.Positions = ExtractLotPositions(s, geo, slot, lot, p.Rows, tn)
		prop.Summary = ExtractSummary(s, geo, slot, p.Summary)
		prop.AdditionalInfo = ReadAdditionalInfo(s, geo, slot, p.Summary)

		proposals[fmt.Sprintf("contractor_%d", i+1)] = prop
	}
	return proposals
}
