package models

// Executor identifies who prepared the tender sheet.
type Executor struct {
	Name  any `json:"name"`
	Phone any `json:"phone"`
	Date  any `json:"date"`
}

// Proposal is one contractor's bid within a lot. Positions differ per
// lot; Summary is sheet-global and therefore identical across lots for
// the same contractor.
type Proposal struct {
	Title          string            `json:"title"`
	INN            any               `json:"inn,omitempty"`
	Address        any               `json:"address,omitempty"`
	Accreditation  any               `json:"accreditation,omitempty"`
	Coordinate     string            `json:"coordinate,omitempty"`
	Width          int               `json:"width,omitempty"`
	Height         int               `json:"height,omitempty"`
	Positions      map[string]Record `json:"positions,omitempty"`
	Summary        map[string]Record `json:"summary,omitempty"`
	AdditionalInfo map[string]any    `json:"additional_info,omitempty"`
}

// Clone returns a deep copy of the proposal.
func (p *Proposal) Clone() *Proposal {
	if p == nil {
		return nil
	}
	out := *p
	if p.Positions != nil {
		out.Positions = make(map[string]Record, len(p.Positions))
		for k, v := range p.Positions {
			out.Positions[k] = v.Clone()
		}
	}
	if p.Summary != nil {
		out.Summary = make(map[string]Record, len(p.Summary))
		for k, v := range p.Summary {
			out.Summary[k] = v.Clone()
		}
	}
	if p.AdditionalInfo != nil {
		out.AdditionalInfo = make(map[string]any, len(p.AdditionalInfo))
		for k, v := range p.AdditionalInfo {
			out.AdditionalInfo[k] = cloneValue(v)
		}
	}
	return &out
}

// LotContent holds one lot's title and proposals. Baseline is filled
// during normalization: either the organizer's calculated-cost pseudo
// proposal or the fixed absent stub.
type LotContent struct {
	Title     string               `json:"lot_title"`
	Baseline  *Proposal            `json:"baseline_proposal,omitempty"`
	Proposals map[string]*Proposal `json:"proposals"`
}

// Clone returns a deep copy of the lot content.
func (l *LotContent) Clone() *LotContent {
	if l == nil {
		return nil
	}
	out := &LotContent{Title: l.Title, Baseline: l.Baseline.Clone()}
	if l.Proposals != nil {
		out.Proposals = make(map[string]*Proposal, len(l.Proposals))
		for k, v := range l.Proposals {
			out.Proposals[k] = v.Clone()
		}
	}
	return out
}

// Document is the compiled tender: header fields, executor info, and
// lots keyed "lot_1", "lot_2", ...
type Document struct {
	TenderID    any                    `json:"tender_id"`
	TenderTitle any                    `json:"tender_title"`
	Object      any                    `json:"object"`
	Address     any                    `json:"address"`
	Executor    Executor               `json:"executor"`
	Lots        map[string]*LotContent `json:"lots"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	if d.Lots != nil {
		out.Lots = make(map[string]*LotContent, len(d.Lots))
		for k, v := range d.Lots {
			out.Lots[k] = v.Clone()
		}
	}
	return &out
}
