package tenderstruct

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/normalize"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/parser"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// CompileFile compiles one tender xlsx file into the normalized
// document model.
func CompileFile(path string, opts Options) (*models.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &CompileError{Stage: "open", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}
	name := opts.Sheet
	if name == "" {
		name = sheets[0]
	} else if !slices.Contains(sheets, name) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	s, err := sheet.FromExcelize(f, name)
	if err != nil {
		return nil, &CompileError{Sheet: name, Stage: "adapt", Err: err}
	}
	return CompileSheet(s, opts)
}

// CompileSheet compiles an already loaded sheet. The pipeline is
// single-threaded and side-effect-free: geometry index, header and
// executor blocks, contractor layout, lot segmentation, per-lot
// proposal assembly, then normalization. A sheet without a contractor
// header or without lot markers compiles to a document with empty
// lots rather than failing.
func CompileSheet(s sheet.Sheet, opts Options) (*models.Document, error) {
	geo := sheet.BuildGeometry(s)

	headers := parser.ReadHeaders(s, opts.Headers)
	doc := &models.Document{
		TenderID:    headers.TenderID,
		TenderTitle: headers.TenderTitle,
		Object:      headers.Object,
		Address:     headers.Address,
		Executor:    parser.ReadExecutor(s, opts.Executor),
		Lots:        make(map[string]*models.LotContent),
	}

	slots, found := parser.DetectLayout(s, geo, opts.Layout)
	lots := parser.SegmentLots(s, opts.Lots)
	pp := parser.ProposalParams{Rows: opts.Rows, Summary: opts.Summary}
	tn := opts.normalizer()

	for i, lot := range lots {
		content := &models.LotContent{
			Title:     lot.Title,
			Proposals: make(map[string]*models.Proposal),
		}
		if found {
			content.Proposals = parser.BuildProposals(s, geo, slots, lot, pp, tn)
		}
		doc.Lots[fmt.Sprintf("lot_%d", i+1)] = content
	}

	out, err := normalize.Document(doc, opts.Normalize, opts.logger())
	if err != nil {
		return nil, &CompileError{Stage: "normalize", Err: err}
	}
	return out, nil
}
