// Package models defines the compiled tender document tree and the
// stable string keys shared with downstream consumers.
package models

// Organizer columns present on every position record.
const (
	KeyNumber             = "number"
	KeyChapterNumber      = "chapter_number"
	KeyArticleCode        = "article_code"
	KeyJobTitle           = "job_title"
	KeyJobTitleNormalized = "job_title_normalized"
	KeyCommentOrganizer   = "comment_organizer"
	KeyUnit               = "unit"
	KeyQuantity           = "quantity"
)

// Contractor-specific fields; availability depends on the contractor's
// column span.
const (
	KeySuggestedQuantity          = "suggested_quantity"
	KeyUnitCost                   = "unit_cost"
	KeyTotalCost                  = "total_cost"
	KeyMaterials                  = "materials"
	KeyWorks                      = "works"
	KeyIndirectCosts              = "indirect_costs"
	KeyTotal                      = "total"
	KeyOrganizerQuantityTotalCost = "organizer_quantity_total_cost"
	KeyCommentContractor          = "comment_contractor"
	KeyDeviation                  = "deviation_from_calculated_cost"
)

// Annotation fields added by normalization.
const (
	KeyIsChapter  = "is_chapter"
	KeyChapterRef = "chapter_ref"
)

// KeyError marks a record extracted from a layout slot with an
// unsupported column span.
const KeyError = "error"

// Canonical summary row keys. Unrecognized summary rows fall back to
// "merged_<row>".
const (
	SummaryTotalCostVAT = "total_cost_vat"
	SummaryVAT          = "vat"
	SummaryDeviation    = KeyDeviation
	SummaryInitialCost  = "initial_cost"
)
