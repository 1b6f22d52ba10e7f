package normalize

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
)

// IntegrityError signals that an earlier extraction stage produced a
// corrupt document: a position entry that is not a record. It fails
// the whole normalization call, unlike the benign empty-result cases.
type IntegrityError struct {
	Lot        string
	Contractor string
	Key        string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("position %q of %s/%s is not a record", e.Key, e.Lot, e.Contractor)
}

// Params configures baseline separation.
type Params struct {
	// BaselineTitle is the case-insensitive title of the organizer's
	// calculated-cost pseudo proposal.
	BaselineTitle string `mapstructure:"baseline_title" yaml:"baseline_title"`
	// AbsentTitle is the stub title substituted when the baseline is
	// rejected. Document-level constant, identical for every lot.
	AbsentTitle string `mapstructure:"absent_title" yaml:"absent_title"`
}

// DefaultParams matches the source convention.
func DefaultParams() Params {
	return Params{
		BaselineTitle: "расчетная стоимость",
		AbsentTitle:   "Расчетная стоимость отсутствует",
	}
}

// Document runs the full normalization over a compiled document and
// returns a new annotated tree; the input is never mutated. Per lot:
// the baseline pseudo proposal is separated (and demoted to the
// absent stub when all its totals are zero-equivalent), remaining
// proposals are reindexed contractor_1..N, every position is annotated
// with is_chapter/chapter_ref, and div/0 error strings become nulls.
func Document(doc *models.Document, p Params, log *slog.Logger) (*models.Document, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	out := doc.Clone()

	for lotKey, lot := range out.Lots {
		baseline, actualKeys := separateBaseline(lot.Proposals, p)

		switch {
		case lot.Baseline != nil:
			// Already separated on an earlier pass; keep it so that
			// re-running the normalization is a no-op.
			if lot.Baseline.Title == p.AbsentTitle {
				for _, key := range actualKeys {
					stripDeviation(lot.Proposals[key])
				}
			}
		case baselineValid(baseline):
			baseline.AdditionalInfo = nil
			lot.Baseline = baseline
		default:
			lot.Baseline = &models.Proposal{Title: p.AbsentTitle}
			for _, key := range actualKeys {
				stripDeviation(lot.Proposals[key])
			}
		}

		reindexed := make(map[string]*models.Proposal, len(actualKeys))
		for i, key := range actualKeys {
			prop := lot.Proposals[key]
			if err := annotatePositions(prop, lotKey, key, log); err != nil {
				return nil, err
			}
			reindexed[fmt.Sprintf("contractor_%d", i+1)] = prop
		}
		lot.Proposals = reindexed
	}

	stripDivZero(out)
	return out, nil
}

// separateBaseline splits a lot's proposals into the baseline
// candidate (title equals the calculated-cost label) and the real
// proposals, preserving the original relative order. Proposals with
// empty titles are dropped.
func separateBaseline(proposals map[string]*models.Proposal, p Params) (*models.Proposal, []string) {
	var baseline *models.Proposal
	var actual []string

	for _, key := range sortedNumericKeys(proposals) {
		prop := proposals[key]
		title := strings.ToLower(strings.TrimSpace(prop.Title))
		switch {
		case title == strings.ToLower(p.BaselineTitle):
			baseline = prop
		case title != "":
			actual = append(actual, key)
		}
	}
	return baseline, actual
}

// baselineValid reports whether the baseline carries at least one
// non-zero value in its summary total_cost blocks. Zero-equivalence
// covers nil, 0, "0", "0.0", "0,0", "none" and blanks.
func baselineValid(baseline *models.Proposal) bool {
	if baseline == nil {
		return false
	}
	for _, rec := range baseline.Summary {
		block, ok := rec[models.KeyTotalCost].(map[string]any)
		if !ok {
			continue
		}
		for _, v := range block {
			if !isZeroValue(v) {
				return true
			}
		}
	}
	return false
}

func isZeroValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case int64:
		return t == 0
	case int:
		return t == 0
	case float64:
		return t == 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "0", "0.0", "0,0", "none":
			return true
		}
	}
	return false
}

// stripDeviation removes the deviation-from-baseline data from a real
// proposal: the field on every position and the summary entry.
// Meaningless once the baseline is absent.
func stripDeviation(prop *models.Proposal) {
	for _, rec := range prop.Positions {
		delete(rec, models.KeyDeviation)
	}
	delete(prop.Summary, models.SummaryDeviation)
}

// annotatePositions walks the proposal's positions in numeric key
// order, marking chapters and wiring chapter_ref: a chapter points one
// dotted level up (nil at top level), an ordinary position points at
// the currently open chapter. Re-running over an already annotated
// proposal recomputes identical values.
func annotatePositions(prop *models.Proposal, lotKey, propKey string, log *slog.Logger) error {
	keys, numeric := numericSort(prop.Positions)
	if !numeric {
		log.Warn("positions have non-numeric sequence keys, chapter refs may be unreliable",
			"lot", lotKey, "contractor", propKey)
	}

	var current any // currently open chapter number, nil before the first chapter
	for _, key := range keys {
		rec := prop.Positions[key]
		if rec == nil {
			return &IntegrityError{Lot: lotKey, Contractor: propKey, Key: key}
		}

		chapter, isChapter := chapterNumber(rec[models.KeyChapterNumber])
		rec[models.KeyIsChapter] = isChapter
		if isChapter {
			rec[models.KeyChapterRef] = parentChapter(chapter)
			current = chapter
		} else {
			rec[models.KeyChapterRef] = current
		}
	}
	return nil
}

// chapterNumber renders the chapter number cell as a string and
// reports whether it marks a chapter (non-empty, non-zero).
func chapterNumber(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case int64:
		return strconv.FormatInt(t, 10), t != 0
	case int:
		return strconv.Itoa(t), t != 0
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), t != 0
	default:
		s := fmt.Sprint(t)
		return s, s != ""
	}
}

// parentChapter returns the chapter number with its last dot segment
// removed: "2.3" -> "2", "4" -> nil.
func parentChapter(chapter string) any {
	idx := strings.LastIndex(chapter, ".")
	if idx < 0 {
		return nil
	}
	return chapter[:idx]
}

// numericSort orders record keys by their integer value, degrading to
// lexical order when any key fails to parse.
func numericSort(m map[string]models.Record) (keys []string, numeric bool) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	numeric = true
	nums := make(map[string]int, len(keys))
	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil {
			numeric = false
			break
		}
		nums[k] = n
	}

	if numeric {
		sort.Slice(keys, func(i, j int) bool { return nums[keys[i]] < nums[keys[j]] })
	} else {
		sort.Strings(keys)
	}
	return keys, numeric
}

func sortedNumericKeys(m map[string]*models.Proposal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return proposalIndex(keys[i]) < proposalIndex(keys[j])
	})
	return keys
}

// proposalIndex extracts the numeric suffix of "contractor_<n>" keys;
// unparseable keys sort last in lexical order.
func proposalIndex(key string) int {
	idx := strings.LastIndex(key, "_")
	if idx < 0 {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
