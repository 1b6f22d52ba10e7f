// Package normalize holds the post-extraction passes: baseline
// separation, hierarchy annotation, div/0 cleanup, and the job title
// normalization collaborator.
package normalize

import (
	"strings"
	"unicode"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Title is the default job-title normalizer: case folding, whitespace
// collapsing, punctuation and diacritic removal. It is pure and total
// over arbitrary input; "" means no normalized form. Results are
// memoized because the same title is normalized once per contractor
// per lot.
type Title struct {
	memo *cache.Cache
}

// NewTitle returns a memoizing title normalizer.
func NewTitle() *Title {
	return &Title{memo: cache.New(cache.NoExpiration, 0)}
}

// Normalize implements parser.TitleNormalizer.
func (t *Title) Normalize(title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	if v, ok := t.memo.Get(title); ok {
		return v.(string)
	}
	n := normalizeTitle(title)
	t.memo.Set(title, n, cache.DefaultExpiration)
	return n
}

func normalizeTitle(title string) string {
	s := strings.ToLower(title)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)

	// Fold diacritics: decompose, drop combining marks, recompose.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(chain, s); err == nil {
		s = folded
	}

	return strings.Join(strings.Fields(s), " ")
}
