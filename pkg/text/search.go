package text

import (
	"strings"
	"unicode"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	transformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// FilterRanked returns the indexes of haystack entries fuzzy-matching needle,
// best match first. An empty needle matches everything in original order.
func FilterRanked(needle string, haystack []string) []int {
	if strings.TrimSpace(needle) == "" {
		all := make([]int, len(haystack))
		for i := range haystack {
			all[i] = i
		}
		return all
	}

	normalized := make([]string, len(haystack))
	for i, hay := range haystack {
		n, err := Normalize(hay)
		if err != nil {
			n = hay
		}
		normalized[i] = n
	}

	matches := fuzzy.Find(needle, normalized)
	idxs := make([]int, 0, len(matches))
	for _, m := range matches {
		idxs = append(idxs, m.Index)
	}
	return idxs
}

// StyleFilteredText renders haystack with the characters matching needles
// underlined, for highlighting live filter matches.
func StyleFilteredText(haystack, needles string, defaultStyle termenv.Style) string {
	b := strings.Builder{}

	normalizedHay, _ := Normalize(haystack)

	matches := fuzzy.Find(needles, []string{normalizedHay})
	if len(matches) == 0 {
		return defaultStyle.Styled(haystack)
	}

	m := matches[0] // only one match exists
	for i, rune := range []rune(haystack) {
		styled := false
		for _, mi := range m.MatchedIndexes {
			if i == mi {
				b.WriteString(defaultStyle.Underline().Styled(string(rune)))
				styled = true
			}
		}
		if !styled {
			b.WriteString(defaultStyle.Styled(string(rune)))
		}
	}

	return b.String()
}

// Normalize text to aid in the filtering process. In particular, we remove
// diacritics, "ö" becomes "o". Note that Mn is the unicode key for nonspacing
// marks.
func Normalize(in string) (string, error) {
	transformer.Reset()
	out, _, err := transform.String(transformer, in)
	return out, err
}

func TruncateWithTail(txt string, width uint, ellipsis string) string {
	return truncate.StringWithTail(txt, width, ellipsis)
}
