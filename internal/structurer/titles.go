package structurer

import (
	"strings"
	"unicode"
)

// NormalizeTitles lower-cases job titles and expands common abbreviations,
// then title-cases the result. Expansion is literal substring replacement
// applied in the fixed order of the replacement table, so results are
// reproducible even where replacements overlap.
func NormalizeTitles(titles []string) []string {
	normalized := make([]string, 0, len(titles))

	for _, title := range titles {
		clean := strings.ToLower(strings.TrimSpace(title))
		for _, r := range titleReplacements {
			clean = strings.ReplaceAll(clean, r.abbrev, r.expanded)
		}
		normalized = append(normalized, titleCase(clean))
	}

	return normalized
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "senior swe, ml" becomes "Senior Swe, Ml".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}

	return b.String()
}
