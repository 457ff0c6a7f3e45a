// Package structurer extracts structured entities from raw resume text using
// rule-based pattern matching over a fixed taxonomy. All extraction is
// deterministic: identical input text always yields identical output.
package structurer

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DetectSections scans the text line by line and returns the line range of
// every detected section. A line opens a section when it matches one of that
// section's header patterns; only the first header per section counts. Each
// range runs from the header line to the end of the text — there is no
// next-section boundary detection, which is a known limitation of this
// detector rather than a defect to compensate for downstream.
func DetectSections(text string) map[string]types.SectionRange {
	sections := make(map[string]types.SectionRange)
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		for _, sp := range sectionPatterns {
			for _, pattern := range sp.patterns {
				if pattern.MatchString(clean) {
					if _, seen := sections[sp.name]; !seen {
						sections[sp.name] = types.SectionRange{StartLine: i, EndLine: len(lines) - 1}
					}
					break
				}
			}
		}
	}

	return sections
}

// SectionText returns the raw text of a detected section, or "" if the
// section is absent.
func SectionText(text, sectionName string) string {
	sections := DetectSections(text)
	r, ok := sections[sectionName]
	if !ok {
		return ""
	}

	lines := strings.Split(text, "\n")
	return strings.Join(lines[r.StartLine:r.EndLine+1], "\n")
}

// buildSectionIndex summarizes detected sections with per-section character counts.
func buildSectionIndex(text string, sections map[string]types.SectionRange) map[string]types.SectionStats {
	index := make(map[string]types.SectionStats, len(sections))
	lines := strings.Split(text, "\n")

	for name, r := range sections {
		index[name] = types.SectionStats{
			StartLine:      r.StartLine,
			EndLine:        r.EndLine,
			CharacterCount: len(strings.Join(lines[r.StartLine:r.EndLine+1], "\n")),
		}
	}

	return index
}
