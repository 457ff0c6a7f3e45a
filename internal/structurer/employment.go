package structurer

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// jobHeaderPattern matches the title/company/dates triple that opens a job
// entry. Fields are separated by newlines or bullet markers.
var jobHeaderPattern = regexp.MustCompile(`([^\n•]+?)\s*[\n•]\s*([^\n•]+?)\s*[\n•]\s*([^\n•]+?)\s*[\n•]\s*`)

// entryBoundaryPattern ends a job description: the next all-caps header line
// or the next bullet marker. End of section is the implicit third boundary.
var entryBoundaryPattern = regexp.MustCompile(`\n[A-Z][A-Z\s]*\n|\n•`)

// datePatterns are tried in order; the first successful parse wins.
// "Present" or an unparseable end side leaves the end date absent.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(\w+\s+\d{4})\s*-\s*(\w+\s+\d{4})`), "Jan 2006"},
	{regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`), "2006"},
	{regexp.MustCompile(`(\w+\s+\d{4})\s*-\s*(Present)`), "Jan 2006"},
	{regexp.MustCompile(`(\w+\s+\d{4})`), "Jan 2006"},
}

// ExtractEmploymentHistory parses job entries out of the experience section.
// Returns an empty slice when no experience section is detected.
func ExtractEmploymentHistory(text string) []types.JobEntry {
	var employment []types.JobEntry

	section := SectionText(text, "experience")
	if section == "" {
		return employment
	}

	pos := 0
	for pos < len(section) {
		loc := jobHeaderPattern.FindStringSubmatchIndex(section[pos:])
		if loc == nil {
			break
		}

		title := strings.TrimSpace(section[pos+loc[2] : pos+loc[3]])
		company := strings.TrimSpace(section[pos+loc[4] : pos+loc[5]])
		dates := strings.TrimSpace(section[pos+loc[6] : pos+loc[7]])

		descStart := pos + loc[1]
		descEnd := len(section)
		if b := entryBoundaryPattern.FindStringIndex(section[descStart:]); b != nil {
			descEnd = descStart + b[0]
		}
		description := strings.TrimSpace(section[descStart:descEnd])

		entry := types.JobEntry{
			Title:       title,
			Company:     company,
			Dates:       dates,
			Description: description,
			Bullets:     extractBullets(section[descStart:descEnd]),
		}
		entry.StartDate, entry.EndDate = parseDates(dates)

		employment = append(employment, entry)

		if descEnd <= pos {
			break
		}
		pos = descEnd
	}

	return employment
}

// extractBullets collects bullet lines from a description. Every marker
// pattern is applied independently, then duplicates are dropped by trimmed text.
func extractBullets(text string) []string {
	var bullets []string
	seen := make(map[string]bool)

	for _, pattern := range bulletPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			bullet := strings.TrimSpace(m[1])
			if bullet == "" || seen[bullet] {
				continue
			}
			seen[bullet] = true
			bullets = append(bullets, bullet)
		}
	}

	return bullets
}

// parseDates parses a raw dates string into ISO start/end dates.
func parseDates(dateString string) (string, string) {
	if dateString == "" {
		return "", ""
	}

	for _, dp := range datePatterns {
		m := dp.re.FindStringSubmatch(dateString)
		if m == nil {
			continue
		}

		start, err := time.Parse(dp.layout, m[1])
		if err != nil {
			continue
		}

		end := ""
		if len(m) > 2 && m[2] != "" && m[2] != "Present" {
			endTime, err := time.Parse(dp.layout, m[2])
			if err != nil {
				continue
			}
			end = endTime.Format("2006-01-02")
		}

		return start.Format("2006-01-02"), end
	}

	return "", ""
}
