package structurer

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// eduHeaderPattern matches the degree/institution/dates triple opening an
// education entry. The degree capture must contain a degree keyword.
var eduHeaderPattern = regexp.MustCompile(`([^\n•,]*?(?:Degree|Certificate|Diploma|Master|Bachelor|PhD)[^\n•,]*)\s*[\n•,]\s*([^\n•,]+?)\s*[\n•,]\s*([^\n•,]*?)(?:\s*[\n•,]\s*|$)`)

var certLinePattern = regexp.MustCompile(`•\s*([^\n•]+)`)

// ExtractEducation parses education entries out of the education section.
func ExtractEducation(text string) []types.EducationEntry {
	var education []types.EducationEntry

	section := SectionText(text, "education")
	if section == "" {
		return education
	}

	pos := 0
	for pos < len(section) {
		loc := eduHeaderPattern.FindStringSubmatchIndex(section[pos:])
		if loc == nil {
			break
		}

		entry := types.EducationEntry{
			Degree:      strings.TrimSpace(section[pos+loc[2] : pos+loc[3]]),
			Institution: strings.TrimSpace(section[pos+loc[4] : pos+loc[5]]),
			Dates:       strings.TrimSpace(section[pos+loc[6] : pos+loc[7]]),
		}

		detailsStart := pos + loc[1]
		detailsEnd := len(section)
		if b := entryBoundaryPattern.FindStringIndex(section[detailsStart:]); b != nil {
			detailsEnd = detailsStart + b[0]
		}
		entry.Details = strings.TrimSpace(section[detailsStart:detailsEnd])

		education = append(education, entry)

		if detailsEnd <= pos {
			break
		}
		pos = detailsEnd
	}

	return education
}

// ExtractCertifications collects bullet-marked lines from the certifications section.
func ExtractCertifications(text string) []types.Certification {
	var certifications []types.Certification

	section := SectionText(text, "certifications")
	if section == "" {
		return certifications
	}

	for _, m := range certLinePattern.FindAllStringSubmatch(section, -1) {
		certifications = append(certifications, types.Certification{Name: strings.TrimSpace(m[1])})
	}

	return certifications
}
