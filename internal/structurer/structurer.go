package structurer

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Structure derives a StructuredResume from raw text. It runs every extractor,
// builds the section index, and attaches the quality assessment. No network
// calls, no randomness: calling it twice on the same text yields identical
// results.
func Structure(rawText string) *types.StructuredResume {
	sections := DetectSections(rawText)

	resume := &types.StructuredResume{
		ContactInfo:       ExtractContactInfo(rawText),
		Sections:          sections,
		SectionIndex:      buildSectionIndex(rawText, sections),
		Skills:            ExtractSkills(rawText),
		EmploymentHistory: ExtractEmploymentHistory(rawText),
		Education:         ExtractEducation(rawText),
		Certifications:    ExtractCertifications(rawText),
		Summary:           SectionText(rawText, "summary"),
		Projects:          SectionText(rawText, "projects"),
	}

	titles := make([]string, 0, len(resume.EmploymentHistory))
	companies := make([]string, 0, len(resume.EmploymentHistory))
	for _, job := range resume.EmploymentHistory {
		titles = append(titles, job.Title)
		companies = append(companies, job.Company)
	}
	resume.TitlesNormalized = NormalizeTitles(titles)
	resume.Companies = companies

	resume.QualityFlags = AssessQuality(rawText, resume)

	return resume
}

// HasUsableText reports whether extracted text is worth structuring at all.
// The text extractor collaborator reports failures as empty text.
func HasUsableText(rawText string) bool {
	return strings.TrimSpace(rawText) != ""
}
