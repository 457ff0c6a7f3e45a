package structurer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
john.doe@example.com
(555) 123-4567
linkedin.com/in/johndoe
github.com/johndoe

SUMMARY
Backend engineer with eight years of experience.

EXPERIENCE
Senior Software Engineer
Acme Corp
Jan 2020 - Dec 2022
• Built Python services on AWS
• Led a team of four engineers

EDUCATION
Bachelor of Science Degree
State University
2012 - 2016

SKILLS
Python, SQL, Docker

CERTIFICATIONS
• AWS Certified Solutions Architect
`

func TestDetectSections_AllHeaders(t *testing.T) {
	sections := DetectSections(sampleResume)

	for _, name := range []string{"summary", "experience", "education", "skills", "certifications"} {
		assert.Contains(t, sections, name)
	}
	assert.NotContains(t, sections, "projects")
}

func TestDetectSections_RangeRunsToEndOfText(t *testing.T) {
	sections := DetectSections(sampleResume)

	lineCount := len(strings.Split(sampleResume, "\n"))
	exp, ok := sections["experience"]
	require.True(t, ok)
	assert.Equal(t, lineCount-1, exp.EndLine)
	assert.Greater(t, exp.StartLine, 0)
}

func TestDetectSections_FirstHeaderWins(t *testing.T) {
	text := "SKILLS\nfirst block\nSKILLS\nsecond block\n"
	sections := DetectSections(text)

	require.Contains(t, sections, "skills")
	assert.Equal(t, 0, sections["skills"].StartLine)
}

func TestDetectSections_CaseInsensitive(t *testing.T) {
	sections := DetectSections("Work Experience\nsome job\n")
	assert.Contains(t, sections, "experience")
}

func TestDetectSections_EmptyText(t *testing.T) {
	assert.Empty(t, DetectSections(""))
}

func TestSectionText_AbsentSection(t *testing.T) {
	assert.Equal(t, "", SectionText("no headers here", "skills"))
}

func TestBuildSectionIndex_CharacterCounts(t *testing.T) {
	text := "SKILLS\nGo, SQL"
	sections := DetectSections(text)
	index := buildSectionIndex(text, sections)

	require.Contains(t, index, "skills")
	assert.Equal(t, len(text), index["skills"].CharacterCount)
	assert.Equal(t, 0, index["skills"].StartLine)
	assert.Equal(t, 1, index["skills"].EndLine)
}
