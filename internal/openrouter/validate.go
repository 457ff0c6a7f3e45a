package openrouter

import (
	"strings"
	"unicode"
)

// minTextChars is the absolute floor for either input text.
const minTextChars = 50

// placeholderTokens are keyboard mashes and filler phrases that mark an
// obviously fake text.
var placeholderTokens = []string{
	"dsadasd",
	"asdfgh",
	"qwerty",
	"sample text",
	"placeholder text",
}

// ValidateJobDescription gates a job description before any API call is
// made. It rejects empty or obviously fake input. This is a heuristic gate
// against accidental junk, not a security boundary.
func ValidateJobDescription(text string) error {
	if len(strings.TrimSpace(text)) < minTextChars {
		return &ValidationError{Message: "Job description is too short or empty. Please provide a detailed job description."}
	}
	if looksLikePlaceholder(text) {
		return &ValidationError{Message: "Invalid job description. Please provide a real job description with specific requirements and qualifications."}
	}
	return nil
}

// ValidateResumeText applies the same gate to a resume text.
func ValidateResumeText(text string) error {
	if len(strings.TrimSpace(text)) < minTextChars {
		return &ValidationError{Message: "Resume text is too short or empty. Please provide a detailed resume."}
	}
	if looksLikePlaceholder(text) {
		return &ValidationError{Message: "Invalid resume text. Please provide a real resume with specific experience and qualifications."}
	}
	return nil
}

// looksLikePlaceholder flags text that is too short, entirely lowercase, has
// too few distinct words, contains a known filler token, or is mostly
// non-alphanumeric noise.
func looksLikePlaceholder(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if len(trimmed) < 100 {
		return true
	}
	if trimmed == lower {
		return true
	}

	unique := make(map[string]bool)
	for _, w := range strings.Fields(lower) {
		unique[w] = true
	}
	if len(unique) < 10 {
		return true
	}

	for _, token := range placeholderTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}

	alnum, total := 0, 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return float64(alnum)/float64(total) < 0.7
}
