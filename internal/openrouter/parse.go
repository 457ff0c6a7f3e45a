package openrouter

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalysisResult is the normalized shape of the model's match assessment.
// After parsing, every field is guaranteed present via the defaults merge.
type AnalysisResult struct {
	OverallScore        int                        `json:"overall_score"`
	ComponentScores     types.ComponentScores      `json:"component_scores"`
	MatchedRequirements []types.MatchedRequirement `json:"matched_requirements"`
	MissingRequirements []string                   `json:"missing_requirements"`
	Concerns            []string                   `json:"concerns"`
	Recommendations     types.Recommendations      `json:"recommendations"`
	Confidence          int                        `json:"confidence"`
}

// Fence cleanup patterns. Models wrap JSON in markdown fences even when the
// prompt forbids it, and truncated responses can leave a fence unpaired.
var (
	pairedFencePattern   = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	openingFencePattern  = regexp.MustCompile("```(?:json)?\\s*")
	trailingFencePattern = regexp.MustCompile("\\s*```$")
)

// CleanJSONFences strips markdown code-fence wrappers from model output.
// Paired fences are unwrapped first, then any unpaired leading or trailing
// markers are removed.
func CleanJSONFences(content string) string {
	if !strings.Contains(content, "```") {
		return content
	}
	content = pairedFencePattern.ReplaceAllString(content, "$1")
	content = openingFencePattern.ReplaceAllString(content, "")
	content = trailingFencePattern.ReplaceAllString(content, "")
	return content
}

// RepairTruncated patches a response that was cut off mid-JSON. If the
// trimmed content does not end with a closing brace or bracket, the deficits
// of '}' and ']' are appended, braces first. The result may still fail to
// parse; this only fixes clean tail truncation.
func RepairTruncated(content string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasSuffix(trimmed, "}") || strings.HasSuffix(trimmed, "]") {
		return content
	}

	if n := strings.Count(content, "{") - strings.Count(content, "}"); n > 0 {
		content += strings.Repeat("}", n)
	}
	if n := strings.Count(content, "[") - strings.Count(content, "]"); n > 0 {
		content += strings.Repeat("]", n)
	}
	return content
}

// ParseAnalysis turns raw model output into a complete AnalysisResult:
// fences stripped, truncation repaired once, defaults filled for any keys
// the model omitted. There is no second repair pass; content that still
// fails to parse surfaces a truncation or parse error.
func ParseAnalysis(content string) (*AnalysisResult, error) {
	cleaned := RepairTruncated(CleanJSONFences(content))

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		if isTruncationError(err) {
			return nil, &TruncatedResponseError{Cause: err}
		}
		return nil, &UpstreamError{Op: "parse analysis response", Cause: err}
	}

	merged, err := json.Marshal(mergeDefaults(parsed))
	if err != nil {
		return nil, &UpstreamError{Op: "normalize analysis response", Cause: err}
	}

	var result AnalysisResult
	if err := json.Unmarshal(merged, &result); err != nil {
		return nil, &UpstreamError{Op: "normalize analysis response", Cause: err}
	}
	return &result, nil
}

// isTruncationError recognizes JSON parse errors caused by content cut off
// inside a string or value.
func isTruncationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unexpected end of JSON input") ||
		strings.Contains(msg, "in string literal")
}

// analysisDefaults is the template of required keys and their fallback
// values. A fresh copy is built per call since the merge mutates it.
func analysisDefaults() map[string]any {
	return map[string]any{
		"overall_score": 50,
		"component_scores": map[string]any{
			"skills_match":        0,
			"experience_fit":      0,
			"education_match":     0,
			"semantic_similarity": 0,
			"penalties":           0,
		},
		"matched_requirements": []any{},
		"missing_requirements": []any{},
		"concerns":             []any{},
		"recommendations": map[string]any{
			"talent":    []any{},
			"recruiter": []any{},
		},
		"confidence": 50,
	}
}

// mergeDefaults fills absent keys with defaults. For the nested objects
// (component_scores, recommendations) missing sub-keys are merged
// individually instead of replacing the whole object.
func mergeDefaults(parsed map[string]any) map[string]any {
	for key, def := range analysisDefaults() {
		existing, ok := parsed[key]
		if !ok {
			parsed[key] = def
			continue
		}

		defMap, defIsMap := def.(map[string]any)
		gotMap, gotIsMap := existing.(map[string]any)
		if defIsMap && gotIsMap {
			for subKey, subDef := range defMap {
				if _, ok := gotMap[subKey]; !ok {
					gotMap[subKey] = subDef
				}
			}
		}
	}
	return parsed
}
