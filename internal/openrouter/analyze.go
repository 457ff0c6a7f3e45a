package openrouter

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxPromptChars caps the text included in a prompt. Texts are cut silently,
// possibly mid-sentence; free-tier models reject longer contexts.
const maxPromptChars = 12000

// Request tuning per operation. Analysis gets headroom for the full JSON
// shape; the smaller extraction calls run colder and shorter.
const (
	analysisTemperature   = 0.3
	analysisMaxTokens     = 8192
	extractionTemperature = 0.1
	skillsMaxTokens       = 500
	structureMaxTokens    = 800
	bulletsTemperature    = 0.3
	bulletsMaxTokens      = 800
)

// chatCaller is the slice of Client the Analyzer needs, split out so tests
// can substitute a canned responder.
type chatCaller interface {
	ChatCompletion(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

// Analyzer runs the model-backed analysis operations on top of a Client.
type Analyzer struct {
	client chatCaller
	log    *zap.Logger
}

// NewAnalyzer creates an Analyzer backed by the given client.
func NewAnalyzer(client *Client, log *zap.Logger) *Analyzer {
	return &Analyzer{client: client, log: log}
}

// AnalyzeMatch asks the model for a holistic match assessment of one resume
// against one job description. Both inputs pass the validation gate first;
// the response goes through the full cleanup and defaults pipeline.
func (a *Analyzer) AnalyzeMatch(ctx context.Context, resumeText, jobText string) (*AnalysisResult, error) {
	if err := ValidateJobDescription(jobText); err != nil {
		return nil, err
	}
	if err := ValidateResumeText(resumeText); err != nil {
		return nil, err
	}

	prompt := prompts.Format(prompts.MustGet("analysis.json", "analyze-match"), map[string]string{
		"JobDescription": truncate(jobText, maxPromptChars),
		"ResumeText":     truncate(resumeText, maxPromptChars),
	})

	content, err := a.client.ChatCompletion(ctx,
		prompts.MustGet("analysis.json", "analyze-match-system"),
		prompt, analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, err
	}

	return ParseAnalysis(content)
}

// StructureJob extracts requirements, responsibilities, and skills from a
// raw job description.
func (a *Analyzer) StructureJob(ctx context.Context, text string) (*types.JobRequirements, error) {
	prompt := prompts.Format(prompts.MustGet("analysis.json", "structure-job"), map[string]string{
		"Text": truncate(text, maxPromptChars),
	})

	content, err := a.client.ChatCompletion(ctx,
		prompts.MustGet("analysis.json", "structure-job-system"),
		prompt, extractionTemperature, structureMaxTokens)
	if err != nil {
		return nil, err
	}

	var req types.JobRequirements
	if err := json.Unmarshal([]byte(CleanJSONFences(content)), &req); err != nil {
		return nil, &UpstreamError{Op: "parse job structure response", Cause: err}
	}
	return &req, nil
}

// ExtractSkills pulls a skill list out of free text, optionally steering the
// model toward a known skill vocabulary.
func (a *Analyzer) ExtractSkills(ctx context.Context, text string, knownSkills []string) ([]string, error) {
	prompt := prompts.Format(prompts.MustGet("analysis.json", "extract-skills"), map[string]string{
		"Text":        truncate(text, maxPromptChars),
		"KnownSkills": strings.Join(knownSkills, ", "),
	})

	content, err := a.client.ChatCompletion(ctx,
		prompts.MustGet("analysis.json", "extract-skills-system"),
		prompt, extractionTemperature, skillsMaxTokens)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(CleanJSONFences(content)), &parsed); err != nil {
		return nil, &UpstreamError{Op: "parse skill extraction response", Cause: err}
	}
	return parsed.Skills, nil
}

// ImproveBullets rewrites resume bullets toward the job requirements. Any
// failure returns the original bullets unchanged; this operation is advisory
// and never blocks a caller.
func (a *Analyzer) ImproveBullets(ctx context.Context, bullets, requirements []string) []string {
	bulletsJSON, err := json.MarshalIndent(bullets, "", "  ")
	if err != nil {
		return bullets
	}
	requirementsJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return bullets
	}

	prompt := prompts.Format(prompts.MustGet("analysis.json", "improve-bullets"), map[string]string{
		"Bullets":      string(bulletsJSON),
		"Requirements": string(requirementsJSON),
	})

	content, err := a.client.ChatCompletion(ctx,
		prompts.MustGet("analysis.json", "improve-bullets-system"),
		prompt, bulletsTemperature, bulletsMaxTokens)
	if err != nil {
		a.log.Warn("bullet improvement failed, keeping originals", zap.Error(err))
		return bullets
	}

	var parsed struct {
		ImprovedBullets []string `json:"improved_bullets"`
	}
	if err := json.Unmarshal([]byte(CleanJSONFences(content)), &parsed); err != nil {
		a.log.Warn("bullet improvement returned malformed JSON, keeping originals", zap.Error(err))
		return bullets
	}
	if len(parsed.ImprovedBullets) == 0 {
		return bullets
	}
	return parsed.ImprovedBullets
}

// truncate cuts text to at most n runes.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
