// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStructuredResume outputs a human-readable summary of a structured resume.
func (p *Printer) PrintStructuredResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if resume.ContactInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.ContactInfo.Email))
	}
	if resume.ContactInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.ContactInfo.Phone))
	}

	if len(resume.Sections) > 0 {
		names := make([]string, 0, len(resume.Sections))
		for name := range resume.Sections {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString(fmt.Sprintf("Sections: %s\n", strings.Join(names, ", ")))
	}

	if len(resume.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
	}

	if len(resume.EmploymentHistory) > 0 {
		sb.WriteString("\nEmployment:\n")
		count := min(len(resume.EmploymentHistory), 3)
		for i := 0; i < count; i++ {
			job := resume.EmploymentHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s", job.Title))
			if job.Dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", job.Dates))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\nQuality:  %d/100 (incompleteness %d)",
		resume.QualityFlags.Score, resume.QualityFlags.Completeness))

	p.printBox("STRUCTURED RESUME", sb.String())
}

// PrintJobRequirements outputs a summary of the structured job requirements.
func (p *Printer) PrintJobRequirements(req *types.JobRequirements) {
	if req == nil {
		return
	}

	var sb strings.Builder

	if len(req.SkillsRequired) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(req.SkillsRequired), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.SkillsRequired[i]))
		}
		if len(req.SkillsRequired) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.SkillsRequired)-maxItemsToShow))
		}
	}

	if len(req.SkillsPreferred) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(req.SkillsPreferred), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.SkillsPreferred[i]))
		}
	}

	if req.MinYearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Minimum Experience: %d years\n", req.MinYearsExperience))
	}
	if req.DegreeRequirements != "" {
		sb.WriteString(fmt.Sprintf("Degree: %s\n", req.DegreeRequirements))
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchScore outputs the full score breakdown for one match.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %d/100 (confidence %d)\n\n", score.OverallScore, score.Confidence))
	sb.WriteString(fmt.Sprintf("Skills:      %d/%d\n", score.ComponentScores.SkillsMatch, types.MaxSkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %d/%d\n", score.ComponentScores.ExperienceFit, types.MaxExperienceFit))
	sb.WriteString(fmt.Sprintf("Education:   %d/%d\n", score.ComponentScores.EducationMatch, types.MaxEducationMatch))
	sb.WriteString(fmt.Sprintf("Semantic:    %d/%d\n", score.ComponentScores.SemanticSimilarity, types.MaxSemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Penalties:  -%d\n", score.ComponentScores.Penalties))

	if len(score.Evidence.MissingRequirements) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(score.Evidence.MissingRequirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", score.Evidence.MissingRequirements[i]))
		}
	}

	if len(score.Recommendations.Recruiter) > 0 {
		sb.WriteString(fmt.Sprintf("\nVerdict: %s", score.Recommendations.Recruiter[0]))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs one line per analyzed resume, best scores first.
func (p *Printer) PrintBatchSummary(scores map[string]int) {
	if len(scores) == 0 {
		return
	}

	type row struct {
		id    string
		score int
	}
	rows := make([]row, 0, len(scores))
	for id, s := range scores {
		rows = append(rows, row{id, s})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].id < rows[j].id
	})

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-30s %3d/100\n", r.id, r.score))
	}
	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}
