package structurer

import "regexp"

// sectionPatterns maps section names to their header patterns. Order matters:
// sections are checked in this order for every line, and the first header line
// seen for a section wins.
var sectionPatterns = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{"summary", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(summary|profile|about|objective|overview)`),
		regexp.MustCompile(`(?i)^(professional\s+summary|career\s+summary)`),
	}},
	{"experience", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(experience|work\s+experience|employment|professional\s+experience)`),
		regexp.MustCompile(`(?i)^(work\s+history|career\s+history)`),
	}},
	{"education", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(education|academic|academic\s+background|qualifications)`),
		regexp.MustCompile(`(?i)^(educational\s+background|training)`),
	}},
	{"skills", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(skills|technical\s+skills|core\s+competencies)`),
		regexp.MustCompile(`(?i)^(competencies|expertise|proficiencies)`),
	}},
	{"certifications", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(certifications|certificates|credentials)`),
		regexp.MustCompile(`(?i)^(professional\s+certifications|licenses)`),
	}},
	{"projects", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(projects|portfolio|personal\s+projects)`),
		regexp.MustCompile(`(?i)^(key\s+projects|selected\s+projects)`),
	}},
}

// skillsTaxonomy is the fixed six-category skill vocabulary searched
// whole-word over the full resume text.
var skillsTaxonomy = map[string][]string{
	"programming": {
		"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
		"go", "rust", "swift", "kotlin", "scala", "perl", "r", "matlab",
	},
	"web_development": {
		"html", "css", "react", "vue", "angular", "nodejs", "express", "django",
		"flask", "rails", "laravel", "spring", "asp.net", "wordpress",
	},
	"databases": {
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"oracle", "sqlserver", "cassandra", "dynamodb", "firebase",
	},
	"cloud": {
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "terraform",
		"ansible", "jenkins", "ci/cd", "devops", "microservices", "serverless",
	},
	"tools": {
		"git", "github", "gitlab", "jira", "confluence", "slack", "trello",
		"figma", "sketch", "adobe", "microsoft office", "excel", "powerpoint",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving", "analytical",
		"critical thinking", "creativity", "adaptability", "time management",
		"project management", "collaboration", "presentation",
	},
}

// titleReplacements expands common title abbreviations. This is ordered
// substring replacement, so iteration order is part of the contract.
var titleReplacements = []struct {
	abbrev   string
	expanded string
}{
	{"sr", "senior"},
	{"jr", "junior"},
	{"sw", "software"},
	{"swe", "software engineer"},
	{"se", "software engineer"},
	{"ds", "data scientist"},
	{"de", "data engineer"},
	{"pm", "project manager"},
	{"po", "product owner"},
}

// bulletPatterns match the supported bullet markers. Each pattern is applied
// independently over the description text; a line may match more than one,
// duplicates are dropped by trimmed text.
var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)•\s*(.+)`),
	regexp.MustCompile(`(?m)-\s*(.+)`),
	regexp.MustCompile(`(?m)\*\s*(.+)`),
	regexp.MustCompile(`(?m)\d+\.\s*(.+)`),
}

// Contact info patterns, one per field. Only the first match is taken.
var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
)
