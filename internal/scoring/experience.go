package scoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// seniorityRank orders levels for taking the maximum across jobs.
const (
	rankIntern = iota
	rankJunior
	rankMid
	rankSenior
	rankExecutive
)

// seniorityKeywords are checked in precedence order; the first group with a
// keyword found as a substring of the lower-cased title decides the level.
var seniorityKeywords = []struct {
	rank     int
	keywords []string
}{
	{rankIntern, []string{"intern", "trainee"}},
	{rankJunior, []string{"junior", "jr", "associate", "assistant"}},
	{rankSenior, []string{"senior", "sr", "lead", "principal"}},
	{rankExecutive, []string{"manager", "director", "vp", "head"}},
}

// levelScores maps the maximum seniority rank to its point contribution.
var levelScores = map[int]int{
	rankIntern:    2,
	rankJunior:    5,
	rankMid:       8,
	rankSenior:    10,
	rankExecutive: 10,
}

// ExperienceScore computes the experience fit component (0-20) from total
// years worked and the highest seniority level held. Five years max out the
// years half; falling short of minYears (when given) costs 5 level points.
// The reference time supplies the year used for ongoing positions.
func ExperienceScore(history []types.JobEntry, minYears int, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	totalYears := 0
	maxRank := rankIntern
	for _, job := range history {
		totalYears += yearsWorked(job.Dates, now)
		if r := seniorityLevel(job.Title); r > maxRank {
			maxRank = r
		}
	}

	yearsScore := totalYears * 2
	if yearsScore > 10 {
		yearsScore = 10
	}

	levelScore := levelScores[maxRank]
	if minYears > 0 && totalYears < minYears {
		levelScore -= 5
		if levelScore < 0 {
			levelScore = 0
		}
	}

	score := yearsScore + levelScore
	if score > types.MaxExperienceFit {
		score = types.MaxExperienceFit
	}
	if score < 0 {
		score = 0
	}
	return score
}

// yearsWorked parses a raw dates string ("Jan 2020 - Dec 2022") into a year
// count. The year is the last four characters of each side of the first dash;
// "Present" means the reference year. Any parse failure counts as zero years,
// never an error.
func yearsWorked(dates string, now time.Time) int {
	idx := strings.Index(dates, "-")
	if idx < 0 {
		return 0
	}

	start := strings.TrimSpace(dates[:idx])
	end := strings.TrimSpace(dates[idx+1:])

	startYear := 0
	if len(start) >= 4 {
		y, err := strconv.Atoi(start[len(start)-4:])
		if err != nil {
			return 0
		}
		startYear = y
	}

	endYear := now.Year()
	if end != "Present" {
		if len(end) < 4 {
			return 0
		}
		y, err := strconv.Atoi(end[len(end)-4:])
		if err != nil {
			return 0
		}
		endYear = y
	}

	return endYear - startYear
}

// seniorityLevel classifies a job title by keyword, defaulting to mid.
func seniorityLevel(title string) int {
	lower := strings.ToLower(title)
	for _, group := range seniorityKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.rank
			}
		}
	}
	return rankMid
}
