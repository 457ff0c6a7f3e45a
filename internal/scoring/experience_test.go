package scoring

import (
	"testing"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

var scoringClock = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestExperienceScore_EmptyHistory(t *testing.T) {
	assert.Equal(t, 0, ExperienceScore(nil, 0, scoringClock))
	assert.Equal(t, 0, ExperienceScore([]types.JobEntry{}, 5, scoringClock))
}

func TestExperienceScore_SeniorWithLongTenure(t *testing.T) {
	history := []types.JobEntry{
		{Title: "Senior Engineer", Dates: "2016 - 2022"},
	}

	// six years cap the years half at 10, senior level adds 10.
	assert.Equal(t, 20, ExperienceScore(history, 0, scoringClock))
}

func TestExperienceScore_OngoingPositionUsesReferenceYear(t *testing.T) {
	history := []types.JobEntry{
		{Title: "Engineer", Dates: "Jan 2020 - Present"},
	}

	// four years (8) plus mid level (8).
	assert.Equal(t, 16, ExperienceScore(history, 0, scoringClock))
}

func TestExperienceScore_MinYearsShortfall(t *testing.T) {
	history := []types.JobEntry{
		{Title: "Senior Developer", Dates: "2021 - 2022"},
	}

	// one year (2) plus senior level reduced by the shortfall (10-5).
	assert.Equal(t, 7, ExperienceScore(history, 5, scoringClock))
}

func TestExperienceScore_UnparseableDatesCountZeroYears(t *testing.T) {
	history := []types.JobEntry{
		{Title: "Engineer", Dates: "unknown"},
		{Title: "Engineer", Dates: "spring - fall"},
	}

	// zero years, mid level only.
	assert.Equal(t, 8, ExperienceScore(history, 0, scoringClock))
}

func TestExperienceScore_SeniorityPrecedence(t *testing.T) {
	cases := []struct {
		title string
		score int
	}{
		{"Engineering Intern", 2},
		{"Junior Developer", 5},
		{"Software Engineer", 8},
		{"Lead Engineer", 10},
		{"Director of Engineering", 10},
	}
	for _, c := range cases {
		history := []types.JobEntry{{Title: c.title, Dates: "none"}}
		assert.Equal(t, c.score, ExperienceScore(history, 0, scoringClock), c.title)
	}
}

func TestExperienceScore_MaxLevelAcrossJobs(t *testing.T) {
	history := []types.JobEntry{
		{Title: "Intern", Dates: "none"},
		{Title: "VP of Product", Dates: "none"},
	}

	assert.Equal(t, 10, ExperienceScore(history, 0, scoringClock))
}

func TestYearsWorked(t *testing.T) {
	cases := []struct {
		dates string
		years int
	}{
		{"2018 - 2022", 4},
		{"Jan 2018 - Dec 2022", 4},
		{"2020 - Present", 4},
		{"no dash here", 0},
		{"abcd - 2022", 0},
		{"2018 - efgh", 0},
		{"", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.years, yearsWorked(c.dates, scoringClock), c.dates)
	}
}
