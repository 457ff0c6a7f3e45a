package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsScore_RequiredAndPreferredCoverage(t *testing.T) {
	score := SkillsScore(
		[]string{"Python", "SQL"},
		[]string{"python", "java"},
		[]string{"sql"},
	)

	// half of required (7.5) plus all of preferred (10), floored.
	assert.Equal(t, 17, score)
}

func TestSkillsScore_NoResumeSkills(t *testing.T) {
	assert.Equal(t, 0, SkillsScore(nil, []string{"go"}, []string{"sql"}))
	assert.Equal(t, 0, SkillsScore([]string{}, nil, nil))
}

func TestSkillsScore_FullMatchHitsCap(t *testing.T) {
	skills := []string{"Go", "SQL", "Docker"}
	score := SkillsScore(skills, []string{"go", "sql"}, []string{"docker"})
	assert.Equal(t, 25, score)
}

func TestSkillsScore_EmptyRequirementLists(t *testing.T) {
	assert.Equal(t, 0, SkillsScore([]string{"Go"}, nil, nil))
}

func TestSkillsScore_CaseInsensitive(t *testing.T) {
	score := SkillsScore([]string{"PYTHON"}, []string{"Python"}, nil)
	assert.Equal(t, 15, score)
}

func TestSkillsScore_WithinBounds(t *testing.T) {
	cases := [][3][]string{
		{nil, nil, nil},
		{{"a"}, {"a", "b", "c"}, {"a"}},
		{{"a", "b", "c"}, {"a"}, {"b", "c"}},
	}
	for _, c := range cases {
		score := SkillsScore(c[0], c[1], c[2])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 25)
	}
}
