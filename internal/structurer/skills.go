package structurer

import (
	"regexp"
	"sort"
	"strings"
)

var skillsBulletPattern = regexp.MustCompile(`•\s*([^\n•]+)`)

// ExtractSkills merges two sources: a whole-word search of the taxonomy over
// the full text, and the explicit skills section (when detected) parsed both
// as a comma-separated list and as bullet-marked lines. Results are title-cased,
// deduplicated case-insensitively, and returned sorted.
func ExtractSkills(text string) []string {
	found := make(map[string]string) // lower-cased key -> title-cased skill
	textLower := strings.ToLower(text)

	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return
		}
		titled := titleCase(skill)
		key := strings.ToLower(titled)
		if _, ok := found[key]; !ok {
			found[key] = titled
		}
	}

	for _, skills := range skillsTaxonomy {
		for _, skill := range skills {
			pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
			if pattern.MatchString(textLower) {
				add(skill)
			}
		}
	}

	if section := SectionText(text, "skills"); section != "" {
		for _, piece := range strings.Split(section, ",") {
			add(piece)
		}
		for _, m := range skillsBulletPattern.FindAllStringSubmatch(section, -1) {
			add(m[1])
		}
	}

	result := make([]string, 0, len(found))
	for _, skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}
