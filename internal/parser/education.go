package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resume-parser/internal/models"
)

var reDegreeField = regexp.MustCompile(`(?i)^(.{2,40}?)\s+(?:in|of)\s+(.{2,60})$`)

// ExtractEducation parses the education section using the same entry
// pattern families as experience. The secondary slot carries the degree,
// optionally split into degree + field on an "in"/"of" connective.
func ExtractEducation(sections map[string]string) []models.Education {
	section := sections[SectionEducation]
	if section == "" {
		return nil
	}

	var out []models.Education
	for _, e := range collectEntries(section) {
		start, end, current := dateRange(e.entryMatch)

		degree := e.Secondary
		field := ""
		if m := reDegreeField.FindStringSubmatch(degree); m != nil {
			degree = strings.TrimSpace(m[1])
			field = strings.TrimSpace(m[2])
		}

		out = append(out, models.Education{
			ID:          uuid.New().String(),
			Institution: e.Primary,
			Degree:      degree,
			Field:       field,
			StartDate:   start,
			EndDate:     end,
			Current:     current,
			Description: e.Description,
		})
	}
	return out
}
