package parser

import (
	"github.com/google/uuid"

	"resume-parser/internal/models"
)

// ExtractExperience parses the experience section into typed entries.
// Entry ids are assigned here, once, and survive merging.
func ExtractExperience(sections map[string]string) []models.Experience {
	section := sections[SectionExperience]
	if section == "" {
		return nil
	}

	var out []models.Experience
	for _, e := range collectEntries(section) {
		start, end, current := dateRange(e.entryMatch)
		out = append(out, models.Experience{
			ID:          uuid.New().String(),
			Company:     e.Primary,
			Position:    e.Secondary,
			StartDate:   start,
			EndDate:     end,
			Current:     current,
			Description: e.Description,
		})
	}
	return out
}
