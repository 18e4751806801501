package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resume-parser/internal/models"
)

var languageVocabulary = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Dutch", "Russian", "Polish", "Ukrainian", "Turkish", "Arabic",
	"Hebrew", "Hindi", "Mandarin", "Chinese", "Cantonese", "Japanese",
	"Korean", "Vietnamese", "Thai", "Indonesian", "Swedish", "Norwegian",
	"Danish", "Finnish", "Greek", "Czech", "Romanian", "Hungarian",
}

var (
	reLangColon    = regexp.MustCompile(`(?i)^\s*[-•*]?\s*([A-Za-z]+)\s*[:\-–]\s*([A-Za-z][A-Za-z \-]+)$`)
	reProficiency  = regexp.MustCompile(`(?i)\b(native|mother\s*tongue|bilingual|fluent|full\s+professional|advanced|conversational|professional|working|intermediate|basic|elementary|beginner)\b`)
)

// ExtractLanguages reads the languages section with a "Language:
// Proficiency" pattern first and falls back to vocabulary scanning. When no
// language signal exists anywhere, English is assumed at working
// proficiency (defaultEnglish toggles that rule).
func ExtractLanguages(sections map[string]string, defaultEnglish bool) []models.Language {
	section := sections[SectionLanguages]

	seen := make(map[string]bool)
	var out []models.Language

	add := func(name string, proficiency models.LanguageProficiency) {
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, models.Language{
			ID:          uuid.New().String(),
			Name:        name,
			Proficiency: proficiency,
		})
	}

	for _, line := range strings.Split(section, "\n") {
		if m := reLangColon.FindStringSubmatch(line); m != nil {
			name := canonicalLanguage(m[1])
			if name == "" {
				continue
			}
			add(name, proficiencyFromText(m[2]))
		}
	}

	// Vocabulary fallback over the same section for lines the pattern
	// missed ("Fluent English and basic German").
	if section != "" {
		for _, lang := range languageVocabulary {
			if containsTerm(strings.ToLower(section), strings.ToLower(lang)) {
				add(lang, proficiencyFromText(levelContext(section, lang)))
			}
		}
	}

	if len(out) == 0 && defaultEnglish {
		add("English", models.ProficiencyFluent)
	}

	return out
}

func canonicalLanguage(name string) string {
	for _, lang := range languageVocabulary {
		if strings.EqualFold(lang, name) {
			return lang
		}
	}
	return ""
}

func proficiencyFromText(s string) models.LanguageProficiency {
	m := reProficiency.FindStringSubmatch(s)
	if m == nil {
		return models.ProficiencyConversational
	}
	switch strings.ToLower(strings.Join(strings.Fields(m[1]), " ")) {
	case "native", "mother tongue", "bilingual":
		return models.ProficiencyNative
	case "fluent", "full professional", "advanced":
		return models.ProficiencyFluent
	case "basic", "elementary", "beginner":
		return models.ProficiencyBasic
	default:
		return models.ProficiencyConversational
	}
}
