package parser

import (
	"regexp"
	"strings"
)

// Section names used as segmentation keys.
const (
	SectionHeader         = "header"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionLanguages      = "languages"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionAchievements   = "achievements"
	SectionReferences     = "references"
	SectionContact        = "contact"
)

// headerVocabulary maps canonical header phrases to section names. Matching
// is case-insensitive over the whole line, tolerating a leading numeral
// ("1. EXPERIENCE") and a trailing colon.
var headerVocabulary = map[string]string{
	"summary":            SectionSummary,
	"profile":            SectionSummary,
	"professional summary": SectionSummary,
	"objective":          SectionSummary,
	"about":              SectionSummary,
	"experience":         SectionExperience,
	"work experience":    SectionExperience,
	"professional experience": SectionExperience,
	"employment history": SectionExperience,
	"work history":       SectionExperience,
	"education":          SectionEducation,
	"qualifications":     SectionEducation,
	"academic background": SectionEducation,
	"skills":             SectionSkills,
	"technical skills":   SectionSkills,
	"core competencies":  SectionSkills,
	"competencies":       SectionSkills,
	"languages":          SectionLanguages,
	"certifications":     SectionCertifications,
	"certificates":       SectionCertifications,
	"licenses":           SectionCertifications,
	"projects":           SectionProjects,
	"personal projects":  SectionProjects,
	"achievements":       SectionAchievements,
	"awards":             SectionAchievements,
	"references":         SectionReferences,
	"contact":            SectionContact,
	"contact information": SectionContact,
}

var reHeaderPrefix = regexp.MustCompile(`^\s*(?:\d+[\.\)]\s*)?(.*?)\s*:?\s*$`)

// MatchSectionHeader reports whether line is a recognized section header
// and, if so, which section it opens.
func MatchSectionHeader(line string) (string, bool) {
	m := reHeaderPrefix.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(m[1]))
	if key == "" || len(key) > 40 {
		return "", false
	}
	section, ok := headerVocabulary[key]
	return section, ok
}

// SegmentSections walks normalized text line by line, accumulating content
// under the current section. Unmatched leading content stays under header.
func SegmentSections(text string) map[string]string {
	buffers := make(map[string]*strings.Builder)
	current := SectionHeader

	for _, line := range strings.Split(text, "\n") {
		if section, ok := MatchSectionHeader(line); ok {
			current = section
			if buffers[current] == nil {
				buffers[current] = &strings.Builder{}
			}
			continue
		}
		if buffers[current] == nil {
			buffers[current] = &strings.Builder{}
		}
		buffers[current].WriteString(line)
		buffers[current].WriteByte('\n')
	}

	sections := make(map[string]string, len(buffers))
	for name, buf := range buffers {
		if trimmed := strings.TrimSpace(buf.String()); trimmed != "" {
			sections[name] = trimmed
		}
	}
	return sections
}
