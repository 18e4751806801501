package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"resume-parser/internal/models"
)

// technicalVocabulary is the curated term list scanned across the whole
// document when no skill section yields anything. Casing here is the
// canonical display form.
var technicalVocabulary = []string{
	"Go", "Golang", "Python", "Java", "JavaScript", "TypeScript", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "SQL",
	"React", "Vue", "Angular", "Node.js", "Django", "Flask", "Spring",
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "CI/CD",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"RabbitMQ", "GraphQL", "REST", "gRPC", "Microservices",
	"AWS", "Azure", "GCP", "Linux", "Git",
	"Machine Learning", "Deep Learning", "Data Science", "DevOps", "Agile", "Scrum",
}

var (
	reBulletLine   = regexp.MustCompile(`^\s*[-•*▪◦‣]\s*(.+)$`)
	reYearsOfExp   = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`)
	reSkillLevelTk = regexp.MustCompile(`(?i)\b(expert|advanced|proficient|intermediate|beginner|basic|novice)\b`)
)

// ExtractSkills unions three passes over the skill section (bulleted
// lines, comma-separated lines, vocabulary scan) into one deduplicated
// set. Levels are inferred from phrasing near each mention and default to
// intermediate.
func ExtractSkills(sections map[string]string, fullText string) []models.Skill {
	section := sections[SectionSkills]

	seen := make(map[string]bool)
	var out []models.Skill

	add := func(name string, context string) {
		name = strings.Trim(strings.TrimSpace(name), ".,;:")
		if name == "" || len(name) > 60 {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, models.Skill{
			ID:    uuid.New().String(),
			Name:  name,
			Level: inferSkillLevel(name, context),
		})
	}

	for _, line := range strings.Split(section, "\n") {
		if m := reBulletLine.FindStringSubmatch(line); m != nil {
			for _, part := range splitSkillList(m[1]) {
				add(part, line)
			}
			continue
		}
		if strings.Contains(line, ",") {
			for _, part := range splitSkillList(line) {
				add(part, line)
			}
		}
	}

	// Vocabulary pass over the whole document catches skills mentioned in
	// prose instead of a dedicated section.
	lowerText := strings.ToLower(fullText)
	for _, term := range technicalVocabulary {
		if containsTerm(lowerText, strings.ToLower(term)) {
			add(term, levelContext(fullText, term))
		}
	}

	return out
}

func splitSkillList(line string) []string {
	line = strings.TrimSpace(line)
	// "Skills: Go, Python" lines carry a label to drop.
	if i := strings.Index(line, ":"); i >= 0 && i < 30 {
		line = line[i+1:]
	}
	var parts []string
	for _, p := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '/'
	}) {
		p = strings.TrimSpace(p)
		if p != "" && len(p) <= 60 {
			parts = append(parts, p)
		}
	}
	return parts
}

// containsTerm does a word-boundary match so "Go" does not fire on "Google".
func containsTerm(lowerText, lowerTerm string) bool {
	idx := 0
	for {
		i := strings.Index(lowerText[idx:], lowerTerm)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(lowerTerm)
		beforeOK := start == 0 || !isWordRune(rune(lowerText[start-1]))
		afterOK := end == len(lowerText) || !isWordRune(rune(lowerText[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = end
	}
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '+' || r == '#'
}

// levelContext returns a ±100-character window around the first mention of
// term, the span in which qualitative level phrasing counts.
func levelContext(text, term string) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(term))
	if idx < 0 {
		return ""
	}
	start := idx - 100
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + 100
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func inferSkillLevel(name, context string) models.SkillLevel {
	if m := reYearsOfExp.FindStringSubmatch(context); m != nil {
		years, _ := strconv.Atoi(m[1])
		switch {
		case years >= 8:
			return models.SkillExpert
		case years >= 4:
			return models.SkillAdvanced
		case years >= 2:
			return models.SkillIntermediate
		default:
			return models.SkillBeginner
		}
	}
	if m := reSkillLevelTk.FindStringSubmatch(context); m != nil {
		switch strings.ToLower(m[1]) {
		case "expert":
			return models.SkillExpert
		case "advanced", "proficient":
			return models.SkillAdvanced
		case "beginner", "basic", "novice":
			return models.SkillBeginner
		}
	}
	return models.SkillIntermediate
}
