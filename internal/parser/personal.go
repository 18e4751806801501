package parser

import (
	"regexp"
	"strings"

	"resume-parser/internal/models"
)

var (
	reEmail    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone    = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	reLinkedIn = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+`)
	reWebsite  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-z0-9\-]+\.[a-z]{2,}(?:/[^\s]*)?`)
)

// Location patterns in priority order: explicit phrasing first, then
// "City, Country" / "City, ST" shapes.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:located in|based in|location:?)\s+([A-Z][A-Za-z .\-]+(?:,\s*[A-Z][A-Za-z .\-]+)?)`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:[ \-][A-Z][a-z]+)*),\s*([A-Z][a-z]+(?:[ \-][A-Z][a-z]+)+)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:[ \-][A-Z][a-z]+)*),\s*([A-Z]{2})\b`),
}

// ExtractPersonalInfo pulls contact details out of the header-adjacent
// sections. Name and job title come from the first qualifying lines;
// everything else is pattern-driven.
func ExtractPersonalInfo(sections map[string]string) models.PersonalInfo {
	text := joinSections(sections, SectionHeader, SectionSummary, SectionContact)

	info := models.PersonalInfo{
		Email:    reEmail.FindString(text),
		LinkedIn: strings.TrimRight(reLinkedIn.FindString(text), "/"),
	}

	if m := rePhone.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}

	info.Website = findWebsite(text, info.Email, info.LinkedIn)

	for _, pat := range locationPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if len(m) > 2 && m[2] != "" {
				info.Location = m[1] + ", " + m[2]
			} else {
				info.Location = strings.TrimSpace(m[1])
			}
			break
		}
	}

	info.FullName, info.JobTitle = headerNameAndTitle(sections[SectionHeader])
	return info
}

// headerNameAndTitle takes the first qualifying non-empty line as the name
// and the second as the job title. A qualifying line is short, not an
// email, not a phone number and not a URL.
func headerNameAndTitle(header string) (name, title string) {
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(line)
		if !qualifiesAsIdentityLine(line) {
			continue
		}
		if name == "" {
			name = line
			continue
		}
		title = line
		break
	}
	return name, title
}

func qualifiesAsIdentityLine(line string) bool {
	if line == "" || len(line) >= 50 {
		return false
	}
	if reEmail.MatchString(line) || reLinkedIn.MatchString(line) {
		return false
	}
	if rePhone.MatchString(line) {
		return false
	}
	if strings.Contains(line, "://") || strings.HasPrefix(strings.ToLower(line), "www.") {
		return false
	}
	return reAlphabetic.MatchString(line)
}

// findWebsite returns the first URL-looking token that is neither the
// email's domain nor a LinkedIn reference.
func findWebsite(text, email, linkedin string) string {
	for _, m := range reWebsite.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "linkedin.com") {
			continue
		}
		if email != "" && strings.Contains(email, m) {
			continue
		}
		// Bare domains picked out of email addresses are false positives.
		if email != "" && strings.HasSuffix(email, m) {
			continue
		}
		if !strings.Contains(lower, "://") && !strings.HasPrefix(lower, "www.") {
			continue
		}
		return strings.TrimRight(m, "/.,")
	}
	return ""
}

func joinSections(sections map[string]string, names ...string) string {
	var parts []string
	for _, name := range names {
		if s := sections[name]; s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
