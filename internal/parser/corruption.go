package parser

import (
	"regexp"
	"strings"

	"resume-parser/internal/models"
)

// Thresholds are the empirically tuned corruption cutoffs. They are kept
// configurable rather than hardcoded because the values encode business
// rules, not derivable semantics.
type Thresholds struct {
	// RawContent is the minimum score on extracted text that flips the
	// pipeline into a degraded/cleaned path.
	RawContent int
	// PersonalFields is the minimum score across structured personal-info
	// values. Higher than RawContent because each signal there is weak on
	// its own (short names, unusual titles) and must co-occur.
	PersonalFields int
}

func DefaultThresholds() Thresholds {
	return Thresholds{RawContent: 2, PersonalFields: 3}
}

var corruptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`%PDF-`),
	regexp.MustCompile(`\bobj\b|\bendobj\b`),
	regexp.MustCompile(`\bstream\b|\bendstream\b`),
	regexp.MustCompile(`\bxref\b|\btrailer\b`),
	regexp.MustCompile(`\[Content_Types\]\.xml|word/document\.xml|PK\x03\x04`),
	regexp.MustCompile(`<\?xml|<w:`),
	regexp.MustCompile("�"),
	regexp.MustCompile(`[^\w\s]{3,}`),
	regexp.MustCompile(`\S{41,}`),
}

// CorruptionScore counts independent artifact signals present in text.
// Each pattern contributes at most one point regardless of match count.
func CorruptionScore(text string) int {
	score := 0
	for _, pat := range corruptionPatterns {
		if pat.MatchString(text) {
			score++
		}
	}
	return score
}

// IsCorrupted applies the raw-content threshold.
func IsCorrupted(text string, t Thresholds) bool {
	return CorruptionScore(text) >= t.RawContent
}

var (
	reAlphabetic = regexp.MustCompile(`\p{L}`)
	reMarkupTok  = regexp.MustCompile(`[<>{}\[\]\\]|&#?\w+;`)
)

// PersonalFieldScore scores already-extracted personal-info values across
// several independently weak signals. A name that is merely short never
// trips the threshold on its own.
func PersonalFieldScore(p models.PersonalInfo) int {
	score := 0

	if p.FullName != "" {
		if !reAlphabetic.MatchString(p.FullName) {
			score++
		}
		if len(p.FullName) > 80 || CorruptionScore(p.FullName) > 0 {
			score++
		}
	}
	if p.JobTitle != "" {
		if reMarkupTok.MatchString(p.JobTitle) || CorruptionScore(p.JobTitle) > 0 {
			score++
		}
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		score++
	}
	if p.Location != "" && CorruptionScore(p.Location) > 0 {
		score++
	}

	return score
}

// HasCorruptedPersonalFields applies the structured-field threshold.
func HasCorruptedPersonalFields(p models.PersonalInfo, t Thresholds) bool {
	return PersonalFieldScore(p) >= t.PersonalFields
}

// StripArtifacts removes corruption-pattern matches from a field value.
// It operates value-by-value so a partially good record survives.
func StripArtifacts(s string) string {
	for _, pat := range corruptionPatterns {
		s = pat.ReplaceAllString(s, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}
