package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser/internal/models"
)

func TestCorruptionScoreCleanText(t *testing.T) {
	clean := "Experienced software engineer with a decade of work on distributed systems.\n" +
		"Led platform teams at two companies and shipped several large migrations."
	assert.Equal(t, 0, CorruptionScore(clean))
	assert.False(t, IsCorrupted(clean, DefaultThresholds()))
}

func TestCorruptionScorePDFDump(t *testing.T) {
	dump := "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\nxref\n0 5\ntrailer"
	score := CorruptionScore(dump)
	assert.GreaterOrEqual(t, score, 3)
	assert.True(t, IsCorrupted(dump, DefaultThresholds()))
}

func TestCorruptionScoreSingleSignalNotCorrupted(t *testing.T) {
	// One replacement character alone stays under the raw threshold.
	text := "John Smith\nSenior Engineer at Acme� Corp"
	assert.Equal(t, 1, CorruptionScore(text))
	assert.False(t, IsCorrupted(text, DefaultThresholds()))
}

func TestCorruptionScoreCountsEachPatternOnce(t *testing.T) {
	// Many matches of the same pattern still contribute one point.
	text := strings.Repeat("� ", 50)
	assert.Equal(t, CorruptionScore("�"), CorruptionScore(text))
}

func TestPersonalFieldScore(t *testing.T) {
	clean := models.PersonalInfo{
		FullName: "John Smith",
		JobTitle: "Senior Engineer",
		Email:    "john@example.com",
		Location: "Berlin, Germany",
	}
	assert.Equal(t, 0, PersonalFieldScore(clean))
	assert.False(t, HasCorruptedPersonalFields(clean, DefaultThresholds()))

	corrupted := models.PersonalInfo{
		FullName: "1234 5678",
		JobTitle: "<w:t>Engineer</w:t>",
		Email:    "not-an-email",
	}
	assert.GreaterOrEqual(t, PersonalFieldScore(corrupted), 3)
	assert.True(t, HasCorruptedPersonalFields(corrupted, DefaultThresholds()))
}

func TestPersonalFieldScoreShortNameIsNotASignal(t *testing.T) {
	p := models.PersonalInfo{FullName: "Li Na"}
	assert.Equal(t, 0, PersonalFieldScore(p))
}

func TestStripArtifacts(t *testing.T) {
	out := StripArtifacts("Acme %PDF-1.4 Corp")
	assert.NotContains(t, out, "%PDF-")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Corp")
}
