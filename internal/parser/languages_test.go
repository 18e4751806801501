package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/models"
)

func TestExtractLanguagesColonPattern(t *testing.T) {
	section := "English - Native\nGerman: Basic"
	out := ExtractLanguages(map[string]string{SectionLanguages: section}, false)
	require.Len(t, out, 2)

	assert.Equal(t, "English", out[0].Name)
	assert.Equal(t, models.ProficiencyNative, out[0].Proficiency)
	assert.Equal(t, "German", out[1].Name)
	assert.Equal(t, models.ProficiencyBasic, out[1].Proficiency)
}

func TestExtractLanguagesVocabularyFallback(t *testing.T) {
	section := "Fluent Spanish"
	out := ExtractLanguages(map[string]string{SectionLanguages: section}, false)
	require.Len(t, out, 1)

	assert.Equal(t, "Spanish", out[0].Name)
	assert.Equal(t, models.ProficiencyFluent, out[0].Proficiency)
}

func TestExtractLanguagesProficiencyPhrases(t *testing.T) {
	tests := []struct {
		text string
		want models.LanguageProficiency
	}{
		{"mother tongue", models.ProficiencyNative},
		{"bilingual", models.ProficiencyNative},
		{"full professional proficiency", models.ProficiencyFluent},
		{"working proficiency", models.ProficiencyConversational},
		{"elementary", models.ProficiencyBasic},
		{"no qualifier", models.ProficiencyConversational},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, proficiencyFromText(tt.text), "text %q", tt.text)
	}
}

func TestExtractLanguagesDefaultEnglish(t *testing.T) {
	out := ExtractLanguages(map[string]string{}, true)
	require.Len(t, out, 1)
	assert.Equal(t, "English", out[0].Name)
	assert.Equal(t, models.ProficiencyFluent, out[0].Proficiency)
	assert.NotEmpty(t, out[0].ID)

	assert.Empty(t, ExtractLanguages(map[string]string{}, false))
}

func TestExtractLanguagesNoDefaultWhenSectionHasContent(t *testing.T) {
	section := "French: Conversational"
	out := ExtractLanguages(map[string]string{SectionLanguages: section}, true)
	require.Len(t, out, 1)
	assert.Equal(t, "French", out[0].Name)
}
