package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/models"
)

func TestValidateEmptyRecord(t *testing.T) {
	assert.ErrorIs(t, Validate(&models.ResumeRecord{}), ErrEmptyContent)

	withSummary := &models.ResumeRecord{Summary: "Backend engineer."}
	assert.NoError(t, Validate(withSummary))

	withEmail := &models.ResumeRecord{PersonalInfo: models.PersonalInfo{Email: "a@b.co"}}
	assert.NoError(t, Validate(withEmail))
}

func TestSanitizeClearsCorruptedPersonalFields(t *testing.T) {
	record := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{
			FullName: "#### $$$$ 1234",
			JobTitle: "<w:t>dev</w:t>",
			Email:    "missing-at",
		},
		Skills: []models.Skill{{Name: "Go"}},
	}

	Sanitize(record, DefaultThresholds())

	assert.Equal(t, models.PersonalInfo{}, record.PersonalInfo)
	assert.NotEmpty(t, record.Summary)
	assert.NotZero(t, record.Metadata.CorruptionScore)
	assert.NotEmpty(t, record.Metadata.ValidationWarnings)

	// The rest of the record survives.
	require.Len(t, record.Skills, 1)
	assert.Equal(t, "Go", record.Skills[0].Name)
}

func TestSanitizeKeepsCleanPersonalFields(t *testing.T) {
	record := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{
			FullName: "John Smith",
			Email:    "john@example.com",
		},
		Summary: "Engineer.",
	}

	Sanitize(record, DefaultThresholds())

	assert.Equal(t, "John Smith", record.PersonalInfo.FullName)
	assert.Equal(t, "john@example.com", record.PersonalInfo.Email)
	assert.Empty(t, record.Metadata.ValidationWarnings)
}

func TestSanitizeStripsFieldArtifacts(t *testing.T) {
	record := &models.ResumeRecord{
		Summary: "Engineer.",
		Experience: []models.Experience{
			{ID: "e1", Company: "Acme %PDF-1.4 Corp", Position: "Engineer"},
		},
	}

	Sanitize(record, DefaultThresholds())

	assert.NotContains(t, record.Experience[0].Company, "%PDF-")
	assert.Contains(t, record.Experience[0].Company, "Acme")
}

func TestSanitizeNormalizesEntries(t *testing.T) {
	record := &models.ResumeRecord{
		Summary: "Engineer.",
		Experience: []models.Experience{
			{Company: "Acme", Current: true, EndDate: "2024-01"},
		},
		Education: []models.Education{
			{Institution: "MIT", Current: true, EndDate: "2025-06"},
		},
		Skills:    []models.Skill{{Name: "Go"}},
		Languages: []models.Language{{Name: "English"}},
	}

	Sanitize(record, DefaultThresholds())

	assert.NotEmpty(t, record.Experience[0].ID)
	assert.Equal(t, "", record.Experience[0].EndDate)
	assert.NotEmpty(t, record.Education[0].ID)
	assert.Equal(t, "", record.Education[0].EndDate)
	assert.Equal(t, models.SkillIntermediate, record.Skills[0].Level)
	assert.NotEmpty(t, record.Skills[0].ID)
	assert.Equal(t, models.ProficiencyConversational, record.Languages[0].Proficiency)
	assert.NotEmpty(t, record.Languages[0].ID)
}

func TestSanitizeNilRecord(t *testing.T) {
	assert.NotPanics(t, func() { Sanitize(nil, DefaultThresholds()) })
}
