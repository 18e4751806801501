package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/models"
)

func TestMergeScalarNonEmptyWins(t *testing.T) {
	current := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{FullName: "John Smith", Phone: "+1 555 000"},
		Summary:      "Old summary.",
	}
	incoming := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{Email: "john@example.com", Phone: "+1 555 111"},
		Summary:      "",
	}

	merged := Merge(current, incoming)

	assert.Equal(t, "John Smith", merged.PersonalInfo.FullName)
	assert.Equal(t, "john@example.com", merged.PersonalInfo.Email)
	assert.Equal(t, "+1 555 111", merged.PersonalInfo.Phone)
	assert.Equal(t, "Old summary.", merged.Summary)
}

func TestMergeExperienceByID(t *testing.T) {
	current := &models.ResumeRecord{
		Experience: []models.Experience{
			{ID: "1", Company: "Acme", Position: "Engineer"},
			{ID: "2", Company: "Globex", Position: "Developer"},
		},
	}
	incoming := &models.ResumeRecord{
		Experience: []models.Experience{
			{ID: "2", Company: "Globex", Position: "Senior Developer"},
			{ID: "3", Company: "Initech", Position: "Lead"},
		},
	}

	merged := Merge(current, incoming)

	require.Len(t, merged.Experience, 3)
	// Insertion order: current entries first, new ids appended.
	assert.Equal(t, "1", merged.Experience[0].ID)
	assert.Equal(t, "2", merged.Experience[1].ID)
	assert.Equal(t, "3", merged.Experience[2].ID)
	// Matching id takes the incoming version wholesale.
	assert.Equal(t, "Senior Developer", merged.Experience[1].Position)
}

func TestMergeSkillsByName(t *testing.T) {
	current := &models.ResumeRecord{
		Skills: []models.Skill{{ID: "s1", Name: "Go", Level: models.SkillIntermediate}},
	}
	incoming := &models.ResumeRecord{
		Skills: []models.Skill{
			{ID: "s9", Name: "go", Level: models.SkillExpert},
			{ID: "s2", Name: "Docker", Level: models.SkillAdvanced},
		},
	}

	merged := Merge(current, incoming)

	require.Len(t, merged.Skills, 2)
	// Name is the identity; the established id survives the overwrite.
	assert.Equal(t, "s1", merged.Skills[0].ID)
	assert.Equal(t, models.SkillExpert, merged.Skills[0].Level)
	assert.Equal(t, "Docker", merged.Skills[1].Name)
}

func TestMergeStringListsDeduplicate(t *testing.T) {
	current := &models.ResumeRecord{Certifications: []string{"AWS Certified", "CKA"}}
	incoming := &models.ResumeRecord{Certifications: []string{"aws certified", "GCP Associate"}}

	merged := Merge(current, incoming)

	assert.Equal(t, []string{"AWS Certified", "CKA", "GCP Associate"}, merged.Certifications)
}

func TestMergeMetadata(t *testing.T) {
	before := time.Now().UTC()
	current := &models.ResumeRecord{
		Metadata: models.ParseMetadata{ParsingMethod: "enhanced-local", SourceFileType: "pdf"},
	}
	incoming := &models.ResumeRecord{
		Metadata: models.ParseMetadata{ParsingMethod: "remote-ai"},
	}

	merged := Merge(current, incoming)

	assert.Equal(t, "remote-ai", merged.Metadata.ParsingMethod)
	assert.Equal(t, "pdf", merged.Metadata.SourceFileType)
	assert.False(t, merged.Metadata.LastUpdated.Before(before))
}

func TestMergeNilInputs(t *testing.T) {
	record := &models.ResumeRecord{Summary: "Engineer."}

	merged := Merge(record, nil)
	assert.Equal(t, "Engineer.", merged.Summary)

	merged = Merge(nil, record)
	assert.Equal(t, "Engineer.", merged.Summary)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	current := &models.ResumeRecord{
		Skills: []models.Skill{{ID: "s1", Name: "Go", Level: models.SkillIntermediate}},
	}
	incoming := &models.ResumeRecord{
		Skills: []models.Skill{{ID: "s9", Name: "Go", Level: models.SkillExpert}},
	}

	Merge(current, incoming)

	assert.Equal(t, models.SkillIntermediate, current.Skills[0].Level)
	assert.Equal(t, "s9", incoming.Skills[0].ID)
}

func TestMergeRepeatedIsStable(t *testing.T) {
	current := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{FullName: "John Smith"},
		Experience:   []models.Experience{{ID: "1", Company: "Acme"}},
		Skills:       []models.Skill{{ID: "s1", Name: "Go"}},
	}
	incoming := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{Email: "john@example.com"},
		Experience:   []models.Experience{{ID: "2", Company: "Globex"}},
		Skills:       []models.Skill{{ID: "s2", Name: "go", Level: models.SkillExpert}},
	}

	once := Merge(current, incoming)
	twice := Merge(once, incoming)

	// The refresh stamp always moves; everything else is a fixed point.
	once.Metadata.LastUpdated = time.Time{}
	twice.Metadata.LastUpdated = time.Time{}
	assert.Equal(t, once, twice)
}
