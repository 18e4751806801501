package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSectionHeader(t *testing.T) {
	tests := []struct {
		line    string
		section string
		ok      bool
	}{
		{"EXPERIENCE", SectionExperience, true},
		{"Work Experience", SectionExperience, true},
		{"1. EXPERIENCE", SectionExperience, true},
		{"2) Education:", SectionEducation, true},
		{"Technical Skills:", SectionSkills, true},
		{"languages", SectionLanguages, true},
		{"Professional Summary", SectionSummary, true},
		{"Led a team of four engineers", "", false},
		{"", "", false},
		{"Experience shows that good habits compound over time", "", false},
	}

	for _, tt := range tests {
		section, ok := MatchSectionHeader(tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.section, section, "line %q", tt.line)
	}
}

func TestSegmentSections(t *testing.T) {
	text := "John Smith\nSenior Engineer\n\n" +
		"SUMMARY\nBackend engineer focused on reliability.\n\n" +
		"Work Experience\nAcme Corp – Senior Engineer (2020 – Present)\n\n" +
		"EDUCATION:\nMIT – BSc in Computer Science (2012 – 2016)\n\n" +
		"Skills\nGo, PostgreSQL, Docker"

	sections := SegmentSections(text)

	require.Contains(t, sections, SectionHeader)
	assert.Contains(t, sections[SectionHeader], "John Smith")

	require.Contains(t, sections, SectionSummary)
	assert.Equal(t, "Backend engineer focused on reliability.", sections[SectionSummary])

	require.Contains(t, sections, SectionExperience)
	assert.Contains(t, sections[SectionExperience], "Acme Corp")

	require.Contains(t, sections, SectionEducation)
	assert.Contains(t, sections[SectionEducation], "MIT")

	require.Contains(t, sections, SectionSkills)
	assert.Contains(t, sections[SectionSkills], "PostgreSQL")
}

func TestSegmentSectionsEmptySectionsOmitted(t *testing.T) {
	sections := SegmentSections("John Smith\n\nSKILLS\n\n")
	assert.Contains(t, sections, SectionHeader)
	assert.NotContains(t, sections, SectionSkills)
}

func TestSegmentSectionsNoHeaders(t *testing.T) {
	sections := SegmentSections("Just one paragraph of prose without any headers.")
	require.Len(t, sections, 1)
	assert.Contains(t, sections[SectionHeader], "prose")
}
