package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedInSlug(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/in/john-smith", "john-smith"},
		{"https://linkedin.com/in/john-smith-1a2b3c4/", "john-smith-1a2b3c4"},
		{"linkedin.com/in/maria", "maria"},
		{"LinkedIn.com/in/John-Smith", "John-Smith"},
	}
	for _, tt := range tests {
		slug, err := LinkedInSlug(tt.url)
		require.NoError(t, err, "url %q", tt.url)
		assert.Equal(t, tt.want, slug)
	}
}

func TestLinkedInSlugInvalid(t *testing.T) {
	for _, url := range []string{
		"https://example.com/in/john",
		"https://linkedin.com/company/acme",
		"",
	} {
		_, err := LinkedInSlug(url)
		assert.Error(t, err, "url %q", url)
	}
}

func TestNameFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"john-smith", "John Smith"},
		{"john-smith-1a2b3c4", "John Smith"},
		{"maria", "Maria"},
		{"JOHN-SMITH", "John Smith"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nameFromSlug(tt.slug), "slug %q", tt.slug)
	}
}

func TestLinkedInStrategyAttempt(t *testing.T) {
	s := &LinkedInStrategy{}
	assert.Equal(t, "linkedin-url", s.Name())

	record, err := s.Attempt(context.Background(), Input{
		LinkedInURL: "https://www.linkedin.com/in/john-smith-1a2b3c4",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.PersonalInfo.FullName)
	assert.Equal(t, "https://www.linkedin.com/in/john-smith-1a2b3c4", record.PersonalInfo.LinkedIn)
	assert.Equal(t, "linkedin-url", record.Metadata.ParsingMethod)
	assert.False(t, record.IsEmpty())
}

func TestLinkedInStrategyRejectsNonProfileURL(t *testing.T) {
	s := &LinkedInStrategy{}
	_, err := s.Attempt(context.Background(), Input{LinkedInURL: "https://example.com"})
	assert.Error(t, err)
}
