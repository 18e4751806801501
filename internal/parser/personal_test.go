package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPersonalInfo(t *testing.T) {
	header := "John Smith\n" +
		"Senior Software Engineer\n" +
		"john.smith@example.com\n" +
		"+1 555 123 4567\n" +
		"San Francisco, CA\n" +
		"linkedin.com/in/john-smith\n" +
		"https://johnsmith.dev"

	info := ExtractPersonalInfo(map[string]string{SectionHeader: header})

	assert.Equal(t, "John Smith", info.FullName)
	assert.Equal(t, "Senior Software Engineer", info.JobTitle)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "+1 555 123 4567", info.Phone)
	assert.Equal(t, "San Francisco, CA", info.Location)
	assert.Equal(t, "linkedin.com/in/john-smith", info.LinkedIn)
	assert.Equal(t, "https://johnsmith.dev", info.Website)
}

func TestExtractPersonalInfoCityCountry(t *testing.T) {
	header := "Maria Garcia\nData Scientist\nBased in Buenos Aires"
	info := ExtractPersonalInfo(map[string]string{SectionHeader: header})
	assert.Equal(t, "Buenos Aires", info.Location)
}

func TestExtractPersonalInfoContactSection(t *testing.T) {
	sections := map[string]string{
		SectionHeader:  "Jane Doe",
		SectionContact: "Email: jane@doe.io\nPhone: +44 20 7946 0958",
	}
	info := ExtractPersonalInfo(sections)
	assert.Equal(t, "jane@doe.io", info.Email)
	assert.NotEmpty(t, info.Phone)
}

func TestExtractPersonalInfoSkipsContactLinesForName(t *testing.T) {
	// Email and URL lines before the name must not be mistaken for it.
	header := "john@example.com\nwww.example.com\nJohn Smith\nEngineer"
	info := ExtractPersonalInfo(map[string]string{SectionHeader: header})
	assert.Equal(t, "John Smith", info.FullName)
	assert.Equal(t, "Engineer", info.JobTitle)
}

func TestExtractPersonalInfoEmptySections(t *testing.T) {
	info := ExtractPersonalInfo(map[string]string{})
	assert.Equal(t, "", info.FullName)
	assert.Equal(t, "", info.Email)
}
