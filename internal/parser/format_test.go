package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySupportedTypes(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        Format
	}{
		{"pdf", "resume.pdf", "application/pdf", FormatPDF},
		{"docx", "resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDocx},
		{"plain text", "resume.txt", "text/plain", FormatPlainText},
		{"html", "resume.html", "text/html", FormatPlainText},
		{"jpeg", "scan.jpg", "image/jpeg", FormatImage},
		{"png", "scan.png", "image/png", FormatImage},
		{"content type with charset", "resume.txt", "text/plain; charset=utf-8", FormatPlainText},
		{"extension fallback", "resume.pdf", "application/octet-stream", FormatPDF},
		{"image extension fallback", "scan.png", "", FormatImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(tt.filename, tt.contentType, 1024)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Format)
			assert.False(t, c.Degraded)
		})
	}
}

func TestClassifySizeCeilings(t *testing.T) {
	// Documents cap at 5 MB, images at 10 MB.
	_, err := Classify("resume.pdf", "application/pdf", MaxDocumentBytes+1)
	var tooLarge *FileTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 5, tooLarge.MaxMB)

	_, err = Classify("scan.png", "image/png", MaxDocumentBytes+1)
	assert.NoError(t, err)

	_, err = Classify("scan.png", "image/png", MaxImageBytes+1)
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 10, tooLarge.MaxMB)

	// Image ceiling applies even when only the extension identifies the type.
	_, err = Classify("scan.png", "", MaxDocumentBytes+1)
	assert.NoError(t, err)
}

func TestClassifyDegradedTypes(t *testing.T) {
	c, err := Classify("resume.rtf", "text/rtf", 1024)
	require.NoError(t, err)
	assert.Equal(t, FormatPlainText, c.Format)
	assert.True(t, c.Degraded)
	assert.NotEmpty(t, c.Warning)

	c, err = Classify("resume.xyz", "application/octet-stream", 1024)
	require.NoError(t, err)
	assert.Equal(t, FormatPlainText, c.Format)
	assert.True(t, c.Degraded)
}

func TestIsLinkedInURL(t *testing.T) {
	assert.True(t, IsLinkedInURL("https://www.linkedin.com/in/john-smith"))
	assert.True(t, IsLinkedInURL("LinkedIn.com/in/john-smith"))
	assert.False(t, IsLinkedInURL("https://linkedin.com/company/acme"))
	assert.False(t, IsLinkedInURL("https://example.com/in/john"))
}
