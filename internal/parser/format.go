package parser

import (
	"path/filepath"
	"strings"
)

// Format is the processing route chosen for a payload.
type Format string

const (
	FormatPlainText   Format = "text"
	FormatPDF         Format = "pdf"
	FormatDocx        Format = "docx"
	FormatImage       Format = "image"
	FormatLinkedInURL Format = "linkedin"
)

const (
	// MaxDocumentBytes is the ceiling for text-bearing documents.
	MaxDocumentBytes = 5 * 1024 * 1024
	// MaxImageBytes is the ceiling for raster images (and PDFs routed to OCR).
	MaxImageBytes = 10 * 1024 * 1024
)

var documentContentTypes = map[string]Format{
	"application/pdf":    FormatPDF,
	"application/msword": FormatDocx,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDocx,
	"text/plain": FormatPlainText,
	"text/rtf":   FormatPlainText,
	"text/html":  FormatPlainText,
}

var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}

// Classification is the classifier verdict for a payload.
type Classification struct {
	Format Format
	// Degraded is set when the type is not officially supported but
	// best-effort text extraction is still worth attempting (e.g. RTF).
	Degraded bool
	Warning  string
}

// IsLinkedInURL reports whether s references a LinkedIn profile.
func IsLinkedInURL(s string) bool {
	return strings.Contains(strings.ToLower(s), "linkedin.com/in/")
}

// Classify picks a processing route from the declared content type, the
// filename extension and the payload size. Size violations are terminal;
// unknown but text-like types come back as degraded plain text.
func Classify(filename, contentType string, size int64) (Classification, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	if imageContentTypes[ct] {
		if size > MaxImageBytes {
			return Classification{}, &FileTooLargeError{Size: size, MaxMB: MaxImageBytes / (1024 * 1024)}
		}
		return Classification{Format: FormatImage}, nil
	}

	format, known := documentContentTypes[ct]
	if !known {
		format, known = formatFromExtension(filename)
	}
	if !known {
		// Unsupported but possibly readable: accept as degraded text.
		if size > MaxDocumentBytes {
			return Classification{}, &FileTooLargeError{Size: size, MaxMB: MaxDocumentBytes / (1024 * 1024)}
		}
		warn := (&UnsupportedTypeError{ContentType: contentType}).Error()
		return Classification{Format: FormatPlainText, Degraded: true, Warning: warn}, nil
	}

	ceiling := int64(MaxDocumentBytes)
	if format == FormatImage {
		ceiling = MaxImageBytes
	}
	if size > ceiling {
		return Classification{}, &FileTooLargeError{Size: size, MaxMB: int(ceiling / (1024 * 1024))}
	}

	if ct == "text/rtf" || strings.EqualFold(filepath.Ext(filename), ".rtf") {
		warn := (&UnsupportedTypeError{ContentType: "text/rtf"}).Error()
		return Classification{Format: format, Degraded: true, Warning: warn}, nil
	}

	return Classification{Format: format}, nil
}

func formatFromExtension(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx", ".doc":
		return FormatDocx, true
	case ".txt", ".rtf", ".html", ".htm":
		return FormatPlainText, true
	case ".jpg", ".jpeg", ".png", ".webp", ".heic":
		return FormatImage, true
	default:
		return "", false
	}
}
