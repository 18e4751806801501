package services

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCRService extracts text from raster images (and scanned PDFs rendered
// to images) via tesseract.
type OCRService interface {
	ExtractText(data []byte) (string, error)
}

type ocrService struct {
	languages []string
}

func NewOCRService(languages ...string) OCRService {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &ocrService{languages: languages}
}

func (o *ocrService) ExtractText(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(o.languages...); err != nil {
		return "", fmt.Errorf("failed to set ocr language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to load image for ocr: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr extraction failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("ocr produced no text")
	}
	return text, nil
}
