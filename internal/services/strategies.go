package services

import (
	"context"
	"strings"
	"time"

	"resume-parser/internal/models"
	"resume-parser/internal/parser"
)

// RemoteEnhancedStrategy sends recovered text to the network extraction
// service. It sits after the local strategies in the chain.
type RemoteEnhancedStrategy struct {
	Client RemoteParserClient
}

func (s *RemoteEnhancedStrategy) Name() string { return "remote-enhanced" }

func (s *RemoteEnhancedStrategy) Attempt(ctx context.Context, in parser.Input) (*models.ResumeRecord, error) {
	content := contentForRemote(in)
	if strings.TrimSpace(content) == "" {
		return nil, parser.ErrEmptyContent
	}

	record, err := s.Client.Parse(ctx, content, string(in.Format))
	if err != nil {
		return nil, err
	}
	stampMetadata(record, s.Name(), in)
	return record, nil
}

// AIStrategy is the last-resort remote extractor: a generative model
// prompted for a structured record.
type AIStrategy struct {
	Gemini GeminiService
}

func (s *AIStrategy) Name() string { return "remote-ai" }

func (s *AIStrategy) Attempt(ctx context.Context, in parser.Input) (*models.ResumeRecord, error) {
	content := contentForRemote(in)
	if strings.TrimSpace(content) == "" {
		return nil, parser.ErrEmptyContent
	}

	record, err := s.Gemini.ExtractResume(ctx, content, string(in.Format))
	if err != nil {
		return nil, err
	}
	stampMetadata(record, s.Name(), in)
	return record, nil
}

// OCRStrategy heads the image branch: tesseract text extraction followed
// by the shared heuristic extractors.
type OCRStrategy struct {
	OCR     OCRService
	Options parser.ExtractionOptions
}

func (s *OCRStrategy) Name() string { return "image-ocr" }

func (s *OCRStrategy) Attempt(ctx context.Context, in parser.Input) (*models.ResumeRecord, error) {
	text, err := s.OCR.ExtractText(in.Data)
	if err != nil {
		return nil, err
	}

	text = parser.CollapseWhitespace(text)
	if parser.IsCorrupted(text, s.Options.Thresholds) {
		return nil, parser.ErrCorruptedData
	}

	record := parser.ExtractRecord(text, s.Options)
	stampMetadata(record, s.Name(), in)
	return record, nil
}

func contentForRemote(in parser.Input) string {
	if in.Format == parser.FormatLinkedInURL {
		return in.LinkedInURL
	}
	return parser.RecoverText(in)
}

func stampMetadata(record *models.ResumeRecord, method string, in parser.Input) {
	record.Metadata.ParsingMethod = method
	record.Metadata.ParsedAt = time.Now().UTC()
	record.Metadata.SourceFileType = string(in.Format)
	record.Metadata.SourceFileSize = int64(len(in.Data))
}
