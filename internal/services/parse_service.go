package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/models"
	"resume-parser/internal/parser"
	"resume-parser/internal/repositories"
)

// ParseService executes one parse job end to end: load the artifact, run
// the strategy chain, sanitize, merge with any prior record, persist.
type ParseService interface {
	ParseResume(ctx context.Context, jobID uuid.UUID) error
}

// ChainTimeouts carries the per-strategy deadlines for remote entries.
type ChainTimeouts struct {
	RemoteEnhanced time.Duration
	RemoteAI       time.Duration
}

type parseService struct {
	jobRepo        repositories.ParseJobRepository
	docRepo        repositories.DocumentRepository
	storageService StorageService
	orchestrator   *parser.Orchestrator
	linkedinChain  *parser.Orchestrator
	options        parser.ExtractionOptions
}

func NewParseService(
	jobRepo repositories.ParseJobRepository,
	docRepo repositories.DocumentRepository,
	storageService StorageService,
	remoteClient RemoteParserClient,
	geminiService GeminiService,
	ocrService OCRService,
	options parser.ExtractionOptions,
	timeouts ChainTimeouts,
	notifier parser.Notifier,
) ParseService {
	var remote, ai parser.ChainEntry
	documentChain := []parser.ChainEntry{
		{Strategy: &parser.EnhancedLocalStrategy{Options: options}},
		{Strategy: &parser.LegacyRegexStrategy{Options: options}},
	}
	imageChain := []parser.ChainEntry{}
	linkedinChain := []parser.ChainEntry{}

	if ocrService != nil {
		imageChain = append(imageChain, parser.ChainEntry{
			Strategy: &OCRStrategy{OCR: ocrService, Options: options},
		})
	}
	if remoteClient != nil {
		remote = parser.ChainEntry{
			Strategy: &RemoteEnhancedStrategy{Client: remoteClient},
			Timeout:  timeouts.RemoteEnhanced,
		}
		documentChain = append(documentChain, remote)
		linkedinChain = append(linkedinChain, remote)
	}
	if geminiService != nil {
		ai = parser.ChainEntry{
			Strategy: &AIStrategy{Gemini: geminiService},
			Timeout:  timeouts.RemoteAI,
		}
		documentChain = append(documentChain, ai)
		imageChain = append(imageChain, ai)
		linkedinChain = append(linkedinChain, ai)
	}

	// The slug seed closes the LinkedIn chain so a profile URL always
	// yields at least a name guess and the canonical link.
	linkedinChain = append(linkedinChain, parser.ChainEntry{Strategy: &parser.LinkedInStrategy{}})

	return &parseService{
		jobRepo:        jobRepo,
		docRepo:        docRepo,
		storageService: storageService,
		orchestrator:   parser.NewOrchestrator(documentChain, imageChain, options.Thresholds, notifier),
		linkedinChain:  parser.NewOrchestrator(linkedinChain, nil, options.Thresholds, notifier),
		options:        options,
	}
}

// ParseResume implements ParseService.
func (s *parseService) ParseResume(ctx context.Context, jobID uuid.UUID) error {
	if err := s.jobRepo.UpdateStatus(jobID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting parse for job ID: %s", jobID)

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("failed to get parse job: %w", err)
	}

	input, err := s.buildInput(job)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return err
	}

	orchestrator := s.orchestrator
	if input.Format == parser.FormatLinkedInURL {
		orchestrator = s.linkedinChain
	}

	record, err := orchestrator.Parse(ctx, input)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("parse failed: %w", err)
	}

	// Re-parses of the same artifact merge into the last known record so
	// manual corrections and earlier extractions survive.
	if previous := s.previousRecord(job); previous != nil {
		record = parser.Merge(previous, record)
	}

	resultJSON, err := json.Marshal(record)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := s.jobRepo.UpdateResult(jobID, string(resultJSON), record.Metadata.ParsingMethod); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Parse completed for job %s (method: %s)", jobID, record.Metadata.ParsingMethod)
	return nil
}

func (s *parseService) buildInput(job *models.ParseJob) (parser.Input, error) {
	if job.LinkedInURL != nil && *job.LinkedInURL != "" {
		if !parser.IsLinkedInURL(*job.LinkedInURL) {
			return parser.Input{}, fmt.Errorf("invalid linkedin profile url")
		}
		return parser.Input{
			Format:      parser.FormatLinkedInURL,
			LinkedInURL: *job.LinkedInURL,
		}, nil
	}

	if job.DocumentID == nil {
		return parser.Input{}, fmt.Errorf("parse job has no document and no linkedin url")
	}

	doc, err := s.docRepo.FindByID(*job.DocumentID)
	if err != nil {
		return parser.Input{}, fmt.Errorf("document not found: %w", err)
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		return parser.Input{}, fmt.Errorf("failed to read document: %w", err)
	}

	classification, err := parser.Classify(doc.OriginalFileName, doc.ContentType, int64(len(data)))
	if err != nil {
		return parser.Input{}, err
	}

	return parser.Input{
		Filename:    doc.OriginalFileName,
		ContentType: doc.ContentType,
		Data:        data,
		Format:      classification.Format,
	}, nil
}

// previousRecord loads the most recent completed record for the same
// artifact, if any.
func (s *parseService) previousRecord(job *models.ParseJob) *models.ResumeRecord {
	var prior *models.ParseJob
	var err error

	switch {
	case job.DocumentID != nil:
		prior, err = s.jobRepo.FindLatestCompletedForDocument(*job.DocumentID, job.ID)
	case job.LinkedInURL != nil:
		prior, err = s.jobRepo.FindLatestCompletedForURL(*job.LinkedInURL, job.ID)
	}
	if err != nil || prior == nil || prior.ResultJSON == nil {
		return nil
	}

	var record models.ResumeRecord
	if err := json.Unmarshal([]byte(*prior.ResultJSON), &record); err != nil {
		log.Printf("⚠️ Failed to decode previous result for job %s: %v", prior.ID, err)
		return nil
	}
	return &record
}
