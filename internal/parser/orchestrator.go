package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-parser/internal/models"
)

const manualFallbackMethod = "manual-fallback"

const manualFallbackSummary = "We could not extract this resume automatically. " +
	"The document may be scanned, encrypted, or in an unusual layout. " +
	"Please enter the details manually."

// ChainEntry pairs a strategy with its attempt timeout. A zero timeout
// means the strategy runs without a deadline of its own.
type ChainEntry struct {
	Strategy Strategy
	Timeout  time.Duration
}

// Orchestrator runs the fallback chain: strategies attempt strictly in
// order, every candidate passes the validator, and any failure (error,
// emptiness, timeout) advances to the next entry. Exhaustion yields a
// manual-fallback template instead of an error, so the caller always
// receives a record to edit.
type Orchestrator struct {
	chain      []ChainEntry
	imageChain []ChainEntry
	thresholds Thresholds
	notifier   Notifier
}

// NewOrchestrator builds an orchestrator over the document chain and the
// image/OCR branch. A nil notifier is replaced with a no-op.
func NewOrchestrator(chain, imageChain []ChainEntry, t Thresholds, n Notifier) *Orchestrator {
	if n == nil {
		n = NopNotifier{}
	}
	return &Orchestrator{chain: chain, imageChain: imageChain, thresholds: t, notifier: n}
}

// Parse runs the chain for one input and returns the first validated
// candidate, already sanitized. The returned record is always non-nil.
func (o *Orchestrator) Parse(ctx context.Context, in Input) (*models.ResumeRecord, error) {
	start := time.Now()

	chain := o.chain
	if in.Format == FormatImage {
		chain = o.imageChain
	}
	if len(chain) == 0 {
		return nil, ErrAllStrategiesFailed
	}

	var reasons []string

	for _, entry := range chain {
		name := entry.Strategy.Name()
		o.notifier.OnProgress("attempting " + name)

		record, err := o.attempt(ctx, entry, in)
		if err == nil {
			err = Validate(record)
		}
		if err != nil {
			// Scanned PDFs are a redirect, not a plain failure: reroute the
			// remainder of this parse through the image branch.
			if errors.Is(err, ErrScannedPDF) && in.Format == FormatPDF && len(o.imageChain) > 0 {
				o.notifier.OnWarning("pdf has no text layer, rerouting to image strategies")
				rerouted := in
				rerouted.Format = FormatImage
				return o.Parse(ctx, rerouted)
			}

			reasons = append(reasons, fmt.Sprintf("%s: %v", name, err))
			o.notifier.OnWarning(fmt.Sprintf("strategy %s failed: %v", name, err))
			continue
		}

		Sanitize(record, o.thresholds)
		if err := Validate(record); err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: empty after sanitization", name))
			continue
		}

		record.Metadata.ParsingMethod = name
		record.Metadata.ProcessingMS = time.Since(start).Milliseconds()
		if len(reasons) > 0 {
			record.Metadata.FallbackReason = strings.Join(reasons, "; ")
		}
		return record, nil
	}

	o.notifier.OnError(ErrAllStrategiesFailed)
	return o.manualFallback(in, reasons, start), nil
}

// attempt wraps one strategy call with its timeout. A timed-out call is
// treated exactly like a rejection; its late result is discarded.
func (o *Orchestrator) attempt(ctx context.Context, entry ChainEntry, in Input) (*models.ResumeRecord, error) {
	if entry.Timeout <= 0 {
		return entry.Strategy.Attempt(ctx, in)
	}

	ctx, cancel := context.WithTimeout(ctx, entry.Timeout)
	defer cancel()

	type result struct {
		record *models.ResumeRecord
		err    error
	}
	done := make(chan result, 1)
	go func() {
		record, err := entry.Strategy.Attempt(ctx, in)
		done <- result{record, err}
	}()

	select {
	case r := <-done:
		return r.record, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrRemoteTimeout
		}
		return nil, ctx.Err()
	}
}

// manualFallback is the terminal template: empty personal fields, an
// explanatory summary, and the accumulated fallback reasons.
func (o *Orchestrator) manualFallback(in Input, reasons []string, start time.Time) *models.ResumeRecord {
	return &models.ResumeRecord{
		Summary: manualFallbackSummary,
		Metadata: models.ParseMetadata{
			ParsingMethod:  manualFallbackMethod,
			ParsedAt:       time.Now().UTC(),
			SourceFileType: string(in.Format),
			SourceFileSize: int64(len(in.Data)),
			ProcessingMS:   time.Since(start).Milliseconds(),
			FallbackReason: strings.Join(reasons, "; "),
		},
	}
}
