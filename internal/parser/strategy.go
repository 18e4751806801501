package parser

import (
	"context"

	"resume-parser/internal/models"
)

// Input is the immutable payload handed to every strategy. Strategies
// never share state: each attempt gets this struct by value and returns a
// fresh candidate record.
type Input struct {
	Filename    string
	ContentType string
	Data        []byte
	Format      Format
	LinkedInURL string
}

// Strategy is one entry in the fallback chain. Attempt returns a candidate
// record or an error naming why the orchestrator should advance.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, in Input) (*models.ResumeRecord, error)
}

// Notifier receives pipeline progress. The pipeline itself only returns
// data and errors; surfacing notifications is the caller's concern.
type Notifier interface {
	OnProgress(stage string)
	OnWarning(msg string)
	OnError(err error)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) OnProgress(string) {}
func (NopNotifier) OnWarning(string)  {}
func (NopNotifier) OnError(error)     {}
