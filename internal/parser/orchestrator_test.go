package parser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/models"
)

// stubStrategy is a canned chain entry for orchestration tests.
type stubStrategy struct {
	name   string
	record *models.ResumeRecord
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Attempt(ctx context.Context, in Input) (*models.ResumeRecord, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.record
	return &cp, nil
}

func goodRecord(summary string) *models.ResumeRecord {
	return &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{FullName: "John Smith"},
		Summary:      summary,
	}
}

func TestOrchestratorFirstSuccessWins(t *testing.T) {
	first := &stubStrategy{name: "first", record: goodRecord("from first")}
	second := &stubStrategy{name: "second", record: goodRecord("from second")}

	o := NewOrchestrator([]ChainEntry{{Strategy: first}, {Strategy: second}}, nil, DefaultThresholds(), nil)
	record, err := o.Parse(context.Background(), Input{Format: FormatPlainText})

	require.NoError(t, err)
	assert.Equal(t, "from first", record.Summary)
	assert.Equal(t, "first", record.Metadata.ParsingMethod)
	assert.Empty(t, record.Metadata.FallbackReason)
	assert.Equal(t, 0, second.calls)
}

func TestOrchestratorAdvancesOnFailure(t *testing.T) {
	failing := &stubStrategy{name: "failing", err: ErrCorruptedData}
	empty := &stubStrategy{name: "empty", record: &models.ResumeRecord{}}
	working := &stubStrategy{name: "working", record: goodRecord("recovered")}

	o := NewOrchestrator([]ChainEntry{
		{Strategy: failing}, {Strategy: empty}, {Strategy: working},
	}, nil, DefaultThresholds(), nil)

	record, err := o.Parse(context.Background(), Input{Format: FormatPlainText})

	require.NoError(t, err)
	assert.Equal(t, "working", record.Metadata.ParsingMethod)
	assert.Contains(t, record.Metadata.FallbackReason, "failing")
	assert.Contains(t, record.Metadata.FallbackReason, "empty")
}

func TestOrchestratorExhaustionYieldsManualFallback(t *testing.T) {
	a := &stubStrategy{name: "a", err: ErrCorruptedData}
	b := &stubStrategy{name: "b", err: ErrEmptyContent}

	o := NewOrchestrator([]ChainEntry{{Strategy: a}, {Strategy: b}}, nil, DefaultThresholds(), nil)
	record, err := o.Parse(context.Background(), Input{Format: FormatPlainText, Data: []byte("x")})

	// Exhaustion is not an error: the caller always gets an editable record.
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "manual-fallback", record.Metadata.ParsingMethod)
	assert.Equal(t, models.PersonalInfo{}, record.PersonalInfo)
	assert.NotEmpty(t, record.Summary)
	assert.Contains(t, record.Metadata.FallbackReason, "a:")
	assert.Contains(t, record.Metadata.FallbackReason, "b:")
}

func TestOrchestratorTimeoutAdvancesChain(t *testing.T) {
	slow := &stubStrategy{name: "slow", record: goodRecord("late"), delay: 500 * time.Millisecond}
	fast := &stubStrategy{name: "fast", record: goodRecord("on time")}

	o := NewOrchestrator([]ChainEntry{
		{Strategy: slow, Timeout: 20 * time.Millisecond},
		{Strategy: fast},
	}, nil, DefaultThresholds(), nil)

	record, err := o.Parse(context.Background(), Input{Format: FormatPlainText})

	require.NoError(t, err)
	assert.Equal(t, "fast", record.Metadata.ParsingMethod)
	assert.Contains(t, record.Metadata.FallbackReason, ErrRemoteTimeout.Error())
}

func TestOrchestratorScannedPDFReroutesToImageChain(t *testing.T) {
	scanned := &stubStrategy{name: "local", err: ErrScannedPDF}
	ocr := &stubStrategy{name: "ocr", record: goodRecord("from ocr")}

	o := NewOrchestrator(
		[]ChainEntry{{Strategy: scanned}},
		[]ChainEntry{{Strategy: ocr}},
		DefaultThresholds(), nil)

	record, err := o.Parse(context.Background(), Input{Format: FormatPDF})

	require.NoError(t, err)
	assert.Equal(t, "ocr", record.Metadata.ParsingMethod)
	assert.Equal(t, 1, scanned.calls)
}

func TestOrchestratorImageInputUsesImageChain(t *testing.T) {
	doc := &stubStrategy{name: "doc", record: goodRecord("doc")}
	ocr := &stubStrategy{name: "ocr", record: goodRecord("ocr")}

	o := NewOrchestrator(
		[]ChainEntry{{Strategy: doc}},
		[]ChainEntry{{Strategy: ocr}},
		DefaultThresholds(), nil)

	record, err := o.Parse(context.Background(), Input{Format: FormatImage})

	require.NoError(t, err)
	assert.Equal(t, "ocr", record.Metadata.ParsingMethod)
	assert.Equal(t, 0, doc.calls)
}

func TestOrchestratorSanitizesCandidates(t *testing.T) {
	dirty := &stubStrategy{name: "dirty", record: &models.ResumeRecord{
		Summary:    "Engineer.",
		Experience: []models.Experience{{Company: "Acme", Current: true, EndDate: "2024-01"}},
	}}

	o := NewOrchestrator([]ChainEntry{{Strategy: dirty}}, nil, DefaultThresholds(), nil)
	record, err := o.Parse(context.Background(), Input{Format: FormatPlainText})

	require.NoError(t, err)
	assert.NotEmpty(t, record.Experience[0].ID)
	assert.Equal(t, "", record.Experience[0].EndDate)
}

func TestOrchestratorErrorsOnCancelledContext(t *testing.T) {
	slow := &stubStrategy{name: "slow", record: goodRecord("late"), delay: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator([]ChainEntry{{Strategy: slow, Timeout: time.Minute}}, nil, DefaultThresholds(), nil)
	record, err := o.Parse(ctx, Input{Format: FormatPlainText})

	// A dead context still resolves to the manual-fallback template.
	require.NoError(t, err)
	assert.Equal(t, "manual-fallback", record.Metadata.ParsingMethod)
	assert.Contains(t, record.Metadata.FallbackReason, context.Canceled.Error())
}
