package parser

import (
	"context"
	"strings"
	"time"

	"resume-parser/internal/models"
)

// ExtractionOptions tune the heuristic extractors.
type ExtractionOptions struct {
	Thresholds Thresholds
	// DefaultEnglishFluent assumes working English when a resume carries no
	// language section at all.
	DefaultEnglishFluent bool
}

func DefaultExtractionOptions() ExtractionOptions {
	return ExtractionOptions{
		Thresholds:           DefaultThresholds(),
		DefaultEnglishFluent: true,
	}
}

// ExtractRecord runs segmentation plus all five entity extractors over
// normalized text. It is the shared back half of both local strategies.
func ExtractRecord(text string, opts ExtractionOptions) *models.ResumeRecord {
	sections := SegmentSections(text)

	record := &models.ResumeRecord{
		PersonalInfo: ExtractPersonalInfo(sections),
		Summary:      strings.TrimSpace(sections[SectionSummary]),
		Experience:   ExtractExperience(sections),
		Education:    ExtractEducation(sections),
		Skills:       ExtractSkills(sections, text),
		Languages:    ExtractLanguages(sections, opts.DefaultEnglishFluent),
	}

	for _, line := range strings.Split(sections[SectionCertifications], "\n") {
		if line = strings.TrimSpace(strings.TrimLeft(line, "-•* ")); line != "" {
			record.Certifications = append(record.Certifications, line)
		}
	}
	for _, line := range strings.Split(sections[SectionProjects], "\n") {
		if line = strings.TrimSpace(strings.TrimLeft(line, "-•* ")); line != "" {
			record.Projects = append(record.Projects, line)
		}
	}

	return record
}

// EnhancedLocalStrategy is the first chain entry: format-aware extraction
// (real PDF reader, DOCX XML walk) followed by the heuristic extractors.
type EnhancedLocalStrategy struct {
	Options ExtractionOptions
}

func (s *EnhancedLocalStrategy) Name() string { return "enhanced-local" }

func (s *EnhancedLocalStrategy) Attempt(ctx context.Context, in Input) (*models.ResumeRecord, error) {
	start := time.Now()

	var pre Preprocessed
	switch in.Format {
	case FormatPDF:
		text, err := ExtractPDFText(in.Data)
		if err != nil {
			return nil, err
		}
		if LooksScanned(text) {
			return nil, ErrScannedPDF
		}
		pre = Preprocessed{Text: CollapseWhitespace(text), Method: "pdf-text-layer"}
	case FormatDocx:
		text, err := ExtractDocxText(in.Data)
		if err != nil {
			return nil, err
		}
		pre = Preprocessed{Text: CollapseWhitespace(text), Method: "docx-xml"}
	default:
		pre = PreprocessText(in.Data)
	}

	if strings.TrimSpace(pre.Text) == "" {
		return nil, ErrEmptyContent
	}
	if IsCorrupted(pre.Text, s.Options.Thresholds) {
		return nil, ErrCorruptedData
	}

	record := ExtractRecord(pre.Text, s.Options)
	record.Metadata = models.ParseMetadata{
		ParsingMethod:  s.Name(),
		ParsedAt:       time.Now().UTC(),
		SourceFileType: string(in.Format),
		SourceFileSize: int64(len(in.Data)),
		ProcessingMS:   time.Since(start).Milliseconds(),
	}
	return record, nil
}

// LegacyRegexStrategy is the second chain entry: byte-level text recovery
// with marker stripping instead of structural parsing. It trades accuracy
// for resilience on documents the enhanced path rejects.
type LegacyRegexStrategy struct {
	Options ExtractionOptions
}

func (s *LegacyRegexStrategy) Name() string { return "legacy-regex" }

func (s *LegacyRegexStrategy) Attempt(ctx context.Context, in Input) (*models.ResumeRecord, error) {
	start := time.Now()

	raw := printableRuns(in.Data)
	var text string
	switch in.Format {
	case FormatPDF:
		text = StripPDFMarkers(raw)
	default:
		text = StripHTML(raw)
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}
	score := CorruptionScore(text)
	if score >= s.Options.Thresholds.RawContent {
		return nil, ErrCorruptedData
	}

	record := ExtractRecord(text, s.Options)
	record.Metadata = models.ParseMetadata{
		ParsingMethod:   s.Name(),
		ParsedAt:        time.Now().UTC(),
		SourceFileType:  string(in.Format),
		SourceFileSize:  int64(len(in.Data)),
		ProcessingMS:    time.Since(start).Milliseconds(),
		CorruptionScore: score,
	}
	return record, nil
}

// RecoverText is best-effort text recovery for strategies that ship
// content elsewhere (remote services): structural extraction when it
// works, byte-level recovery when it does not, no corruption gating.
func RecoverText(in Input) string {
	switch in.Format {
	case FormatPDF:
		if text, err := ExtractPDFText(in.Data); err == nil {
			return CollapseWhitespace(text)
		}
		return StripPDFMarkers(printableRuns(in.Data))
	case FormatDocx:
		if text, err := ExtractDocxText(in.Data); err == nil {
			return CollapseWhitespace(text)
		}
		return CollapseWhitespace(printableRuns(in.Data))
	default:
		return PreprocessText(in.Data).Text
	}
}

// printableRuns keeps runs of printable ASCII and common whitespace,
// discarding binary stretches. Newlines survive so line heuristics still
// have structure to work with.
func printableRuns(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	run := 0
	for _, b := range data {
		if b == '\n' || b == '\t' || (b >= 0x20 && b < 0x7F) {
			sb.WriteByte(b)
			run++
			continue
		}
		if run > 0 {
			sb.WriteByte(' ')
		}
		run = 0
	}
	return sb.String()
}
