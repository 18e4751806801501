package parser

import (
	"github.com/google/uuid"

	"resume-parser/internal/models"
)

const corruptedSummaryPlaceholder = "Automatic extraction produced unreadable data. " +
	"Please review and fill in the details manually."

// Validate is the post-strategy emptiness gate: a record with no
// non-artifact content is a failed attempt and the chain advances.
func Validate(record *models.ResumeRecord) error {
	if record.IsEmpty() {
		return ErrEmptyContent
	}
	return nil
}

// Sanitize strips artifact patterns from individual field values, ensures
// every array entry has an id, and normalizes enum defaults. It never drops
// the record itself; only offending values are cleaned, so partially
// correct extractions survive. Warnings are appended to the record's
// metadata.
func Sanitize(record *models.ResumeRecord, t Thresholds) {
	if record == nil {
		return
	}

	if HasCorruptedPersonalFields(record.PersonalInfo, t) {
		score := PersonalFieldScore(record.PersonalInfo)
		record.PersonalInfo = models.PersonalInfo{}
		if record.Summary == "" {
			record.Summary = corruptedSummaryPlaceholder
		}
		record.Metadata.CorruptionScore = score
		record.Metadata.ValidationWarnings = append(record.Metadata.ValidationWarnings,
			"personal fields cleared: corruption score above threshold")
	} else {
		record.PersonalInfo.FullName = sanitizeField(record.PersonalInfo.FullName)
		record.PersonalInfo.JobTitle = sanitizeField(record.PersonalInfo.JobTitle)
		record.PersonalInfo.Location = sanitizeField(record.PersonalInfo.Location)
	}

	record.Summary = sanitizeField(record.Summary)

	for i := range record.Experience {
		e := &record.Experience[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.Company = sanitizeField(e.Company)
		e.Position = sanitizeField(e.Position)
		e.Description = sanitizeField(e.Description)
		if e.Current {
			e.EndDate = ""
		}
	}

	for i := range record.Education {
		e := &record.Education[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.Institution = sanitizeField(e.Institution)
		e.Degree = sanitizeField(e.Degree)
		e.Field = sanitizeField(e.Field)
		if e.Current {
			e.EndDate = ""
		}
	}

	for i := range record.Skills {
		s := &record.Skills[i]
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		s.Name = sanitizeField(s.Name)
		if s.Level == "" {
			s.Level = models.SkillIntermediate
		}
	}

	for i := range record.Languages {
		l := &record.Languages[i]
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		if l.Proficiency == "" {
			l.Proficiency = models.ProficiencyConversational
		}
	}
}

func sanitizeField(s string) string {
	if s == "" || CorruptionScore(s) == 0 {
		return s
	}
	return StripArtifacts(s)
}
