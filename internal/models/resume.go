package models

import "time"

// SkillLevel is the self-reported or inferred proficiency of a skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// LanguageProficiency is the spoken-language proficiency scale.
type LanguageProficiency string

const (
	ProficiencyBasic          LanguageProficiency = "basic"
	ProficiencyConversational LanguageProficiency = "conversational"
	ProficiencyFluent         LanguageProficiency = "fluent"
	ProficiencyNative         LanguageProficiency = "native"
)

// PersonalInfo holds contact details. Absent values are empty strings,
// never nil, so merging stays a plain non-empty-wins comparison.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is a single work-history entry. When Current is true the
// EndDate is ignored.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"` // YYYY-MM or empty
	EndDate     string `json:"end_date"`   // YYYY-MM, empty when Current
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is a single education entry with the same Current/EndDate
// contract as Experience.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type Language struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Proficiency LanguageProficiency `json:"proficiency"`
}

// ParseMetadata records which strategy produced a record and how.
type ParseMetadata struct {
	ParsingMethod  string    `json:"parsing_method"`
	ParsedAt       time.Time `json:"parsed_at"`
	SourceFileType string    `json:"source_file_type,omitempty"`
	SourceFileSize int64     `json:"source_file_size,omitempty"`
	ProcessingMS   int64     `json:"processing_time_ms"`

	CorruptionScore    int       `json:"corruption_score,omitempty"`
	FallbackReason     string    `json:"fallback_reason,omitempty"`
	ValidationWarnings []string  `json:"validation_warnings,omitempty"`
	LastUpdated        time.Time `json:"last_updated,omitempty"`
}

// ResumeRecord is the normalized output of the parsing pipeline. Every
// array entry carries an id unique within its array; the id is assigned at
// extraction time and is the merge key across parsing attempts.
type ResumeRecord struct {
	PersonalInfo   PersonalInfo  `json:"personal_info"`
	Summary        string        `json:"summary"`
	Experience     []Experience  `json:"experience"`
	Education      []Education   `json:"education"`
	Skills         []Skill       `json:"skills"`
	Languages      []Language    `json:"languages"`
	Certifications []string      `json:"certifications"`
	Projects       []string      `json:"projects"`
	Metadata       ParseMetadata `json:"metadata"`
}

// IsEmpty reports whether no section carries content. Metadata does not
// count: a record that only says how it was produced is still empty.
func (r *ResumeRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	p := r.PersonalInfo
	if p.FullName != "" || p.JobTitle != "" || p.Email != "" || p.Phone != "" ||
		p.Location != "" || p.LinkedIn != "" || p.Website != "" {
		return false
	}
	return r.Summary == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0 &&
		len(r.Languages) == 0 &&
		len(r.Certifications) == 0 &&
		len(r.Projects) == 0
}
