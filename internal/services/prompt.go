package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeExtractionPrompt creates the prompt for structured resume
// extraction. The schema mirrors models.ResumeRecord so the response can
// be unmarshalled directly.
func (pb *PromptBuilder) BuildResumeExtractionPrompt(resumeText, fileType string) string {
	return fmt.Sprintf(`You are an expert resume parser. Extract structured data from the resume below.

SOURCE FORMAT: %s

RESUME TEXT:
%s

Return ONLY a JSON object in exactly this format (no markdown, no commentary):
{
  "personal_info": {
    "full_name": "<full name or empty string>",
    "job_title": "<current/most recent job title or empty string>",
    "email": "<email or empty string>",
    "phone": "<phone or empty string>",
    "location": "<city, country or empty string>",
    "linkedin": "<linkedin profile url or empty string>",
    "website": "<personal website or empty string>"
  },
  "summary": "<professional summary, 1-3 sentences, or empty string>",
  "experience": [
    {
      "company": "<company>",
      "position": "<position>",
      "start_date": "<YYYY-MM or empty>",
      "end_date": "<YYYY-MM, empty when current>",
      "current": <true|false>,
      "description": "<responsibilities and achievements>"
    }
  ],
  "education": [
    {
      "institution": "<institution>",
      "degree": "<degree>",
      "field": "<field of study>",
      "start_date": "<YYYY-MM or empty>",
      "end_date": "<YYYY-MM or empty>",
      "current": <true|false>
    }
  ],
  "skills": [
    {"name": "<skill>", "level": "<beginner|intermediate|advanced|expert>"}
  ],
  "languages": [
    {"name": "<language>", "proficiency": "<basic|conversational|fluent|native>"}
  ],
  "certifications": ["<certification>"],
  "projects": ["<project>"]
}

Rules:
- Use empty strings for missing values, never null.
- Dates must be YYYY-MM. Use "current": true instead of an end date for ongoing entries.
- Default skill level to "intermediate" and language proficiency to "conversational" when unstated.
- Do not invent information that is not in the text.`,
		fileType, resumeText)
}
