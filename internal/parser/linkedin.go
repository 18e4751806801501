package parser

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"resume-parser/internal/models"
)

var (
	reLinkedInPath = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9\-_%]+)`)
	reHasDigit     = regexp.MustCompile(`\d`)
)

// LinkedInStrategy seeds a record from a profile URL: the canonical profile
// link plus a name guess from the slug. Remote strategies later in the
// chain can enrich the record; this one guarantees the URL route always
// produces something editable.
type LinkedInStrategy struct{}

func (s *LinkedInStrategy) Name() string { return "linkedin-url" }

func (s *LinkedInStrategy) Attempt(ctx context.Context, in Input) (*models.ResumeRecord, error) {
	slug, err := LinkedInSlug(in.LinkedInURL)
	if err != nil {
		return nil, err
	}

	record := &models.ResumeRecord{
		PersonalInfo: models.PersonalInfo{
			FullName: nameFromSlug(slug),
			LinkedIn: "https://www.linkedin.com/in/" + slug,
		},
		Metadata: models.ParseMetadata{
			ParsingMethod:  s.Name(),
			ParsedAt:       time.Now().UTC(),
			SourceFileType: string(FormatLinkedInURL),
		},
	}
	return record, nil
}

// LinkedInSlug validates a profile URL and returns its profile slug.
func LinkedInSlug(raw string) (string, error) {
	m := reLinkedInPath.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("not a linkedin profile url: %q", raw)
	}
	slug, err := url.PathUnescape(m[1])
	if err != nil {
		slug = m[1]
	}
	return strings.Trim(slug, "-"), nil
}

// nameFromSlug turns "john-smith-1a2b3c" into "John Smith", dropping
// trailing hash-like segments LinkedIn appends to duplicate names.
func nameFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	var words []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		if reHasDigit.MatchString(p) {
			continue
		}
		words = append(words, strings.ToUpper(p[:1])+strings.ToLower(p[1:]))
	}
	return strings.Join(words, " ")
}
