package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var (
	reMonthYear  = regexp.MustCompile(`(?i)^([a-z]+)\.?,?\s+(\d{4})$`)
	reSlashDate  = regexp.MustCompile(`^(\d{1,2})\s*/\s*(\d{4})$`)
	reISODate    = regexp.MustCompile(`^(\d{4})-(\d{1,2})(?:-\d{1,2})?$`)
	reBareYear   = regexp.MustCompile(`^(\d{4})$`)
	rePresentTok = regexp.MustCompile(`(?i)^(present|current|now|ongoing|today)$`)
)

// NormalizeDate converts a heuristic date string to YYYY-MM. "Present"-style
// tokens and anything unrecognized normalize to the empty string. The
// function is idempotent: its own output is a fixed point.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || rePresentTok.MatchString(s) {
		return ""
	}

	if m := reISODate.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%02d", m[1], month)
		}
		return ""
	}

	if m := reMonthYear.FindStringSubmatch(s); m != nil {
		if month, ok := monthNames[strings.ToLower(m[1])]; ok {
			return fmt.Sprintf("%s-%02d", m[2], month)
		}
		return ""
	}

	if m := reSlashDate.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%02d", m[2], month)
		}
		return ""
	}

	if m := reBareYear.FindStringSubmatch(s); m != nil {
		return m[1] + "-01"
	}

	// Native date strings, e.g. "2021-03-15T00:00:00Z" or "15 Mar 2021".
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2 Jan 2006", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01")
		}
	}

	return ""
}

// IsPresentToken reports whether the end-date slot marks an ongoing entry.
func IsPresentToken(s string) bool {
	return rePresentTok.MatchString(strings.TrimSpace(s))
}
