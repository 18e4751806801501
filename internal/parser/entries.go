package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// dateTok matches one heuristic date token inside an entry line.
const dateTok = `(?:[A-Za-z]{3,9}\.?,?\s+\d{4}|\d{1,2}\s*/\s*\d{4}|\d{4}-\d{1,2}|\d{4}|[Pp]resent|[Cc]urrent|[Nn]ow)`

const dashTok = `\s*[–—\-]+\s*`

// entryMatch is one recognized dated entry line. Primary/Secondary carry
// company/position (experience) or institution/degree (education).
type entryMatch struct {
	Primary   string
	Secondary string
	StartRaw  string
	EndRaw    string
}

type entryPattern struct {
	re *regexp.Regexp
	// order maps capture groups to fields: indexes of primary, secondary,
	// start, end within the submatch slice.
	primary, secondary, start, end int
}

// The four supported orderings:
//
//	Company – Position (start – end)
//	Position at Company (start – end)
//	start – end: Company – Position
//	Company (start – end) Position
var entryPatterns = []entryPattern{
	{
		re: regexp.MustCompile(fmt.Sprintf(
			`^(.{2,60}?)%s(.{2,60}?)\s*\(\s*(%s)%s(%s)\s*\)$`, dashTok, dateTok, dashTok, dateTok)),
		primary: 1, secondary: 2, start: 3, end: 4,
	},
	{
		re: regexp.MustCompile(fmt.Sprintf(
			`(?i)^(.{2,60}?)\s+at\s+(.{2,60}?)\s*\(\s*(%s)%s(%s)\s*\)$`, dateTok, dashTok, dateTok)),
		primary: 2, secondary: 1, start: 3, end: 4,
	},
	{
		re: regexp.MustCompile(fmt.Sprintf(
			`^(%s)%s(%s)\s*[:,]?\s+(.{2,60}?)%s(.{2,60})$`, dateTok, dashTok, dateTok, dashTok)),
		primary: 3, secondary: 4, start: 1, end: 2,
	},
	{
		re: regexp.MustCompile(fmt.Sprintf(
			`^(.{2,60}?)\s*\(\s*(%s)%s(%s)\s*\)\s+(.{2,80})$`, dateTok, dashTok, dateTok)),
		primary: 1, secondary: 4, start: 2, end: 3,
	},
}

func matchEntryLine(line string) (entryMatch, bool) {
	line = strings.TrimSpace(line)
	for _, p := range entryPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			return entryMatch{
				Primary:   strings.TrimSpace(m[p.primary]),
				Secondary: strings.TrimSpace(m[p.secondary]),
				StartRaw:  strings.TrimSpace(m[p.start]),
				EndRaw:    strings.TrimSpace(m[p.end]),
			}, true
		}
	}
	return entryMatch{}, false
}

// datedEntry is an entryMatch plus the description span that runs until the
// next recognized entry or the end of the section.
type datedEntry struct {
	entryMatch
	Description string
}

// collectEntries walks a section and attaches description spans to each
// matched entry line.
func collectEntries(section string) []datedEntry {
	var entries []datedEntry
	var desc []string

	flushDescription := func() {
		if len(entries) > 0 && len(desc) > 0 {
			entries[len(entries)-1].Description = strings.TrimSpace(strings.Join(desc, "\n"))
		}
		desc = desc[:0]
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m, ok := matchEntryLine(trimmed); ok {
			flushDescription()
			entries = append(entries, datedEntry{entryMatch: m})
			continue
		}
		if len(entries) > 0 {
			desc = append(desc, trimmed)
		}
	}
	flushDescription()
	return entries
}

// dateRange normalizes an entry's raw dates and derives the current flag
// from Present/Current tokens in the end slot.
func dateRange(m entryMatch) (start, end string, current bool) {
	start = NormalizeDate(m.StartRaw)
	if IsPresentToken(m.EndRaw) {
		return start, "", true
	}
	return start, NormalizeDate(m.EndRaw), false
}
