package parser

import (
	"strings"
	"time"

	"resume-parser/internal/models"
)

// Merge combines an incoming partial record into the current authoritative
// one. Scalar fields take the incoming value when non-empty; entity arrays
// merge by id (current entries first, incoming overwrites or appends);
// skills merge by name because skill identity across sources is the name,
// not the id. Neither input is mutated.
func Merge(current, incoming *models.ResumeRecord) *models.ResumeRecord {
	if incoming == nil {
		cp := *current
		return &cp
	}
	if current == nil {
		cp := *incoming
		cp.Metadata.LastUpdated = time.Now().UTC()
		return &cp
	}

	merged := *current

	merged.PersonalInfo = mergePersonal(current.PersonalInfo, incoming.PersonalInfo)
	merged.Summary = override(current.Summary, incoming.Summary)

	merged.Experience = mergeExperience(current.Experience, incoming.Experience)
	merged.Education = mergeEducation(current.Education, incoming.Education)
	merged.Languages = mergeLanguages(current.Languages, incoming.Languages)
	merged.Skills = mergeSkills(current.Skills, incoming.Skills)

	merged.Certifications = mergeStrings(current.Certifications, incoming.Certifications)
	merged.Projects = mergeStrings(current.Projects, incoming.Projects)

	merged.Metadata = mergeMetadata(current.Metadata, incoming.Metadata)
	return &merged
}

func override(cur, in string) string {
	if in != "" {
		return in
	}
	return cur
}

func mergePersonal(cur, in models.PersonalInfo) models.PersonalInfo {
	return models.PersonalInfo{
		FullName: override(cur.FullName, in.FullName),
		JobTitle: override(cur.JobTitle, in.JobTitle),
		Email:    override(cur.Email, in.Email),
		Phone:    override(cur.Phone, in.Phone),
		Location: override(cur.Location, in.Location),
		LinkedIn: override(cur.LinkedIn, in.LinkedIn),
		Website:  override(cur.Website, in.Website),
	}
}

// mergeExperience unions by id, preserving insertion order: current entries
// keep their positions, new incoming ids append in their own order.
func mergeExperience(cur, in []models.Experience) []models.Experience {
	index := make(map[string]int, len(cur))
	out := make([]models.Experience, len(cur))
	copy(out, cur)
	for i, e := range out {
		index[e.ID] = i
	}
	for _, e := range in {
		if i, ok := index[e.ID]; ok {
			out[i] = e
		} else {
			index[e.ID] = len(out)
			out = append(out, e)
		}
	}
	return out
}

func mergeEducation(cur, in []models.Education) []models.Education {
	index := make(map[string]int, len(cur))
	out := make([]models.Education, len(cur))
	copy(out, cur)
	for i, e := range out {
		index[e.ID] = i
	}
	for _, e := range in {
		if i, ok := index[e.ID]; ok {
			out[i] = e
		} else {
			index[e.ID] = len(out)
			out = append(out, e)
		}
	}
	return out
}

func mergeLanguages(cur, in []models.Language) []models.Language {
	index := make(map[string]int, len(cur))
	out := make([]models.Language, len(cur))
	copy(out, cur)
	for i, l := range out {
		index[l.ID] = i
	}
	for _, l := range in {
		if i, ok := index[l.ID]; ok {
			out[i] = l
		} else {
			index[l.ID] = len(out)
			out = append(out, l)
		}
	}
	return out
}

func mergeSkills(cur, in []models.Skill) []models.Skill {
	index := make(map[string]int, len(cur))
	out := make([]models.Skill, len(cur))
	copy(out, cur)
	for i, s := range out {
		index[strings.ToLower(s.Name)] = i
	}
	for _, s := range in {
		key := strings.ToLower(s.Name)
		if i, ok := index[key]; ok {
			// Keep the established id so repeated merges stay stable.
			s.ID = out[i].ID
			out[i] = s
		} else {
			index[key] = len(out)
			out = append(out, s)
		}
	}
	return out
}

func mergeStrings(cur, in []string) []string {
	seen := make(map[string]bool, len(cur))
	out := make([]string, 0, len(cur)+len(in))
	for _, s := range cur {
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	for _, s := range in {
		if !seen[strings.ToLower(s)] {
			seen[strings.ToLower(s)] = true
			out = append(out, s)
		}
	}
	return out
}

// mergeMetadata is a shallow merge with incoming values winning; the
// lastUpdated stamp always refreshes.
func mergeMetadata(cur, in models.ParseMetadata) models.ParseMetadata {
	out := cur
	if in.ParsingMethod != "" {
		out.ParsingMethod = in.ParsingMethod
	}
	if !in.ParsedAt.IsZero() {
		out.ParsedAt = in.ParsedAt
	}
	if in.SourceFileType != "" {
		out.SourceFileType = in.SourceFileType
	}
	if in.SourceFileSize != 0 {
		out.SourceFileSize = in.SourceFileSize
	}
	if in.ProcessingMS != 0 {
		out.ProcessingMS = in.ProcessingMS
	}
	if in.CorruptionScore != 0 {
		out.CorruptionScore = in.CorruptionScore
	}
	if in.FallbackReason != "" {
		out.FallbackReason = in.FallbackReason
	}
	if len(in.ValidationWarnings) > 0 {
		out.ValidationWarnings = in.ValidationWarnings
	}
	out.LastUpdated = time.Now().UTC()
	return out
}
