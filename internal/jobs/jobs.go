// Package jobs fetches and models job postings from the zangia.mn job board.
package jobs

import "strings"

// Job is the normalized representation of a posting. Skills are lower-cased
// tags; everything else is free text straight from the board API.
type Job struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Skills       []string `json:"skills"`
	Additional   string   `json:"additional,omitempty"`
}

// Text builds the blob encoded for semantic similarity: title, description,
// requirements and the space-joined skill tags, newline-separated.
func (j *Job) Text() string {
	return strings.Join([]string{
		j.Title,
		j.Description,
		j.Requirements,
		strings.Join(j.Skills, " "),
	}, "\n")
}

// SkillSet returns the job skill tags as a lowercase set.
func (j *Job) SkillSet() map[string]bool {
	set := make(map[string]bool, len(j.Skills))
	for _, s := range j.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = true
	}
	return set
}

func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		normalized = append(normalized, s)
	}
	return normalized
}
