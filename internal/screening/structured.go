package screening

import (
	"math"
	"strings"

	"cv-screener/internal/cv"
	"cv-screener/internal/jobs"
)

// Weight table for the structured match score. The base weights sum to 1.0;
// the experience bonus can push the raw sum above it, so the final score is
// clamped.
const (
	weightExperience = 0.3
	weightEducation  = 0.2
	weightSkills     = 0.3
	weightTraining   = 0.1
	weightExamCert   = 0.1

	// experienceBonus accrues once per relevant entry with at least
	// bonusYears of duration. It intentionally stacks across entries,
	// matching the behavior callers already rely on.
	experienceBonus = 0.2
	bonusYears      = 2.0
)

// StructuredScore computes the deterministic rule-based match between a
// parsed CV and a job record. A nil CV (failed extraction) scores 0. The
// function is pure: same inputs, same float.
func StructuredScore(parsed *cv.ParsedCV, job *jobs.Job) float64 {
	if parsed == nil || job == nil {
		return 0.0
	}

	description := strings.ToLower(job.Description)
	score := 0.0

	matched := false
	for _, work := range parsed.WorkExperience {
		if !tokenMatch(work.Flatten(), description) {
			continue
		}
		matched = true
		if cv.ParseDuration(string(work.Duration)) >= bonusYears {
			score += experienceBonus
		}
	}
	if matched {
		score += weightExperience
	}

	if anyEntryMatches(description, educationBlobs(parsed)) {
		score += weightEducation
	}

	jobSkills := job.SkillSet()
	if len(jobSkills) > 0 {
		overlap := 0
		seen := make(map[string]bool)
		for _, s := range parsed.Skills {
			name := strings.ToLower(strings.TrimSpace(string(s)))
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			if jobSkills[name] {
				overlap++
			}
		}
		score += weightSkills * (float64(overlap) / float64(len(jobSkills)))
	}

	if anyEntryMatches(description, trainingBlobs(parsed)) {
		score += weightTraining
	}

	if anyEntryMatches(description, examCertBlobs(parsed)) {
		score += weightExamCert
	}

	return math.Min(score, 1.0)
}

func educationBlobs(parsed *cv.ParsedCV) []string {
	blobs := make([]string, 0, len(parsed.Education))
	for _, e := range parsed.Education {
		blobs = append(blobs, e.Flatten())
	}
	return blobs
}

func trainingBlobs(parsed *cv.ParsedCV) []string {
	blobs := make([]string, 0, len(parsed.Training))
	for _, t := range parsed.Training {
		blobs = append(blobs, t.Flatten())
	}
	return blobs
}

func examCertBlobs(parsed *cv.ParsedCV) []string {
	blobs := make([]string, 0, len(parsed.Exams)+len(parsed.Certificates))
	for _, e := range parsed.Exams {
		blobs = append(blobs, e.Flatten())
	}
	for _, c := range parsed.Certificates {
		blobs = append(blobs, c.Flatten())
	}
	return blobs
}

func anyEntryMatches(description string, blobs []string) bool {
	for _, blob := range blobs {
		if tokenMatch(blob, description) {
			return true
		}
	}
	return false
}

// tokenMatch reports whether any whitespace-split token of the lowercased
// blob occurs as a substring of the lowercased job description. Crude, but
// it is the relevance heuristic the weight table was tuned against.
func tokenMatch(blob, description string) bool {
	if description == "" {
		return false
	}
	for _, token := range strings.Fields(blob) {
		if strings.Contains(description, token) {
			return true
		}
	}
	return false
}
