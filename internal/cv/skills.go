package cv

import "strings"

// Skill sources, in decreasing order of confidence.
const (
	SourceExplicit    = "explicit"
	SourceCertificate = "certificate"
	SourceTraining    = "training"
	SourceExam        = "exam"
)

const (
	explicitConfidence = 80
	derivedConfidence  = 50
)

// SkillEntry is a single candidate skill with a source-based confidence.
type SkillEntry struct {
	Skill      string `json:"Skill"`
	Confidence int    `json:"Confidence"`
	Source     string `json:"Source,omitempty"`
}

// ExtractSkills derives a deduplicated skill list from a parsed CV. Skills
// named explicitly in the CV get confidence 80; skills inferred from
// certificate, training and exam names get 50 and are only added when the
// explicit list does not already contain them. Duplicates keep the maximum
// confidence observed.
func ExtractSkills(parsed *ParsedCV) []SkillEntry {
	if parsed == nil {
		return nil
	}

	entries := make([]SkillEntry, 0, len(parsed.Skills))
	index := make(map[string]int)

	add := func(name string, confidence int, source string) {
		if idx, ok := index[name]; ok {
			if confidence > entries[idx].Confidence {
				entries[idx].Confidence = confidence
				entries[idx].Source = source
			}
			return
		}
		index[name] = len(entries)
		entries = append(entries, SkillEntry{Skill: name, Confidence: confidence, Source: source})
	}

	for _, s := range parsed.Skills {
		name := strings.TrimSpace(string(s))
		if name == "" {
			continue
		}
		add(name, explicitConfidence, SourceExplicit)
	}

	explicit := make(map[string]bool, len(entries))
	for _, e := range entries {
		explicit[e.Skill] = true
	}

	derive := func(name Text, source string) {
		trimmed := strings.TrimSpace(string(name))
		if trimmed == "" || explicit[trimmed] {
			return
		}
		add(trimmed, derivedConfidence, source)
	}

	for _, c := range parsed.Certificates {
		derive(c.Name, SourceCertificate)
	}
	for _, t := range parsed.Training {
		derive(t.Name, SourceTraining)
	}
	for _, e := range parsed.Exams {
		derive(e.Name, SourceExam)
	}

	return entries
}
