package cv

import "testing"

func TestExtractSkillsExplicitWinsOverCertificate(t *testing.T) {
	t.Parallel()

	parsed := &ParsedCV{
		Skills:       []Text{"Excel"},
		Certificates: []Certificate{{Name: "Excel"}},
	}

	entries := ExtractSkills(parsed)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d: %+v", len(entries), entries)
	}

	if entries[0].Skill != "Excel" {
		t.Fatalf("unexpected skill name: %q", entries[0].Skill)
	}

	if entries[0].Confidence != 80 {
		t.Fatalf("expected confidence 80, got %d", entries[0].Confidence)
	}

	if entries[0].Source != SourceExplicit {
		t.Fatalf("expected explicit source, got %q", entries[0].Source)
	}
}

func TestExtractSkillsMergesDerivedSources(t *testing.T) {
	t.Parallel()

	parsed := &ParsedCV{
		Skills:       []Text{" Photoshop ", ""},
		Certificates: []Certificate{{Name: "IELTS"}, {Name: "  "}},
		Training:     []Training{{Name: "IELTS"}, {Name: "Project management"}},
		Exams:        []Exam{{Name: "TOPIK"}},
	}

	entries := ExtractSkills(parsed)

	byName := make(map[string]SkillEntry)
	for _, e := range entries {
		byName[e.Skill] = e
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 deduplicated entries, got %d: %+v", len(entries), entries)
	}

	if e := byName["Photoshop"]; e.Confidence != 80 || e.Source != SourceExplicit {
		t.Fatalf("unexpected explicit entry: %+v", e)
	}

	// Certificate is recorded first; the duplicate training name must not
	// produce a second entry.
	if e := byName["IELTS"]; e.Confidence != 50 || e.Source != SourceCertificate {
		t.Fatalf("unexpected IELTS entry: %+v", e)
	}

	if e := byName["Project management"]; e.Source != SourceTraining {
		t.Fatalf("unexpected training entry: %+v", e)
	}

	if e := byName["TOPIK"]; e.Source != SourceExam {
		t.Fatalf("unexpected exam entry: %+v", e)
	}
}

func TestExtractSkillsNilAndEmpty(t *testing.T) {
	t.Parallel()

	if got := ExtractSkills(nil); len(got) != 0 {
		t.Fatalf("expected no entries for nil cv, got %+v", got)
	}

	if got := ExtractSkills(&ParsedCV{}); len(got) != 0 {
		t.Fatalf("expected no entries for empty cv, got %+v", got)
	}
}
