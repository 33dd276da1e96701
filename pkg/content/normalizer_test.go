package content

import (
	"errors"
	"strings"
	"testing"

	"ai-studyaid-be/pkg/analyzer"
)

func strPtr(s string) *string { return &s }

func TestNormalizeStripsEmphasisMarkers(t *testing.T) {
	raw := &analyzer.RawContent{
		Summary:    strPtr("**Photosynthesis** converts **light** into energy"),
		ShortNotes: strPtr("- **Chlorophyll** absorbs light\n- Occurs in **chloroplasts**"),
		Flashcards: []analyzer.RawFlashcard{
			{Front: "What is **ATP**?", Back: "**Energy** currency of the cell"},
		},
		MCQs: []analyzer.RawMCQ{
			{
				Question: "Where does **photosynthesis** occur?",
				Options:  []string{"**Chloroplast**", "Mitochondria"},
				Answer:   "Chloroplast",
			},
		},
	}

	record, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	processed := []string{
		record.Summary,
		record.Notes,
		record.Flashcards[0].Front,
		record.Flashcards[0].Back,
		record.MCQs[0].Question,
		record.MCQs[0].Options[0],
		record.MCQs[0].Options[1],
	}
	for _, field := range processed {
		if strings.Contains(field, "**") {
			t.Errorf("field %q still contains emphasis marker", field)
		}
	}

	if record.Summary != "Photosynthesis converts light into energy" {
		t.Errorf("Summary = %q", record.Summary)
	}
	if record.Notes != "- Chlorophyll absorbs light\n- Occurs in chloroplasts" {
		t.Errorf("Notes = %q", record.Notes)
	}
}

func TestNormalizeAnswerPassedThrough(t *testing.T) {
	// The answer field is not cleaned; the service supplies it pre-clean.
	raw := &analyzer.RawContent{
		Summary:    strPtr("s"),
		ShortNotes: strPtr("n"),
		MCQs: []analyzer.RawMCQ{
			{Question: "q", Options: []string{"a", "b"}, Answer: "**a**"},
		},
	}

	record, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if record.MCQs[0].Answer != "**a**" {
		t.Errorf("Answer = %q, want it untouched", record.MCQs[0].Answer)
	}
}

func TestNormalizeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  *analyzer.RawContent
	}{
		{name: "nil content", raw: nil},
		{name: "missing summary", raw: &analyzer.RawContent{ShortNotes: strPtr("n")}},
		{name: "missing short_notes", raw: &analyzer.RawContent{Summary: strPtr("s")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			if !errors.Is(err, ErrMalformedContent) {
				t.Errorf("Normalize() error = %v, want ErrMalformedContent", err)
			}
		})
	}
}

func TestNormalizeMissingArrays(t *testing.T) {
	record, err := Normalize(&analyzer.RawContent{
		Summary:    strPtr("s"),
		ShortNotes: strPtr("n"),
	})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if record.Flashcards == nil || len(record.Flashcards) != 0 {
		t.Errorf("Flashcards = %v, want empty slice", record.Flashcards)
	}
	if record.MCQs == nil || len(record.MCQs) != 0 {
		t.Errorf("MCQs = %v, want empty slice", record.MCQs)
	}
}

func TestWarnings(t *testing.T) {
	raw := &analyzer.RawContent{
		Summary:    strPtr("s"),
		ShortNotes: strPtr("n"),
		MCQs: []analyzer.RawMCQ{
			{Question: "ok", Options: []string{"a", "b"}, Answer: "a"},
			{Question: "bad", Options: []string{"a", "b"}, Answer: "c"},
		},
	}

	record, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	warnings := Warnings(record)
	if len(warnings) != 1 {
		t.Fatalf("Warnings() = %v, want 1 entry", warnings)
	}
	if !strings.Contains(warnings[0], "mcq 1") {
		t.Errorf("warning %q should name mcq 1", warnings[0])
	}
}
