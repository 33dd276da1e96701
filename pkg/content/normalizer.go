package content

import (
	"errors"
	"fmt"
	"strings"

	"ai-studyaid-be/internal/entity"
	"ai-studyaid-be/pkg/analyzer"
)

const emphasisMarker = "**"

// ErrMalformedContent is returned when the service response is missing the
// fields a content record cannot be built without.
var ErrMalformedContent = errors.New("malformed content: missing summary or short_notes")

// Normalize strips the double-asterisk emphasis markers the generation model
// leaves in its text and renames the raw fields to the canonical schema.
// MCQ answer strings are passed through unchanged.
func Normalize(raw *analyzer.RawContent) (*entity.ContentRecord, error) {
	if raw == nil || raw.Summary == nil || raw.ShortNotes == nil {
		return nil, ErrMalformedContent
	}

	record := &entity.ContentRecord{
		Summary:    clean(*raw.Summary),
		Notes:      clean(*raw.ShortNotes),
		Flashcards: make([]entity.Flashcard, 0, len(raw.Flashcards)),
		MCQs:       make([]entity.MCQ, 0, len(raw.MCQs)),
	}

	for _, card := range raw.Flashcards {
		record.Flashcards = append(record.Flashcards, entity.Flashcard{
			Front: clean(card.Front),
			Back:  clean(card.Back),
		})
	}

	for _, mcq := range raw.MCQs {
		options := make([]string, 0, len(mcq.Options))
		for _, option := range mcq.Options {
			options = append(options, clean(option))
		}
		record.MCQs = append(record.MCQs, entity.MCQ{
			Question: clean(mcq.Question),
			Options:  options,
			Answer:   mcq.Answer,
		})
	}

	return record, nil
}

// Warnings reports MCQs whose answer matches none of their options. Such
// questions can never be scored correct; the record is kept anyway.
func Warnings(record *entity.ContentRecord) []string {
	var warnings []string
	for i, mcq := range record.MCQs {
		found := false
		for _, option := range mcq.Options {
			if option == mcq.Answer {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("mcq %d: answer %q matches no option", i, mcq.Answer))
		}
	}
	return warnings
}

func clean(s string) string {
	return strings.ReplaceAll(s, emphasisMarker, "")
}
