package export

import (
	"fmt"
	"strings"

	"ai-studyaid-be/internal/entity"
)

// Filename is the fixed download name offered to the user.
const Filename = "study_notes.txt"

// Render serializes the record into a four-section plain-text document:
// Summary, Short Notes, Flashcards, MCQs, in that order. A nil record yields
// the section headers with empty bodies.
func Render(record *entity.ContentRecord) string {
	if record == nil {
		record = &entity.ContentRecord{}
	}

	cards := make([]string, 0, len(record.Flashcards))
	for _, card := range record.Flashcards {
		cards = append(cards, fmt.Sprintf("Q: %s | A: %s", card.Front, card.Back))
	}

	mcqs := make([]string, 0, len(record.MCQs))
	for _, mcq := range record.MCQs {
		mcqs = append(mcqs, fmt.Sprintf("Q: %s | Options: %s", mcq.Question, strings.Join(mcq.Options, ", ")))
	}

	return fmt.Sprintf(
		"Summary:\n%s\n\nShort Notes:\n%s\n\nFlashcards:\n%s\n\nMCQs:\n%s",
		record.Summary,
		record.Notes,
		strings.Join(cards, "\n"),
		strings.Join(mcqs, "\n"),
	)
}
