package quiz

import (
	"errors"

	"ai-studyaid-be/internal/entity"
)

// ErrIndexOutOfRange signals an index the current content record does not
// have. The presentation layer only emits indices it was given, so hitting
// this means a UI-binding bug.
var ErrIndexOutOfRange = errors.New("index out of range")

// NewState builds a fresh interaction state sized to the given record: all
// cards unflipped, all questions unanswered.
func NewState(record *entity.ContentRecord) *entity.InteractionState {
	numCards := 0
	if record != nil {
		numCards = len(record.Flashcards)
	}
	return &entity.InteractionState{
		Flipped:    make([]bool, numCards),
		MCQResults: make(map[int]entity.MCQResult),
	}
}

// ToggleFlip flips the card at index. Toggling twice restores the prior state.
func ToggleFlip(state *entity.InteractionState, index int) error {
	if index < 0 || index >= len(state.Flipped) {
		return ErrIndexOutOfRange
	}
	state.Flipped[index] = !state.Flipped[index]
	return nil
}

// Answer grades the selected option against the question's answer by exact
// string equality and records the result. Re-answering overwrites the prior
// result; questions are never locked after a first answer.
func Answer(record *entity.ContentRecord, state *entity.InteractionState, questionIndex int, selectedOption string) (entity.MCQResult, error) {
	if record == nil || questionIndex < 0 || questionIndex >= len(record.MCQs) {
		return entity.MCQUnanswered, ErrIndexOutOfRange
	}
	result := entity.MCQWrong
	if selectedOption == record.MCQs[questionIndex].Answer {
		result = entity.MCQCorrect
	}
	state.MCQResults[questionIndex] = result
	return result, nil
}

// Score recomputes the score from scratch: the count of questions whose most
// recent result is correct.
func Score(state *entity.InteractionState) int {
	score := 0
	for _, result := range state.MCQResults {
		if result == entity.MCQCorrect {
			score++
		}
	}
	return score
}

// Result returns the recorded result for a question, or unanswered.
func Result(state *entity.InteractionState, questionIndex int) entity.MCQResult {
	if result, ok := state.MCQResults[questionIndex]; ok {
		return result
	}
	return entity.MCQUnanswered
}
