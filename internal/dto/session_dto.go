package dto

import (
	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type FlashcardView struct {
	Front   string `json:"front"`
	Back    string `json:"back"`
	Flipped bool   `json:"flipped"`
}

type MCQView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Result   string   `json:"result"` // "unanswered" | "correct" | "wrong"
}

// GetContentResponse is the read view of a session for the presentation
// layer: the current record, interaction flags, derived score, busy flag.
type GetContentResponse struct {
	Summary    string          `json:"summary"`
	Notes      string          `json:"notes"`
	NoteLines  []string        `json:"note_lines"`
	Flashcards []FlashcardView `json:"flashcards"`
	MCQs       []MCQView       `json:"mcqs"`
	Score      int             `json:"score"`
	Uploading  bool            `json:"uploading"`
}

type ToggleFlipResponse struct {
	Index   int  `json:"index"`
	Flipped bool `json:"flipped"`
}

// QuestionIndex is a pointer so index 0 still satisfies required.
type AnswerMCQRequest struct {
	QuestionIndex  *int   `json:"question_index" validate:"required"`
	SelectedOption string `json:"selected_option" validate:"required"`
}

type AnswerMCQResponse struct {
	QuestionIndex int    `json:"question_index"`
	Result        string `json:"result"`
	Score         int    `json:"score"`
}

type SpeakRequest struct {
	Text string `json:"text" validate:"required"`
}

// PublishSpeakTextMessage is the payload published on the speech topic.
type PublishSpeakTextMessage struct {
	SessionId string `json:"session_id"`
	Text      string `json:"text"`
}
