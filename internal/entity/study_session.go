package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Flashcard is a single two-sided study card in presentation order.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// MCQ is a multiple-choice question. Answer must equal one of Options
// exactly; records violating that can never be scored correct.
type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ContentRecord is the normalized study content produced from one upload.
// It is replaced wholesale on every successful submission.
type ContentRecord struct {
	Summary    string      `json:"summary"`
	Notes      string      `json:"notes"`
	Flashcards []Flashcard `json:"flashcards"`
	MCQs       []MCQ       `json:"mcqs"`
}

type MCQResult string

const (
	MCQUnanswered MCQResult = "unanswered"
	MCQCorrect    MCQResult = "correct"
	MCQWrong      MCQResult = "wrong"
)

// InteractionState tracks flip flags and quiz answers for the current
// ContentRecord. The score is always derived from MCQResults, never stored.
type InteractionState struct {
	Flipped    []bool            `json:"flipped"`
	MCQResults map[int]MCQResult `json:"mcq_results"`
}

const (
	ChatSenderUser      = "user"
	ChatSenderAssistant = "assistant"
)

type ChatEntry struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// DialogueState is the scripted-assistant conversation state. Stage is a
// saturating cursor into the fixed prompt script.
type DialogueState struct {
	Transcript []ChatEntry `json:"transcript"`
	Stage      int         `json:"stage"`
}

// StudySession is the explicit per-session aggregate handed to the
// presentation layer. Content and Interaction change together; Dialogue has
// an independent lifecycle.
type StudySession struct {
	Id          uuid.UUID
	Content     *ContentRecord
	Interaction *InteractionState
	Dialogue    *DialogueState
	Uploading   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	mu sync.Mutex
}

// Lock serializes mutations on the session. All writers must hold it.
func (s *StudySession) Lock() { s.mu.Lock() }

func (s *StudySession) Unlock() { s.mu.Unlock() }
