package dto

import "time"

// Text is not validated as required here: empty or whitespace-only messages
// are a silent no-op of the dialogue engine, not a client error.
type SendChatRequest struct {
	Text string `json:"text"`
}

type ChatEntryDTO struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// SendChatResponse carries both entries of one exchange. Sent and Reply are
// nil when the message was ignored.
type SendChatResponse struct {
	Sent  *ChatEntryDTO `json:"sent,omitempty"`
	Reply *ChatEntryDTO `json:"reply,omitempty"`
	Stage int           `json:"stage"`
}

type GetTranscriptResponse struct {
	Transcript []ChatEntryDTO `json:"transcript"`
	Stage      int            `json:"stage"`
}
