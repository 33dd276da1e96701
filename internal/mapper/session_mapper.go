package mapper

import (
	"strings"

	"ai-studyaid-be/internal/dto"
	"ai-studyaid-be/internal/entity"
	"ai-studyaid-be/pkg/quiz"
)

// ToContentResponse builds the presentation read view. The caller must hold
// the session lock.
func ToContentResponse(session *entity.StudySession) *dto.GetContentResponse {
	res := &dto.GetContentResponse{
		NoteLines:  []string{},
		Flashcards: []dto.FlashcardView{},
		MCQs:       []dto.MCQView{},
		Score:      quiz.Score(session.Interaction),
		Uploading:  session.Uploading,
	}

	if session.Content == nil {
		return res
	}

	res.Summary = session.Content.Summary
	res.Notes = session.Content.Notes
	if session.Content.Notes != "" {
		res.NoteLines = strings.Split(session.Content.Notes, "\n")
	}

	for i, card := range session.Content.Flashcards {
		res.Flashcards = append(res.Flashcards, dto.FlashcardView{
			Front:   card.Front,
			Back:    card.Back,
			Flipped: session.Interaction.Flipped[i],
		})
	}

	for i, mcq := range session.Content.MCQs {
		res.MCQs = append(res.MCQs, dto.MCQView{
			Question: mcq.Question,
			Options:  mcq.Options,
			Result:   string(quiz.Result(session.Interaction, i)),
		})
	}

	return res
}

func ToChatEntryDTO(entry *entity.ChatEntry) *dto.ChatEntryDTO {
	if entry == nil {
		return nil
	}
	return &dto.ChatEntryDTO{
		Text:      entry.Text,
		Sender:    entry.Sender,
		Timestamp: entry.Timestamp,
	}
}

func ToTranscriptResponse(state *entity.DialogueState) *dto.GetTranscriptResponse {
	res := &dto.GetTranscriptResponse{
		Transcript: make([]dto.ChatEntryDTO, 0, len(state.Transcript)),
		Stage:      state.Stage,
	}
	for _, entry := range state.Transcript {
		res.Transcript = append(res.Transcript, dto.ChatEntryDTO{
			Text:      entry.Text,
			Sender:    entry.Sender,
			Timestamp: entry.Timestamp,
		})
	}
	return res
}
