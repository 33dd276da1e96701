package service

import (
	"context"

	"ai-studyaid-be/internal/dto"
	"ai-studyaid-be/internal/mapper"
	"ai-studyaid-be/internal/pkg/logger"
	"ai-studyaid-be/internal/repository/memory"
	"ai-studyaid-be/pkg/dialogue"

	"github.com/google/uuid"
)

// IDialogueService drives the scripted assistant for a session. It is
// independent of the content record and interaction state.
type IDialogueService interface {
	SendMessage(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetTranscript(ctx context.Context, sessionId uuid.UUID) (*dto.GetTranscriptResponse, error)
}

type dialogueService struct {
	sessionRepo *memory.SessionRepository
	engine      *dialogue.Engine
	logger      logger.ILogger
}

func NewDialogueService(
	sessionRepo *memory.SessionRepository,
	engine *dialogue.Engine,
	sysLogger logger.ILogger,
) IDialogueService {
	return &dialogueService{
		sessionRepo: sessionRepo,
		engine:      engine,
		logger:      sysLogger,
	}
}

// SendMessage runs one exchange. The session lock is held through the reply
// delay, so exchanges for a session are serialized and transcript entries
// never interleave out of order.
func (ds *dialogueService) SendMessage(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, found := ds.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	sent, reply, err := ds.engine.SubmitUserMessage(ctx, session.Dialogue, request.Text)
	if err != nil {
		return nil, err
	}

	res := &dto.SendChatResponse{Stage: session.Dialogue.Stage}
	if sent != nil {
		res.Sent = mapper.ToChatEntryDTO(sent)
		res.Reply = mapper.ToChatEntryDTO(reply)
		ds.logger.Debug("DIALOGUE", "Exchange completed", map[string]interface{}{
			"session_id": sessionId.String(),
			"stage":      session.Dialogue.Stage,
		})
	}
	return res, nil
}

func (ds *dialogueService) GetTranscript(ctx context.Context, sessionId uuid.UUID) (*dto.GetTranscriptResponse, error) {
	session, found := ds.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()
	return mapper.ToTranscriptResponse(session.Dialogue), nil
}
