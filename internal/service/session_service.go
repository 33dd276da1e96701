package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"ai-studyaid-be/internal/dto"
	"ai-studyaid-be/internal/entity"
	"ai-studyaid-be/internal/mapper"
	"ai-studyaid-be/internal/pkg/logger"
	"ai-studyaid-be/internal/repository/memory"
	"ai-studyaid-be/pkg/analyzer"
	"ai-studyaid-be/pkg/content"
	"ai-studyaid-be/pkg/events"
	"ai-studyaid-be/pkg/export"
	"ai-studyaid-be/pkg/quiz"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUploadInFlight  = errors.New("an upload is already in progress")
)

// ISessionService is the session orchestrator: it owns the content record
// and interaction state of every study session.
type ISessionService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetContent(ctx context.Context, sessionId uuid.UUID) (*dto.GetContentResponse, error)
	SubmitFile(ctx context.Context, sessionId uuid.UUID, filename string, file io.Reader) (*dto.GetContentResponse, error)
	ToggleFlip(ctx context.Context, sessionId uuid.UUID, index int) (*dto.ToggleFlipResponse, error)
	AnswerMCQ(ctx context.Context, sessionId uuid.UUID, request *dto.AnswerMCQRequest) (*dto.AnswerMCQResponse, error)
	ExportText(ctx context.Context, sessionId uuid.UUID) (string, error)
	ReadAloud(ctx context.Context, sessionId uuid.UUID, request *dto.SpeakRequest) error
}

type sessionService struct {
	sessionRepo    *memory.SessionRepository
	analyzerClient *analyzer.Client
	pubSub         *gochannel.GoChannel
	speechTopic    string
	logger         logger.ILogger
}

func NewSessionService(
	sessionRepo *memory.SessionRepository,
	analyzerClient *analyzer.Client,
	pubSub *gochannel.GoChannel,
	speechTopic string,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		analyzerClient: analyzerClient,
		pubSub:         pubSub,
		speechTopic:    speechTopic,
		logger:         sysLogger,
	}
}

func (ss *sessionService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := &entity.StudySession{
		Id:          uuid.New(),
		Interaction: quiz.NewState(nil),
		Dialogue:    &entity.DialogueState{},
		CreatedAt:   time.Now(),
	}
	ss.sessionRepo.Save(session)

	ss.logger.Info("SESSION", "Session created", map[string]interface{}{
		"session_id": session.Id.String(),
	})
	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (ss *sessionService) GetContent(ctx context.Context, sessionId uuid.UUID) (*dto.GetContentResponse, error) {
	session, found := ss.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()
	return mapper.ToContentResponse(session), nil
}

// SubmitFile sends the file to the analysis service and, on success, installs
// the normalized record and a fresh interaction state. On any failure the
// previous record and interaction state stay untouched. A second submission
// while one is in flight is rejected; the prior content stays readable and
// interactive during the call.
func (ss *sessionService) SubmitFile(ctx context.Context, sessionId uuid.UUID, filename string, file io.Reader) (*dto.GetContentResponse, error) {
	session, found := ss.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	if session.Uploading {
		session.Unlock()
		return nil, ErrUploadInFlight
	}
	session.Uploading = true
	session.Unlock()

	// The analysis call runs outside the lock so reads keep working.
	raw, err := ss.analyzerClient.Analyze(ctx, filename, file)
	var record *entity.ContentRecord
	if err == nil {
		record, err = content.Normalize(raw)
	}
	if err != nil {
		session.Lock()
		session.Uploading = false
		session.Unlock()

		ss.logger.Error("SESSION", "Upload failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"filename":   filename,
			"error":      err.Error(),
		})
		return nil, err
	}

	for _, warning := range content.Warnings(record) {
		ss.logger.Warn("SESSION", "Content quality issue", map[string]interface{}{
			"session_id": sessionId.String(),
			"warning":    warning,
		})
	}

	now := time.Now()
	session.Lock()
	session.Content = record
	session.Interaction = quiz.NewState(record)
	session.Uploading = false
	session.UpdatedAt = &now
	res := mapper.ToContentResponse(session)
	session.Unlock()

	ss.sessionRepo.Touch(session)
	ss.logger.Info("SESSION", "Content installed", map[string]interface{}{
		"session_id": sessionId.String(),
		"flashcards": len(record.Flashcards),
		"mcqs":       len(record.MCQs),
	})
	return res, nil
}

func (ss *sessionService) ToggleFlip(ctx context.Context, sessionId uuid.UUID, index int) (*dto.ToggleFlipResponse, error) {
	session, found := ss.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if err := quiz.ToggleFlip(session.Interaction, index); err != nil {
		return nil, err
	}
	return &dto.ToggleFlipResponse{
		Index:   index,
		Flipped: session.Interaction.Flipped[index],
	}, nil
}

func (ss *sessionService) AnswerMCQ(ctx context.Context, sessionId uuid.UUID, request *dto.AnswerMCQRequest) (*dto.AnswerMCQResponse, error) {
	session, found := ss.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	result, err := quiz.Answer(session.Content, session.Interaction, *request.QuestionIndex, request.SelectedOption)
	if err != nil {
		return nil, err
	}
	return &dto.AnswerMCQResponse{
		QuestionIndex: *request.QuestionIndex,
		Result:        string(result),
		Score:         quiz.Score(session.Interaction),
	}, nil
}

func (ss *sessionService) ExportText(ctx context.Context, sessionId uuid.UUID) (string, error) {
	session, found := ss.sessionRepo.Get(sessionId)
	if !found {
		return "", ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()
	return export.Render(session.Content), nil
}

// ReadAloud publishes the text on the speech topic. Fire-and-forget: the
// background consumer forwards it to the synthesizer, and synthesis failures
// are never surfaced to the caller.
func (ss *sessionService) ReadAloud(ctx context.Context, sessionId uuid.UUID, request *dto.SpeakRequest) error {
	if _, found := ss.sessionRepo.Get(sessionId); !found {
		return ErrSessionNotFound
	}

	evt := events.NewSpeechRequested(sessionId.String(), request.Text)
	payload, err := json.Marshal(evt.Payload())
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ss.pubSub.Publish(ss.speechTopic, msg); err != nil {
		ss.logger.Error("SESSION", "Failed to publish speech request", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
	return nil
}
