package service

import (
	"context"
	"encoding/json"

	"ai-studyaid-be/internal/dto"
	"ai-studyaid-be/internal/pkg/logger"
	"ai-studyaid-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type ISpeechConsumerService interface {
	Consume(ctx context.Context) error
}

// speechConsumerService subscribes to the speech topic and forwards each
// requested text to the synthesis facility.
type speechConsumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	synthesizer speech.Synthesizer
	logger      logger.ILogger
}

func NewSpeechConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	synthesizer speech.Synthesizer,
	sysLogger logger.ILogger,
) ISpeechConsumerService {
	return &speechConsumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		synthesizer: synthesizer,
		logger:      sysLogger,
	}
}

func (cs *speechConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *speechConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSpeakTextMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("SPEECH", "Failed to unmarshal speech request", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.synthesizer.Speak(ctx, payload.Text); err != nil {
		// Synthesis failure is delegated to the collaborator; log only.
		cs.logger.Warn("SPEECH", "Speech synthesis failed", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
	}
	msg.Ack()
}
