package bootstrap

import (
	"log"
	"time"

	"ai-studyaid-be/internal/config"
	"ai-studyaid-be/internal/constant"
	"ai-studyaid-be/internal/controller"
	"ai-studyaid-be/internal/pkg/logger"
	"ai-studyaid-be/internal/repository/memory"
	"ai-studyaid-be/internal/service"
	"ai-studyaid-be/pkg/analyzer"
	"ai-studyaid-be/pkg/dialogue"
	"ai-studyaid-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	SpeechConsumerService service.ISpeechConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	sessionRepo := memory.NewSessionRepository(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		time.Duration(cfg.Session.CleanupMinutes)*time.Minute,
	)

	analyzerClient := analyzer.NewClient(
		cfg.Analyzer.BaseURL,
		time.Duration(cfg.Analyzer.TimeoutSeconds)*time.Second,
	)

	// Initialize Speech Provider based on Config
	var synthesizer speech.Synthesizer
	if cfg.Speech.BaseURL != "" {
		synthesizer = speech.NewHTTPSynthesizer(cfg.Speech.BaseURL)
		log.Printf("[INFO] Using Speech Provider: HTTP (%s)", cfg.Speech.BaseURL)
	} else {
		synthesizer = speech.NewNoopSynthesizer()
		log.Printf("[INFO] Using Speech Provider: NOOP (SPEECH_BASE_URL not set)")
	}

	engine := dialogue.NewEngine(
		constant.DialogueScript,
		constant.DialogueTerminalMessage,
		time.Duration(cfg.Chat.ReplyDelayMs)*time.Millisecond,
	)

	// 4. Services
	sessionService := service.NewSessionService(sessionRepo, analyzerClient, pubSub, cfg.Speech.TopicName, sysLogger)
	dialogueService := service.NewDialogueService(sessionRepo, engine, sysLogger)
	speechConsumer := service.NewSpeechConsumerService(pubSub, cfg.Speech.TopicName, synthesizer, sysLogger)

	return &Container{
		SessionController:     controller.NewSessionController(sessionService),
		ChatController:        controller.NewChatController(dialogueService),
		SpeechConsumerService: speechConsumer,
		Logger:                sysLogger,
	}
}
