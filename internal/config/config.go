package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Analyzer AnalyzerConfig
	Speech   SpeechConfig
	Chat     ChatConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AnalyzerConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type SpeechConfig struct {
	BaseURL   string // empty disables synthesis (noop provider)
	TopicName string
}

type ChatConfig struct {
	ReplyDelayMs int
}

type SessionConfig struct {
	TTLMinutes     int
	CleanupMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Analyzer: AnalyzerConfig{
			BaseURL:        getEnv("ANALYZER_BASE_URL", "http://127.0.0.1:5001"),
			TimeoutSeconds: getEnvAsInt("ANALYZER_TIMEOUT_SECONDS", 120),
		},
		Speech: SpeechConfig{
			BaseURL:   getEnv("SPEECH_BASE_URL", ""),
			TopicName: getEnv("SPEAK_TEXT_TOPIC_NAME", "SPEAK_TEXT"),
		},
		Chat: ChatConfig{
			ReplyDelayMs: getEnvAsInt("CHAT_REPLY_DELAY_MS", 1000),
		},
		Session: SessionConfig{
			TTLMinutes:     getEnvAsInt("SESSION_TTL_MINUTES", 60),
			CleanupMinutes: getEnvAsInt("SESSION_CLEANUP_MINUTES", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
