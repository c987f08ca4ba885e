package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Keys     APIKeys
	Realtime RealtimeConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type APIKeys struct {
	OpenAI string
}

type RealtimeConfig struct {
	Model string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Realtime: RealtimeConfig{
			Model: getEnv("REALTIME_MODEL", "gpt-realtime-mini-2025-12-15"),
		},
	}
}

// VoiceEnabled reports whether the upstream speech API is usable.
func (c *Config) VoiceEnabled() bool {
	return c.Keys.OpenAI != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
