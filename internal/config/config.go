package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBPath           string
	SecretKey        string
	Timezone         string
	ScanInterval     time.Duration
	TelegramBotToken string
	TelegramChatID   string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment")
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", filepath.Join("data", "medminder.db")),
		SecretKey:        getEnv("SECRET_KEY", "change_me_in_production"),
		Timezone:         getEnv("TZ", "UTC"),
		ScanInterval:     getDurationEnv("REMINDER_SCAN_INTERVAL", time.Minute),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("invalid %s %q, falling back to %s", key, raw, fallback)
		return fallback
	}
	return parsed
}
