package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type Config struct {
	DB       DBConfig
	Telegram TelegramConfig
	Report   ReportConfig
}

type DBConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	AutoMigrate bool // apply embedded migrations before loading data
}

type TelegramConfig struct {
	Token        string
	ReportChatID int64 // chat that receives a copy of the report; 0 disables
}

type ReportConfig struct {
	Bracket string // Low, Medium or High
	Source  string // "static" or "postgres"
}

// Enabled reports whether the report should also be sent to Telegram.
func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.ReportChatID != 0
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT: %w", err)
	}

	var chatID int64
	if v := getEnv("REPORT_CHAT_ID", ""); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("REPORT_CHAT_ID: %w", err)
		}
		chatID = id
	}

	source := getEnv("DATA_SOURCE", SourceStatic)
	if source != SourceStatic && source != SourcePostgres {
		return nil, fmt.Errorf("DATA_SOURCE: unknown source %q", source)
	}

	return &Config{
		DB: DBConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        port,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "orders"),
			AutoMigrate: isTrue(getEnv("AUTO_MIGRATE", "")),
		},
		Telegram: TelegramConfig{
			Token:        getEnv("TOKEN", ""),
			ReportChatID: chatID,
		},
		Report: ReportConfig{
			Bracket: getEnv("PRICE_BRACKET", "High"),
			Source:  source,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTrue(v string) bool {
	v = strings.TrimSpace(v)
	return v == "1" || strings.EqualFold(v, "true")
}
