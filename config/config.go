package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var AppConfig Config

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type TelegramConfig struct {
	BotToken string `json:"-"`
	ChatIDs  string `json:"chat_ids"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
	From     string `json:"from"`
}

type Config struct {
	Environment       string         `json:"environment"`
	ServerPort        string         `json:"server_port"`
	DataFile          string         `json:"data_file"`
	VisitorDataFile   string         `json:"visitor_data_file"`
	DatabaseURL       string         `json:"-"`
	Redis             RedisConfig    `json:"redis"`
	Telegram          TelegramConfig `json:"telegram"`
	SMTP              SMTPConfig     `json:"smtp"`
	AdminEmails       string         `json:"admin_emails"`
	AdminPasswordHash string         `json:"-"`
	JWTSecret         string         `json:"-"`
	SentryDSN         string         `json:"-"`
	RateLimitForms    int            `json:"rate_limit_forms"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		ServerPort:      getEnv("PORT", "3001"),
		DataFile:        getEnv("DATA_FILE", "data.json"),
		VisitorDataFile: getEnv("VISITOR_DATA_FILE", "visitor-data.json"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			// TELEGRAM_CHAT_ID is the legacy single-chat variable
			ChatIDs: getEnv("TELEGRAM_CHAT_IDS", getEnv("TELEGRAM_CHAT_ID", "")),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),
		},
		AdminEmails:       getEnv("ADMIN_EMAILS", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		RateLimitForms:    getEnvAsInt("RATE_LIMIT_FORMS", 10),
	}
	AppConfig.Redis.Enabled = AppConfig.Redis.Address != ""

	if AppConfig.AdminPasswordHash != "" && AppConfig.JWTSecret == "" {
		log.Println("⚠️ ADMIN_PASSWORD_HASH is set but JWT_SECRET is missing; admin login will fail")
	}

	logConfig()
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return fallback
	}
	return value
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Storage: postgres(%t), redis(%t), file(%s)",
		AppConfig.DatabaseURL != "",
		AppConfig.Redis.Enabled,
		AppConfig.DataFile)
	log.Printf("Notifications: telegram(%t), email(%t)",
		AppConfig.Telegram.BotToken != "" && AppConfig.Telegram.ChatIDs != "",
		AppConfig.SMTP.Host != "" && AppConfig.AdminEmails != "")
	log.Printf("Admin auth: %t", AppConfig.AdminPasswordHash != "")
}
