package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string
	CORSOrigin string
	UploadDir  string

	KafkaBrokers string
	KafkaTopic   string

	AIAPIURL string
	AIAPIKey string
	AIModel  string

	InquiryPurgeSchedule string
	InternalSecretKey    string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    getEnv("APP_PORT", "5000"),
		AppEnv:     os.Getenv("APP_ENV"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.created"),

		AIAPIURL: getEnv("AI_API_URL", "https://api.openai.com/v1/chat/completions"),
		AIAPIKey: os.Getenv("AI_API_KEY"),
		AIModel:  getEnv("AI_MODEL", "gpt-4o-mini"),

		InquiryPurgeSchedule: os.Getenv("INQUIRY_PURGE_SCHEDULE"),
		InternalSecretKey:    os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
