package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	Port      string
	JWTSecret string
	JWTExpiry string
	RedisURL  string
	RedisAddr string
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	SMTPFrom  string
	OriginURL string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("APP_PORT", getEnv("PORT", "5000")),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
		JWTExpiry: getEnv("JWT_EXPIRY", "24h"),
		RedisURL:  os.Getenv("REDIS_URL"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		SMTPFrom:  os.Getenv("SMTP_FROM"),
		OriginURL: os.Getenv("ORIGIN_URL"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
