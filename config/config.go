package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	SMS         SMSConfig
	OTP         OTPConfig
	Redis       RedisConfig
}

type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
}

type OTPConfig struct {
	TTL        time.Duration
	CodeLength int
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

// Load reads configuration from the environment, with a .env file picked up
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "classmate-api"),
		SMS: SMSConfig{
			GatewayURL: os.Getenv("SMS_GATEWAY_URL"),
			APIKey:     os.Getenv("SMS_API_KEY"),
			SenderID:   os.Getenv("SMS_SENDER_ID"),
		},
		OTP: OTPConfig{
			TTL:        time.Duration(getEnvInt("OTP_TTL_SECONDS", 300)) * time.Second,
			CodeLength: getEnvInt("OTP_CODE_LENGTH", 6),
		},
		Redis: loadRedisConfig(),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing required env var: DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}
	return cfg, nil
}

func loadRedisConfig() RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return RedisConfig{Enabled: false}
	}
	return RedisConfig{
		Enabled:  true,
		Address:  addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
		// Role mapping changes rarely, cache it for five days.
		TTL: time.Duration(getEnvInt("REDIS_TTL_SECONDS", 60*60*24*5)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
