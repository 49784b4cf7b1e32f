package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Font    FontConfig
	HTTP    HTTPConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port string
}

// FontConfig selects the server-wide default typeface. File, when set,
// wins over the name list.
type FontConfig struct {
	DefaultName string
	File        string
}

type HTTPConfig struct {
	Timeout time.Duration
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Font: FontConfig{
			DefaultName: getEnv("FONT_DEFAULT", "Arial"),
			File:        getEnv("FONT_FILE", ""),
		},
		HTTP: HTTPConfig{
			Timeout: getDurationEnv("HTTP_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
