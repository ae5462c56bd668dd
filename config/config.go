package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	RedisAddress        string
	RedisMaxConnections int
	RequestChannel      string // запросы и регистрация клиентов сервиса моделей
	ActionsChannel      string // действия для синхронизации клиентов задачи
	StatusChannel       string // включение и выключение модели

	InferenceURL     string
	InferenceTimeout time.Duration

	LogLevel   string
	GinRelease bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	maxConns, err := strconv.Atoi(getEnv("REDIS_MAX_CONNECTIONS", "10"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_MAX_CONNECTIONS: %w", err)
	}
	timeout, err := time.ParseDuration(getEnv("INFERENCE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("INFERENCE_TIMEOUT: %w", err)
	}
	release, err := strconv.ParseBool(getEnv("GIN_RELEASE", "false"))
	if err != nil {
		return nil, fmt.Errorf("GIN_RELEASE: %w", err)
	}

	cfg := &Config{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		RedisAddress:        getEnv("REDIS_ADDRESS", ":6379"),
		RedisMaxConnections: maxConns,
		RequestChannel:      getEnv("REQUEST_CHANNEL", "modelRequest"),
		ActionsChannel:      getEnv("ACTIONS_CHANNEL", "syncActions"),
		StatusChannel:       getEnv("STATUS_CHANNEL", "modelStatus"),
		InferenceURL:        getEnv("INFERENCE_URL", "http://localhost:5000"),
		InferenceTimeout:    timeout,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		GinRelease:          release,
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
