package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                  string
	DatabaseDSN             string
	RedisAddr               string
	RedisQueueKey           string
	QueueWorkers            int
	QueuePollIntervalSecond int
	RateLimit               int
	ShutdownTimeoutSeconds  int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                  fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:             getEnv("DATABASE_DSN", "tasks.db"),
		RedisAddr:               fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisQueueKey:           getEnv("REDIS_QUEUE_KEY", "task_status_updates"),
		QueueWorkers:            getEnvAsInt("QUEUE_WORKERS", 3),
		QueuePollIntervalSecond: getEnvAsInt("QUEUE_POLL_INTERVAL_SECONDS", 2),
		RateLimit:               getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds:  getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RedisQueueKey == "" {
		log.Fatal("REDIS_QUEUE_KEY must not be empty")
	}
	if cfg.QueueWorkers <= 0 {
		log.Fatal("QUEUE_WORKERS must be greater than 0")
	}
	if cfg.QueuePollIntervalSecond <= 0 {
		log.Fatal("QUEUE_POLL_INTERVAL_SECONDS must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
