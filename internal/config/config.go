package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-timesheet/internal/worktime"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBRetries  int

	RedisAddr string

	CORSAllowOrigins []string

	KafkaBroker        string
	KafkaGroupID       string
	OutboxPollInterval time.Duration

	// Workdays are the daily rows materialized for every timesheet.
	Workdays []worktime.Weekday
}

func Load() (*Config, error) {
	workdays, err := worktime.ParseWeekdays(getEnv("TIMESHEET_WORKDAYS", "MON,TUE,WED,THU,FRI"))
	if err != nil {
		return nil, fmt.Errorf("TIMESHEET_WORKDAYS: %w", err)
	}

	retries, err := strconv.Atoi(getEnv("DB_RETRIES", "5"))
	if err != nil || retries < 1 {
		return nil, fmt.Errorf("DB_RETRIES must be a positive integer")
	}

	pollInterval, err := time.ParseDuration(getEnv("OUTBOX_POLL_INTERVAL", "3s"))
	if err != nil {
		return nil, fmt.Errorf("OUTBOX_POLL_INTERVAL: %w", err)
	}

	return &Config{
		Port:               getEnv("PORT", "3000"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getEnv("DB_NAME", "timesheet"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		DBRetries:          retries,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		CORSAllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		KafkaGroupID:       getEnv("KAFKA_GROUP_ID", "go-timesheet-materializer"),
		OutboxPollInterval: pollInterval,
		Workdays:           workdays,
	}, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
