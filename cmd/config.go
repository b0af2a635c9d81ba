package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	AMQPURL        string
	AMQPExchange   string
	LLMAPIKey      string
	LLMModel       string
	LLMBaseURL     string
	MenuFile       string
	SessionIdleTTL time.Duration
}

// DatabaseEnabled reports whether the order archive is configured.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
