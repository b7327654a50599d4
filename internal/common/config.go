package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Worker    WorkerConfig
	Engine    EngineConfig
	Whisper   WhisperConfig
	Extractor ExtractorConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// WorkerConfig holds worker polling configuration
type WorkerConfig struct {
	PollInterval time.Duration
	StageTimeout time.Duration
}

// EngineConfig holds the shared-inference-engine lock configuration
type EngineConfig struct {
	LockPath       string
	AcquireTimeout time.Duration
	RetryDelay     time.Duration
	MaxAttempts    int
}

// WhisperConfig holds transcription engine configuration
type WhisperConfig struct {
	Binary    string
	ModelPath string
	Language  string
}

// ExtractorConfig holds task-extraction LLM configuration
type ExtractorConfig struct {
	BaseURL  string
	Model    string
	Timeout  time.Duration
	VaultDir string
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Worker: WorkerConfig{
			PollInterval: getEnvAsDuration("WORKER_POLL_INTERVAL", 2*time.Second),
			StageTimeout: getEnvAsDuration("WORKER_STAGE_TIMEOUT", 10*time.Minute),
		},
		Engine: EngineConfig{
			LockPath:       getEnv("ENGINE_LOCK_PATH", "./data/engine.lock"),
			AcquireTimeout: getEnvAsDuration("ENGINE_ACQUIRE_TIMEOUT", 90*time.Second),
			RetryDelay:     getEnvAsDuration("ENGINE_RETRY_DELAY", 250*time.Millisecond),
			MaxAttempts:    getEnvAsInt("ENGINE_MAX_ATTEMPTS", 3),
		},
		Whisper: WhisperConfig{
			Binary:    getEnv("WHISPER_BINARY", "whisper-cli"),
			ModelPath: getEnv("WHISPER_MODEL", ""),
			Language:  getEnv("WHISPER_LANGUAGE", "en"),
		},
		Extractor: ExtractorConfig{
			BaseURL:  getEnv("OLLAMA_URL", "http://127.0.0.1:11434"),
			Model:    getEnv("OLLAMA_MODEL", "llama3.1"),
			Timeout:  getEnvAsDuration("OLLAMA_TIMEOUT", 2*time.Minute),
			VaultDir: getEnv("ESTIMATES_VAULT_DIR", "./data/vault"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Engine.LockPath == "" {
		return NewAppError("CONFIG_ERROR", "ENGINE_LOCK_PATH is required", ErrInvalidInput)
	}
	if c.Worker.PollInterval <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKER_POLL_INTERVAL must be positive", ErrInvalidInput)
	}
	if c.Engine.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "ENGINE_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
