package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	Remote   RemoteConfig
	Gemini   GeminiConfig
	Parser   ParserConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	UploadPath string
}

type WorkerConfig struct {
	Concurrency  int
	PollInterval time.Duration
}

type RemoteConfig struct {
	ParserURL string
	Timeout   time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Timeout time.Duration
}

// ParserConfig exposes the empirically tuned pipeline constants. The
// corruption thresholds and the English-default rule are business rules,
// kept overridable rather than baked in.
type ParserConfig struct {
	CorruptionThresholdRaw      int
	CorruptionThresholdPersonal int
	DefaultEnglishFluent        bool
	OCRLanguages                string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_parser"),
		},
		Storage: StorageConfig{
			UploadPath: getEnv("UPLOAD_PATH", "./uploads"),
		},
		Worker: WorkerConfig{
			Concurrency:  getEnvAsInt("WORKER_CONCURRENCY", 3),
			PollInterval: getEnvAsDuration("WORKER_POLL_INTERVAL", "10s"),
		},
		Remote: RemoteConfig{
			ParserURL: getEnv("REMOTE_PARSER_URL", ""),
			Timeout:   getEnvAsDuration("REMOTE_PARSER_TIMEOUT", "25s"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", "55s"),
		},
		Parser: ParserConfig{
			CorruptionThresholdRaw:      getEnvAsInt("CORRUPTION_THRESHOLD_RAW", 2),
			CorruptionThresholdPersonal: getEnvAsInt("CORRUPTION_THRESHOLD_PERSONAL", 3),
			DefaultEnglishFluent:        getEnvAsBool("DEFAULT_ENGLISH_FLUENT", true),
			OCRLanguages:                getEnv("OCR_LANGUAGES", "eng"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
