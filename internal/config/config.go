package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	QdrantURL          string `yaml:"qdrant_url"`
	QdrantAPIKey       string `yaml:"qdrant_api_key"`
	QdrantCollection   string `yaml:"qdrant_collection"`
	QdrantVectorSize   int    `yaml:"qdrant_vector_size"`
	EmbeddingBaseURL   string `yaml:"embedding_base_url"`
	EmbeddingAPIKey    string `yaml:"embedding_api_key"`
	EmbeddingModelName string `yaml:"embedding_model_name"`
	GeminiAPIKey       string `yaml:"gemini_api_key"`
	GeminiModelName    string `yaml:"gemini_model_name"`
	DBPath             string `yaml:"db_path"`
	APIPort            string `yaml:"api_port"`
	SearchLimit        int    `yaml:"search_limit"`
	LogLevel           string `yaml:"log_level"`
	LogFormat          string `yaml:"log_format"`
}

// Load reads configuration from an optional YAML file and environment
// variables, with environment variables taking precedence. A .env file in the
// current directory or any ancestor up to the project root is loaded first;
// variables already set in the environment win over .env values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		QdrantURL:          "http://localhost:6333",
		QdrantCollection:   "new_journal_chunks",
		QdrantVectorSize:   384,
		EmbeddingBaseURL:   "http://localhost:8081",
		EmbeddingModelName: "granite-embedding-278m-multilingual",
		GeminiModelName:    "gemini-1.5-flash",
		DBPath:             "./data/archive-search.db",
		APIPort:            "9000",
		SearchLimit:        10,
		LogLevel:           "info",
		LogFormat:          "text",
	}

	configPath := getEnv("CONFIG_PATH", "./config.yaml")
	if err := loadYAML(configPath, cfg); err != nil {
		return nil, err
	}

	applyString(&cfg.QdrantURL, "QDRANT_URL")
	applyString(&cfg.QdrantAPIKey, "QDRANT_API_KEY")
	applyString(&cfg.QdrantCollection, "QDRANT_COLLECTION")
	applyString(&cfg.EmbeddingBaseURL, "EMBEDDING_BASE_URL")
	applyString(&cfg.EmbeddingAPIKey, "EMBEDDING_API_KEY")
	applyString(&cfg.EmbeddingModelName, "EMBEDDING_MODEL_NAME")
	applyString(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	applyString(&cfg.GeminiModelName, "GEMINI_MODEL")
	applyString(&cfg.DBPath, "DB_PATH")
	applyString(&cfg.APIPort, "API_PORT")
	applyString(&cfg.LogLevel, "LOG_LEVEL")
	applyString(&cfg.LogFormat, "LOG_FORMAT")
	if err := applyInt(&cfg.QdrantVectorSize, "QDRANT_VECTOR_SIZE"); err != nil {
		return nil, err
	}
	if err := applyInt(&cfg.SearchLimit, "SEARCH_LIMIT"); err != nil {
		return nil, err
	}

	if cfg.QdrantVectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	if cfg.SearchLimit <= 0 {
		return nil, fmt.Errorf("SEARCH_LIMIT must be greater than 0")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	// Create the data directory if it doesn't exist (for the DB file).
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads a .env file from the current directory, then walks up
// toward the filesystem root looking for one at the project level.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// loadYAML overlays values from a YAML config file onto cfg. A missing file
// is not an error; only an unreadable or malformed one is.
func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func applyInt(dst *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	*dst = n
	return nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
