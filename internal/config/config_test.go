package config

import (
	"os"
	"path/filepath"
	"testing"
)

var configEnvVars = []string{
	"CONFIG_PATH",
	"QDRANT_URL", "QDRANT_API_KEY", "QDRANT_COLLECTION", "QDRANT_VECTOR_SIZE",
	"EMBEDDING_BASE_URL", "EMBEDDING_API_KEY", "EMBEDDING_MODEL_NAME",
	"GEMINI_API_KEY", "GEMINI_MODEL",
	"DB_PATH", "API_PORT", "SEARCH_LIMIT", "LOG_LEVEL", "LOG_FORMAT",
}

// resetEnv clears all configuration variables and restores them after the test.
func resetEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		original, present := os.LookupEnv(key)
		_ = os.Unsetenv(key)
		if present {
			t.Cleanup(func() { _ = os.Setenv(key, original) })
		}
	}
}

// tempDBPath points DB_PATH into a test temp dir so Load does not create
// ./data in the working directory.
func tempDBPath(t *testing.T) {
	t.Helper()
	_ = os.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoadDefaults(t *testing.T) {
	resetEnv(t)
	tempDBPath(t)
	_ = os.Setenv("GEMINI_API_KEY", "test-key")
	_ = os.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.QdrantCollection != "new_journal_chunks" {
		t.Errorf("QdrantCollection = %q, want new_journal_chunks", cfg.QdrantCollection)
	}
	if cfg.QdrantVectorSize != 384 {
		t.Errorf("QdrantVectorSize = %d, want 384", cfg.QdrantVectorSize)
	}
	if cfg.GeminiModelName != "gemini-1.5-flash" {
		t.Errorf("GeminiModelName = %q, want gemini-1.5-flash", cfg.GeminiModelName)
	}
	if cfg.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d, want 10", cfg.SearchLimit)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
}

func TestLoadRequiresGeminiKey(t *testing.T) {
	resetEnv(t)
	tempDBPath(t)
	_ = os.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without GEMINI_API_KEY")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	resetEnv(t)
	tempDBPath(t)
	_ = os.Setenv("GEMINI_API_KEY", "test-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "qdrant_collection: archive_chunks\nsearch_limit: 25\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	_ = os.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QdrantCollection != "archive_chunks" {
		t.Errorf("QdrantCollection = %q, want archive_chunks", cfg.QdrantCollection)
	}
	if cfg.SearchLimit != 25 {
		t.Errorf("SearchLimit = %d, want 25", cfg.SearchLimit)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	resetEnv(t)
	tempDBPath(t)
	_ = os.Setenv("GEMINI_API_KEY", "test-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("qdrant_collection: from_file\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	_ = os.Setenv("CONFIG_PATH", path)
	_ = os.Setenv("QDRANT_COLLECTION", "from_env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QdrantCollection != "from_env" {
		t.Errorf("QdrantCollection = %q, want from_env", cfg.QdrantCollection)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer vector size", "QDRANT_VECTOR_SIZE", "abc"},
		{"zero vector size", "QDRANT_VECTOR_SIZE", "0"},
		{"negative search limit", "SEARCH_LIMIT", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			tempDBPath(t)
			_ = os.Setenv("GEMINI_API_KEY", "test-key")
			_ = os.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
			_ = os.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}
