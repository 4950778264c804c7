package config

import (
	"errors"
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestRequireEnv_MissingCredential(t *testing.T) {
	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")

	_, err := requireEnv("NONEXISTENT_REQUIRED_VAR")
	if err == nil {
		t.Fatal("Expected error for missing required env var")
	}

	var missing *MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingCredentialError, got %T", err)
	}
	if missing.Name != "NONEXISTENT_REQUIRED_VAR" {
		t.Errorf("Expected variable name in error, got %q", missing.Name)
	}
}

func TestRequireEnv_ReturnsValue(t *testing.T) {
	os.Setenv("TEST_REQUIRED", "value123")
	defer os.Unsetenv("TEST_REQUIRED")

	result, err := requireEnv("TEST_REQUIRED")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestLoad_FailsFastWithoutAPIKey(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")
	os.Setenv("DATABASE_URL", "postgres://localhost/mandi")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	defer os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("REDIS_URL")

	_, err := Load()

	var missing *MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingCredentialError, got %v", err)
	}
	if missing.Name != "GEMINI_API_KEY" {
		t.Errorf("Expected GEMINI_API_KEY to be reported, got %q", missing.Name)
	}
}
