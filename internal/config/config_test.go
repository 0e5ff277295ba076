package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBaseConfig() Config {
	return Config{
		AI: AIConfig{
			Mode:    "heuristic",
			Timeout: 60 * time.Second,
		},
		Server: ServerConfig{
			Port: "8080",
			TLS: TLSConfig{
				Mode: "disabled",
			},
		},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
		},
	}
}

func TestValidateAIMode(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		apiKey      string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "heuristic mode without key",
			mode:        "heuristic",
			expectError: false,
		},
		{
			name:        "heuristic mode with key",
			mode:        "heuristic",
			apiKey:      "some-key",
			expectError: false,
		},
		{
			name:        "gemini mode with key",
			mode:        "gemini",
			apiKey:      "some-key",
			expectError: false,
		},
		{
			name:        "gemini mode without key",
			mode:        "gemini",
			expectError: true,
			errorMsg:    "AI API key is required in gemini mode",
		},
		{
			name:        "invalid mode",
			mode:        "openai",
			expectError: true,
			errorMsg:    "invalid AI mode: openai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validBaseConfig()
			config.AI.Mode = tt.mode
			config.AI.APIKey = tt.apiKey

			err := config.Validate()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:     "non-positive timeout",
			mutate:   func(c *Config) { c.AI.Timeout = 0 },
			errorMsg: "AI timeout must be positive",
		},
		{
			name:     "missing server port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "server port is required",
		},
		{
			name:     "default format not in supported formats",
			mutate:   func(c *Config) { c.App.DefaultFormat = "yaml" },
			errorMsg: "invalid default format: yaml",
		},
		{
			name:     "invalid TLS mode",
			mutate:   func(c *Config) { c.Server.TLS.Mode = "bogus" },
			errorMsg: "TLS configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validBaseConfig()
			tt.mutate(&config)

			err := config.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestApplyFallbacks(t *testing.T) {
	t.Run("mutual TLS defaults client auth policy", func(t *testing.T) {
		config := validBaseConfig()
		config.Server.TLS.Mode = "mutual"

		config.applyFallbacks()

		assert.Equal(t, "require", config.Server.TLS.ClientAuthPolicy)
		assert.Equal(t, "1.2", config.Server.TLS.MinVersion)
	})

	t.Run("disabled TLS leaves min version empty", func(t *testing.T) {
		config := validBaseConfig()

		config.applyFallbacks()

		assert.Empty(t, config.Server.TLS.MinVersion)
	})

	t.Run("debug log level enables console output", func(t *testing.T) {
		config := validBaseConfig()
		config.App.LogLevel = "debug"

		config.applyFallbacks()

		assert.True(t, config.Observability.ConsoleOutput)
	})

	t.Run("service instance is derived from service name", func(t *testing.T) {
		config := validBaseConfig()
		config.Observability.ServiceName = "resumelens"

		config.applyFallbacks()

		assert.NotEmpty(t, config.Observability.ServiceInstance)
		assert.Contains(t, config.Observability.ServiceInstance, "resumelens")
	})
}

func TestGetAnalyzeConfig(t *testing.T) {
	timeout := 75 * time.Second
	retries := 2

	config := validBaseConfig()
	config.AI.Model = "gemini-2.0-flash"
	config.AI.APIKey = "global-key"
	config.AI.MaxRetries = 3
	config.AI.Temperature = 0.7
	config.AI.UseSystemPrompts = true
	config.AI.Analyze = OperationAIConfig{
		Model:      "gemini-2.5-pro",
		Timeout:    &timeout,
		MaxRetries: &retries,
	}

	analyzeCfg := config.GetAnalyzeConfig()

	// Operation overrides win
	assert.Equal(t, "gemini-2.5-pro", analyzeCfg.Model)
	assert.Equal(t, timeout, *analyzeCfg.Timeout)
	assert.Equal(t, retries, *analyzeCfg.MaxRetries)

	// Unset fields fall back to globals
	assert.Equal(t, "global-key", analyzeCfg.APIKey)
	assert.InDelta(t, 0.7, *analyzeCfg.Temperature, 0.0001)
	assert.True(t, *analyzeCfg.UseSystemPrompts)
}
