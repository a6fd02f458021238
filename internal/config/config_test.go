package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:   "gemini",
			Model:      "gemini-2.0-flash",
			Timeout:    8 * time.Second,
			MaxRetries: 2,
		},
		Screening: ScreeningConfig{
			SkillsWeight:         0.4,
			ExperienceWeight:     0.6,
			MaxPromptResumeChars: 4000,
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
			MaxFileSize:      1024 * 1024,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.AI.Timeout = 0 },
			wantErr: "timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.AI.MaxRetries = -1 },
			wantErr: "maxRetries",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Screening.SkillsWeight = -0.4 },
			wantErr: "negative",
		},
		{
			name: "weights do not sum to one",
			mutate: func(c *Config) {
				c.Screening.SkillsWeight = 0.5
				c.Screening.ExperienceWeight = 0.6
			},
			wantErr: "sum to 1.0",
		},
		{
			name:    "zero prompt budget",
			mutate:  func(c *Config) { c.Screening.MaxPromptResumeChars = 0 },
			wantErr: "maxPromptResumeChars",
		},
		{
			name:    "default format not supported",
			mutate:  func(c *Config) { c.App.DefaultFormat = "yaml" },
			wantErr: "invalid default format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateAllowsEmptyAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.AI.APIKey = ""

	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.AIAvailable())
}

func TestAIAvailable(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.AIAvailable())

	cfg.AI.APIKey = "test-key"
	assert.True(t, cfg.AIAvailable())
}

func TestApplyFallbacksGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "legacy-key")

	cfg := validConfig()
	cfg.applyFallbacks()

	assert.Equal(t, "legacy-key", cfg.AI.APIKey)
}

func TestApplyFallbacksKeepsExplicitKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "legacy-key")

	cfg := validConfig()
	cfg.AI.APIKey = "explicit-key"
	cfg.applyFallbacks()

	assert.Equal(t, "explicit-key", cfg.AI.APIKey)
}

func TestApplyFallbacksServiceInstance(t *testing.T) {
	cfg := validConfig()
	cfg.Observability.ServiceName = "talentsift"
	cfg.applyFallbacks()

	assert.NotEmpty(t, cfg.Observability.ServiceInstance)
	assert.Contains(t, cfg.Observability.ServiceInstance, "talentsift-")
}

func TestApplyFallbacksDebugConsoleOutput(t *testing.T) {
	cfg := validConfig()
	cfg.App.LogLevel = "debug"
	cfg.applyFallbacks()

	assert.True(t, cfg.Observability.ConsoleOutput)
}

func TestLoadConfigDefaults(t *testing.T) {
	// Run from a temp dir so a developer's config.yaml cannot leak in.
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 8*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 0.4, cfg.Screening.SkillsWeight)
	assert.Equal(t, 0.6, cfg.Screening.ExperienceWeight)
	assert.Equal(t, 4000, cfg.Screening.MaxPromptResumeChars)
	assert.Equal(t, "json", cfg.App.DefaultFormat)
	assert.True(t, cfg.AI.CircuitBreaker.Enabled)
	assert.False(t, cfg.Vault.Enabled)
}
