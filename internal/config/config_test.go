package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Run("should have sensible defaults", func(t *testing.T) {
		cfg := DefaultConfig()

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
		assert.Equal(t, "multi-agent-strands", cfg.LaunchDarkly.AIConfigID)
		assert.Equal(t, 5, cfg.LaunchDarkly.InitTimeoutSec)
		assert.Equal(t, "anthropic", cfg.Agent.Provider)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Redaction)
	})

	t.Run("should validate cleanly", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("should return defaults when no file exists", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "multi-agent-strands", cfg.LaunchDarkly.AIConfigID)
	})

	t.Run("should merge file values over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aigate.json")
		content := `{
			"server": {"port": 9090},
			"agent": {"provider": "openai"}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "openai", cfg.Agent.Provider)
		// Untouched sections keep defaults
		assert.Equal(t, "multi-agent-strands", cfg.LaunchDarkly.AIConfigID)
	})

	t.Run("should overlay well-known environment variables", func(t *testing.T) {
		t.Setenv("LD_SERVER_KEY", "sdk-test-key")
		t.Setenv("LD_AI_CONFIG_ID", "custom-config")
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)

		assert.Equal(t, "sdk-test-key", cfg.LaunchDarkly.ServerKey)
		assert.Equal(t, "custom-config", cfg.LaunchDarkly.AIConfigID)
		assert.Equal(t, "sk-ant-test", cfg.Agent.AnthropicAPIKey)
	})

	t.Run("should let environment win over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aigate.json")
		content := `{"launchdarkly": {"ai_config_id": "from-file"}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		t.Setenv("LD_AI_CONFIG_ID", "from-env")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.LaunchDarkly.AIConfigID)
	})

	t.Run("should fail on malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aigate.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("should reject invalid port", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())

		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject negative rate limit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Server.RateLimitPerMinute = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject unsupported provider", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Agent.Provider = "gemini"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported agent provider")
	})

	t.Run("should reject empty AI config ID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LaunchDarkly.AIConfigID = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject non-positive init timeout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LaunchDarkly.InitTimeoutSec = 0
		assert.Error(t, cfg.Validate())
	})
}
