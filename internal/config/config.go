package config

// Config represents the main aigate configuration
type Config struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// LaunchDarkly AI config service
	LaunchDarkly LaunchDarklyConfig `json:"launchdarkly" mapstructure:"launchdarkly"`

	// Agent provider configuration
	Agent AgentConfig `json:"agent" mapstructure:"agent"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host               string `json:"host" mapstructure:"host"`
	Port               int    `json:"port" mapstructure:"port"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute" mapstructure:"rate_limit_per_minute"`
}

// LaunchDarklyConfig holds the AI config service credentials and identifiers.
// ServerKey empty means the service runs without remote configuration for
// its whole lifetime.
type LaunchDarklyConfig struct {
	ServerKey      string `json:"server_key" mapstructure:"server_key"`
	AIConfigID     string `json:"ai_config_id" mapstructure:"ai_config_id"`
	ProjectKey     string `json:"project_key" mapstructure:"project_key"`
	InitTimeoutSec int    `json:"init_timeout_sec" mapstructure:"init_timeout_sec"`
}

// AgentConfig holds downstream agent provider configuration
type AgentConfig struct {
	Provider        string `json:"provider" mapstructure:"provider"` // anthropic, openai
	AnthropicAPIKey string `json:"anthropic_api_key" mapstructure:"anthropic_api_key"`
	OpenAIAPIKey    string `json:"openai_api_key" mapstructure:"openai_api_key"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string `json:"level" mapstructure:"level"`
	File      string `json:"file" mapstructure:"file"`
	Redaction bool   `json:"redaction" mapstructure:"redaction"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			RateLimitPerMinute: 100,
		},
		LaunchDarkly: LaunchDarklyConfig{
			AIConfigID:     "multi-agent-strands",
			InitTimeoutSec: 5,
		},
		Agent: AgentConfig{
			Provider: "anthropic",
		},
		Logging: LoggingConfig{
			Level:     "info",
			Redaction: true,
		},
	}
}
