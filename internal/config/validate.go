package config

import "fmt"

var validProviders = map[string]bool{
	"anthropic": true,
	"openai":    true,
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate limit cannot be negative")
	}
	if !validProviders[c.Agent.Provider] {
		return fmt.Errorf("unsupported agent provider: %s", c.Agent.Provider)
	}
	if c.LaunchDarkly.AIConfigID == "" {
		return fmt.Errorf("AI config ID cannot be empty")
	}
	if c.LaunchDarkly.InitTimeoutSec <= 0 {
		return fmt.Errorf("LaunchDarkly init timeout must be positive")
	}
	return nil
}
