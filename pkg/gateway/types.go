package gateway

// DefaultGreeting is the user message used when the payload carries no prompt.
const DefaultGreeting = "Hello! How can I help you today?"

// Payload is the inbound request body for /invoke
type Payload struct {
	Prompt string `json:"prompt,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Response is the outbound body. Exactly one of Result or Error is set.
type Response struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ServerOptions configures the gateway server
type ServerOptions struct {
	Host               string // Server host (default: "0.0.0.0")
	Port               int    // Server port (default: 8080)
	RateLimitPerMinute int    // Requests per minute per IP (default: 100)
}
