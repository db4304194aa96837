package agent

// Options configures a single agent instance. Fields left empty are
// omitted from the downstream request so the provider's built-in defaults
// apply.
type Options struct {
	SystemPrompt string `json:"system_prompt,omitempty"`
	Model        string `json:"model,omitempty"`
	MaxTokens    int    `json:"max_tokens,omitempty"`
}

// Result contains the agent's reply
type Result struct {
	Message string      `json:"message"`
	Usage   *TokenUsage `json:"usage,omitempty"`
}

// TokenUsage tracks token consumption
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// LLMRequest contains the request parameters for a single LLM call
type LLMRequest struct {
	Model        string
	SystemPrompt string
	UserMessage  string
	MaxTokens    int
}

// LLMResponse contains the response from the LLM
type LLMResponse struct {
	Content string
	Usage   *TokenUsage
}

const defaultMaxTokens = 4096
