package aiconfig

// AnonymousKey is the targeting key used when the payload carries no user_id.
const AnonymousKey = "anonymous-user"

// Request carries the payload fields used for config targeting and
// template interpolation. Built fresh per request, never persisted.
type Request struct {
	UserID  string
	Email   string
	Name    string
	Message string
}

// RequestContext is the targeting context sent to the config service.
type RequestContext struct {
	Key   string
	Email string
	Name  string
}

// BuildRequestContext builds a targeting context from the request payload,
// defaulting to the anonymous key when no user ID is present.
func BuildRequestContext(req Request) RequestContext {
	key := req.UserID
	if key == "" {
		key = AnonymousKey
	}
	return RequestContext{
		Key:   key,
		Email: req.Email,
		Name:  req.Name,
	}
}

// Message is a single prompt message inside an AI config variation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelConfig identifies the model an AI config selects.
type ModelConfig struct {
	Name string `json:"name"`
}

// Document is the raw AI config variation served by the config service.
type Document struct {
	Enabled  bool        `json:"enabled"`
	Model    ModelConfig `json:"model"`
	Messages []Message   `json:"messages"`
}

// FallbackDocument returns the safe default used whenever the config
// service is absent or erroring. It never carries a system prompt or a
// model override, so degraded behavior is deterministic.
func FallbackDocument() Document {
	return Document{Enabled: false}
}

// ResolvedConfig is the effective configuration for one request. Immutable
// once resolved; callers must check Enabled before using the prompt or
// model fields.
type ResolvedConfig struct {
	Enabled      bool
	SystemPrompt string
	ModelID      string
	Tracker      Tracker
}
