package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/halim/aigate/internal/observability"
	"github.com/halim/aigate/pkg/agent"
	"github.com/halim/aigate/pkg/aiconfig"
	"github.com/rs/zerolog"
)

// Handler processes a single invocation request end to end: resolve the AI
// config, build a fresh agent, invoke it once, report the outcome.
type Handler struct {
	resolver *aiconfig.Resolver
	provider agent.LLMProvider
	logger   zerolog.Logger
}

// HandlerConfig holds handler dependencies
type HandlerConfig struct {
	Resolver *aiconfig.Resolver
	Provider agent.LLMProvider
	Logger   zerolog.Logger
}

// NewHandler creates a new request handler
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if cfg.Provider == nil {
		return nil, fmt.Errorf("provider is required")
	}

	return &Handler{
		resolver: cfg.Resolver,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}, nil
}

// Handle runs one request. Agent failures are reported through the config
// tracker and returned both as a structured Response and as an error, so
// the transport can choose a status code. Exactly one telemetry event and
// exactly one response are produced per request.
func (h *Handler) Handle(ctx context.Context, payload Payload) (Response, error) {
	userMessage := payload.Prompt
	if userMessage == "" {
		userMessage = DefaultGreeting
	}

	resolved := h.resolver.Resolve(ctx, aiconfig.Request{
		UserID:  payload.UserID,
		Email:   payload.Email,
		Name:    payload.Name,
		Message: userMessage,
	})

	// Build agent options from the resolved config. Prompt and model are
	// only used when the config is enabled, and only when non-empty.
	opts := agent.Options{}
	if resolved.Enabled {
		if resolved.SystemPrompt != "" {
			opts.SystemPrompt = resolved.SystemPrompt
		}
		if resolved.ModelID != "" {
			opts.Model = resolved.ModelID
		}
	}

	a, err := agent.New(h.provider, opts)
	if err != nil {
		h.trackError(resolved)
		h.logger.Error().Err(err).Msg("Failed to construct agent")
		return Response{Error: err.Error()}, err
	}

	start := time.Now()
	result, err := a.Invoke(ctx, userMessage)
	observability.RecordAgentInvocation(h.provider.Provider(), time.Since(start), err == nil)

	if err != nil {
		h.trackError(resolved)
		h.logger.Error().
			Err(err).
			Str("model", opts.Model).
			Msg("Agent invocation failed")
		return Response{Error: err.Error()}, err
	}

	h.trackSuccess(resolved)

	return Response{Result: result.Message}, nil
}

func (h *Handler) trackSuccess(resolved aiconfig.ResolvedConfig) {
	if resolved.Tracker != nil && resolved.Enabled {
		resolved.Tracker.TrackSuccess()
	}
}

func (h *Handler) trackError(resolved aiconfig.ResolvedConfig) {
	if resolved.Tracker != nil && resolved.Enabled {
		resolved.Tracker.TrackError()
	}
}
