package aiconfig

import (
	"context"
	"fmt"

	"github.com/halim/aigate/internal/observability"
	"github.com/rs/zerolog"
)

// Resolver resolves the effective AI configuration for each request,
// substituting the fallback whenever the config service is absent,
// disabled, or erroring. A request must never fail solely because the
// config service is unreachable.
type Resolver struct {
	client   Client // nil when no credentials were available at startup
	configID string
	logger   zerolog.Logger
}

// ResolverConfig holds resolver dependencies. Client may be nil; resolution
// then short-circuits to the fallback without any remote call.
type ResolverConfig struct {
	Client   Client
	ConfigID string
	Logger   zerolog.Logger
}

// NewResolver creates a new resolver
func NewResolver(cfg ResolverConfig) (*Resolver, error) {
	observability.EnsureRegistered()

	if cfg.ConfigID == "" {
		return nil, fmt.Errorf("config ID is required")
	}

	return &Resolver{
		client:   cfg.Client,
		configID: cfg.ConfigID,
		logger:   cfg.Logger,
	}, nil
}

// Resolve returns the effective configuration for one request. The result
// is scoped to this request and discarded afterwards.
func (r *Resolver) Resolve(ctx context.Context, req Request) ResolvedConfig {
	if r.client == nil {
		r.logger.Debug().
			Str("config_id", r.configID).
			Msg("Config client not initialized, using fallback")
		observability.RecordConfigFallback("no_client")
		return ResolvedConfig{}
	}

	reqCtx := BuildRequestContext(req)
	variables := map[string]string{
		"user_message": req.Message,
	}

	doc, tracker, err := r.client.Evaluate(ctx, r.configID, reqCtx, FallbackDocument(), variables)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("config_id", r.configID).
			Str("context_key", reqCtx.Key).
			Msg("AI config evaluation failed, using fallback")
		observability.RecordConfigFallback("eval_error")
		return ResolvedConfig{}
	}

	resolved := ResolvedConfig{
		Enabled: doc.Enabled,
		Tracker: tracker,
	}

	if !doc.Enabled {
		r.logger.Info().
			Str("config_id", r.configID).
			Str("context_key", reqCtx.Key).
			Msg("AI config is disabled for this context")
		observability.RecordConfigResolution("disabled")
		return resolved
	}

	if prompt, ok := ExtractSystemPrompt(doc.Messages); ok {
		resolved.SystemPrompt = prompt
		r.logger.Debug().
			Str("config_id", r.configID).
			Msg("System prompt resolved from AI config")
	}

	if doc.Model.Name != "" {
		resolved.ModelID = doc.Model.Name
	}

	r.logger.Info().
		Str("config_id", r.configID).
		Str("model", resolved.ModelID).
		Bool("has_system_prompt", resolved.SystemPrompt != "").
		Msg("Using AI config")
	observability.RecordConfigResolution("remote")

	return resolved
}

// ConfigID returns the configuration identifier this resolver evaluates.
func (r *Resolver) ConfigID() string {
	return r.configID
}
