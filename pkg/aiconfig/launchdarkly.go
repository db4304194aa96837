package aiconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	ld "github.com/launchdarkly/go-server-sdk/v7"
	"github.com/rs/zerolog"
)

// Telemetry event keys accepted by the config service for AI generations.
const (
	successEventKey = "$ld:ai:generation:success"
	errorEventKey   = "$ld:ai:generation:error"
)

// LaunchDarklyClient implements Client on top of the LaunchDarkly server
// SDK. AI configs are served as JSON variations shaped like Document.
type LaunchDarklyClient struct {
	client *ld.LDClient
	logger zerolog.Logger
}

// NewLaunchDarklyClient connects to LaunchDarkly with the given server key,
// waiting up to initTimeout for the SDK to initialize. A client that timed
// out initializing is still returned; evaluations serve fallbacks until the
// SDK catches up.
func NewLaunchDarklyClient(serverKey string, initTimeout time.Duration, logger zerolog.Logger) (*LaunchDarklyClient, error) {
	if serverKey == "" {
		return nil, fmt.Errorf("server key is required")
	}

	client, err := ld.MakeClient(serverKey, initTimeout)
	if err != nil {
		if client == nil {
			return nil, fmt.Errorf("failed to create LaunchDarkly client: %w", err)
		}
		logger.Warn().Err(err).Msg("LaunchDarkly client not yet initialized, evaluations will use fallbacks")
	}

	return &LaunchDarklyClient{
		client: client,
		logger: logger,
	}, nil
}

// Evaluate fetches the AI config variation for the given context and
// interpolates the variables map into its message templates.
func (c *LaunchDarklyClient) Evaluate(_ context.Context, configID string, reqCtx RequestContext, fallback Document, variables map[string]string) (Document, Tracker, error) {
	ldCtx := buildContext(reqCtx)

	fallbackJSON, err := json.Marshal(fallback)
	if err != nil {
		return fallback, nil, fmt.Errorf("failed to marshal fallback config: %w", err)
	}

	value, err := c.client.JSONVariation(configID, ldCtx, ldvalue.Parse(fallbackJSON))
	if err != nil {
		return fallback, nil, fmt.Errorf("failed to evaluate AI config %q: %w", configID, err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(value.JSONString()), &doc); err != nil {
		return fallback, nil, fmt.Errorf("failed to parse AI config %q: %w", configID, err)
	}

	doc.Messages = InterpolateMessages(doc.Messages, variables)

	tracker := &ldTracker{
		client:   c.client,
		context:  ldCtx,
		configID: configID,
		logger:   c.logger,
	}

	return doc, tracker, nil
}

// Close shuts down the underlying SDK client.
func (c *LaunchDarklyClient) Close() error {
	return c.client.Close()
}

// buildContext converts a RequestContext into a LaunchDarkly context.
func buildContext(reqCtx RequestContext) ldcontext.Context {
	builder := ldcontext.NewBuilder(reqCtx.Key)
	if reqCtx.Email != "" {
		builder.SetString("email", reqCtx.Email)
	}
	if reqCtx.Name != "" {
		builder.Name(reqCtx.Name)
	}
	return builder.Build()
}

// ldTracker reports generation outcomes as LaunchDarkly custom events tied
// to the evaluated context.
type ldTracker struct {
	client   *ld.LDClient
	context  ldcontext.Context
	configID string
	logger   zerolog.Logger
}

func (t *ldTracker) TrackSuccess() {
	if err := t.client.TrackEvent(successEventKey, t.context); err != nil {
		t.logger.Warn().Err(err).Str("config_id", t.configID).Msg("Failed to track success event")
	}
}

func (t *ldTracker) TrackError() {
	if err := t.client.TrackEvent(errorEventKey, t.context); err != nil {
		t.logger.Warn().Err(err).Str("config_id", t.configID).Msg("Failed to track error event")
	}
}
