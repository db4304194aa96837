package aiconfig

import "context"

// Client evaluates a named AI configuration against a request context.
// Implementations must be safe for concurrent use; one client is shared by
// all requests for the process lifetime.
type Client interface {
	// Evaluate returns the config variation for the given context, the
	// fallback document when the service cannot serve one, and a tracker
	// tied to this evaluation.
	Evaluate(ctx context.Context, configID string, reqCtx RequestContext, fallback Document, variables map[string]string) (Document, Tracker, error)

	// Close releases the client's resources.
	Close() error
}

// Tracker reports the outcome of the agent call tied to one config
// evaluation back to the config service.
type Tracker interface {
	TrackSuccess()
	TrackError()
}
