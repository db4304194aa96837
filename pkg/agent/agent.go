package agent

import (
	"context"
	"fmt"
)

// Agent is a single-use conversational agent bound to one configuration.
// A fresh agent is constructed for each request so configuration changes
// take effect on the next request without a restart.
type Agent struct {
	provider LLMProvider
	opts     Options
}

// New creates a new agent with the given provider and options
func New(provider LLMProvider, opts Options) (*Agent, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}

	return &Agent{
		provider: provider,
		opts:     opts,
	}, nil
}

// Invoke sends the user message to the provider and returns the reply.
// This is a single blocking call; no retries are performed.
func (a *Agent) Invoke(ctx context.Context, userMessage string) (Result, error) {
	model := a.opts.Model
	if model == "" {
		model = a.provider.DefaultModel()
	}

	maxTokens := a.opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	response, err := a.provider.Call(ctx, LLMRequest{
		Model:        model,
		SystemPrompt: a.opts.SystemPrompt,
		UserMessage:  userMessage,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("agent invocation failed: %w", err)
	}

	return Result{
		Message: response.Content,
		Usage:   response.Usage,
	}, nil
}

// Options returns the options this agent was constructed with
func (a *Agent) Options() Options {
	return a.opts
}
