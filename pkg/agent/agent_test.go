package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider records the last request and returns a canned response.
type stubProvider struct {
	response    *LLMResponse
	err         error
	lastRequest LLMRequest
	callCount   int
}

func (p *stubProvider) Call(_ context.Context, request LLMRequest) (*LLMResponse, error) {
	p.callCount++
	p.lastRequest = request
	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func (p *stubProvider) Provider() string     { return "stub" }
func (p *stubProvider) DefaultModel() string { return "stub-default-model" }

func TestNew(t *testing.T) {
	t.Run("should require a provider", func(t *testing.T) {
		_, err := New(nil, Options{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "provider")
	})

	t.Run("should keep the options it was built with", func(t *testing.T) {
		opts := Options{SystemPrompt: "Be terse.", Model: "model-a"}
		a, err := New(&stubProvider{}, opts)
		require.NoError(t, err)
		assert.Equal(t, opts, a.Options())
	})
}

func TestInvoke(t *testing.T) {
	t.Run("should use provider default model when no override is set", func(t *testing.T) {
		provider := &stubProvider{response: &LLMResponse{Content: "reply"}}
		a, err := New(provider, Options{})
		require.NoError(t, err)

		result, err := a.Invoke(context.Background(), "Hi")
		require.NoError(t, err)

		assert.Equal(t, "reply", result.Message)
		assert.Equal(t, "stub-default-model", provider.lastRequest.Model)
		assert.Empty(t, provider.lastRequest.SystemPrompt)
	})

	t.Run("should pass model and system prompt overrides", func(t *testing.T) {
		provider := &stubProvider{response: &LLMResponse{Content: "reply"}}
		a, err := New(provider, Options{
			SystemPrompt: "Be terse.",
			Model:        "claude-x",
		})
		require.NoError(t, err)

		_, err = a.Invoke(context.Background(), "Hi")
		require.NoError(t, err)

		assert.Equal(t, "claude-x", provider.lastRequest.Model)
		assert.Equal(t, "Be terse.", provider.lastRequest.SystemPrompt)
		assert.Equal(t, "Hi", provider.lastRequest.UserMessage)
	})

	t.Run("should default max tokens when unset", func(t *testing.T) {
		provider := &stubProvider{response: &LLMResponse{Content: "reply"}}
		a, err := New(provider, Options{})
		require.NoError(t, err)

		_, err = a.Invoke(context.Background(), "Hi")
		require.NoError(t, err)

		assert.Equal(t, defaultMaxTokens, provider.lastRequest.MaxTokens)
	})

	t.Run("should call the provider exactly once", func(t *testing.T) {
		provider := &stubProvider{response: &LLMResponse{Content: "reply"}}
		a, err := New(provider, Options{})
		require.NoError(t, err)

		_, err = a.Invoke(context.Background(), "Hi")
		require.NoError(t, err)

		assert.Equal(t, 1, provider.callCount)
	})

	t.Run("should wrap provider errors", func(t *testing.T) {
		provider := &stubProvider{err: fmt.Errorf("upstream exploded")}
		a, err := New(provider, Options{})
		require.NoError(t, err)

		_, err = a.Invoke(context.Background(), "Hi")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "agent invocation failed")
		assert.Contains(t, err.Error(), "upstream exploded")
	})
}

func TestProviderFactory(t *testing.T) {
	factory := &ProviderFactory{}

	t.Run("should create anthropic provider", func(t *testing.T) {
		provider, err := factory.NewProvider("anthropic", "test-key")
		require.NoError(t, err)
		assert.Equal(t, "anthropic", provider.Provider())
		assert.NotEmpty(t, provider.DefaultModel())
	})

	t.Run("should create openai provider", func(t *testing.T) {
		provider, err := factory.NewProvider("openai", "test-key")
		require.NoError(t, err)
		assert.Equal(t, "openai", provider.Provider())
		assert.NotEmpty(t, provider.DefaultModel())
	})

	t.Run("should reject unsupported provider", func(t *testing.T) {
		_, err := factory.NewProvider("gemini", "test-key")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider")
	})

	t.Run("should reject empty API key", func(t *testing.T) {
		_, err := factory.NewProvider("anthropic", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})
}
