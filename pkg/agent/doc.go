// Package agent wraps single-shot LLM invocations behind per-request agent
// instances.
//
// Invariants:
// - An Agent is built fresh for each request and invoked exactly once.
// - Empty option fields mean "use the provider's built-in default".
// - Providers are shared across requests and safe for concurrent use.
//
// Usage:
//
//	a, _ := agent.New(provider, agent.Options{SystemPrompt: "Be terse."})
//	result, _ := a.Invoke(ctx, "hello")
//	_ = result.Message
package agent
