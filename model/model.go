// Package model defines the text-generation interface used by LLM-backed
// participants, plus a deterministic mock for tests and examples. Provider
// adapters live in the subpackages anthropic and openai.
package model

import (
	"context"
	"fmt"
)

// Request captures one normalized completion request. System carries the
// persona instructions, Prompt the request or collaboration context.
type Request struct {
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature,omitempty"`
}

// Info contains metadata about a completer implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "anthropic", "openai", "mock", ...
}

// Completer is the minimal interface LLM-backed participants need to drive
// text generation. Implementations must respect context cancellation.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the completer implementation.
	Info() Info
}

// MockCompleter is a lightweight in-memory Completer useful for tests and
// examples. Prompts without a registered response get a deterministic echo.
type MockCompleter struct {
	info      Info
	responses map[string]string
}

// NewMockCompleter constructs a MockCompleter.
func NewMockCompleter(name string) *MockCompleter {
	return &MockCompleter{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *MockCompleter) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Complete implements Completer.
func (m *MockCompleter) Complete(ctx context.Context, req Request) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if resp, ok := m.responses[req.Prompt]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", req.Prompt), nil
}

// Info implements Completer.
func (m *MockCompleter) Info() Info { return m.info }
