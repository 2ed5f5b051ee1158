// Package llm provides the provider-agnostic LLM client: a failover chain
// over concrete providers with rate-limit backoff and context-overflow
// recovery. Responses stream as typed chunks on a channel.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Role of a conversation message.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one conversation turn.
type Message struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id,omitempty"`
	ToolName   string `json:"tool_name,omitempty"`
}

// ToolDefinition describes a tool offered to the model.
type ToolDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Parameters is a JSON Schema document.
	Parameters string `json:"parameters,omitempty"`
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Request is a provider-agnostic completion request.
type Request struct {
	Model       string
	Messages    []Message
	Tools       []ToolDefinition
	Temperature float32
	MaxTokens   int
	Stop        []string
	Metadata    map[string]string
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Completion is a finished model response.
type Completion struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Usage     Usage      `json:"usage"`
	Provider  string     `json:"provider"`
	Model     string     `json:"model"`
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a piece of the model's text response.
type TextChunk struct{ Content string }

// ToolCallChunk signals the model wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption, sent once at stream end.
type UsageChunk struct{ Usage Usage }

// ErrorChunk signals a mid-stream provider failure.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }

// ErrorKind classifies provider failures for the failover policy.
type ErrorKind string

const (
	ErrKindRateLimited     ErrorKind = "rate_limited"
	ErrKindContextOverflow ErrorKind = "context_overflow"
	ErrKindTimeout         ErrorKind = "timeout"
	ErrKindProvider        ErrorKind = "provider_error"
)

// ProviderError is a classified failure from a concrete provider.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// KindOf extracts the failure classification; unclassified errors count as
// provider errors.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrKindTimeout
	}
	return ErrKindProvider
}

// ErrChainExhausted is returned when every entry of the failover chain
// failed.
var ErrChainExhausted = errors.New("all providers in failover chain failed")

// Provider is a concrete model backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Completion, error)
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
}
