package llm

import (
	"context"
	"errors"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider serves the OpenAI Chat Completions API and any
// OpenAI-compatible endpoint via a base URL override.
type OpenAIProvider struct {
	name   string
	client *openai.Client
}

// NewOpenAIProvider creates an OpenAI-backed provider. baseURL may be empty
// for the public API.
func NewOpenAIProvider(name, apiKey, baseURL string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{name: name, client: openai.NewClientWithConfig(cfg)}, nil
}

func (p *OpenAIProvider) Name() string { return p.name }

func (p *OpenAIProvider) buildRequest(req Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msg := openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
		if m.Role == RoleTool {
			msg.ToolCallID = m.ToolCallID
			msg.Name = m.ToolName
		}
		messages = append(messages, msg)
	}

	var tools []openai.Tool
	for _, t := range req.Tools {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  jsonSchema(t.Parameters),
			},
		})
	}

	return openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stop:        req.Stop,
		Tools:       tools,
	}
}

// Complete performs a non-streaming chat completion.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Completion, error) {
	resp, err := p.client.CreateChatCompletion(ctx, p.buildRequest(req))
	if err != nil {
		return nil, p.classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: p.name, Kind: ErrKindProvider,
			Err: errors.New("no choices in response")}
	}

	choice := resp.Choices[0]
	out := &Completion{
		Content:  choice.Message.Content,
		Provider: p.name,
		Model:    resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	for _, tc := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out, nil
}

// Stream performs a streaming chat completion. The channel closes when the
// stream ends; mid-stream failures arrive as an ErrorChunk.
func (p *OpenAIProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	oreq := p.buildRequest(req)
	oreq.Stream = true
	oreq.StreamOptions = &openai.StreamOptions{IncludeUsage: true}

	stream, err := p.client.CreateChatCompletionStream(ctx, oreq)
	if err != nil {
		return nil, p.classify(err)
	}

	out := make(chan Chunk, 64)
	go func() {
		defer close(out)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				out <- &ErrorChunk{Message: err.Error(), Retryable: KindOf(p.classify(err)) != ErrKindProvider}
				return
			}

			if resp.Usage != nil {
				out <- &UsageChunk{Usage: Usage{
					InputTokens:  resp.Usage.PromptTokens,
					OutputTokens: resp.Usage.CompletionTokens,
					TotalTokens:  resp.Usage.TotalTokens,
				}}
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta
			if delta.Content != "" {
				out <- &TextChunk{Content: delta.Content}
			}
			for _, tc := range delta.ToolCalls {
				out <- &ToolCallChunk{
					CallID:    tc.ID,
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				}
			}
		}
	}()
	return out, nil
}

// classify maps go-openai errors onto the failover taxonomy.
func (p *OpenAIProvider) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return &ProviderError{Provider: p.name, Kind: ErrKindRateLimited, Err: err}
		case isOverflowCode(apiErr.Code) || strings.Contains(apiErr.Message, "maximum context length"):
			return &ProviderError{Provider: p.name, Kind: ErrKindContextOverflow, Err: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Provider: p.name, Kind: ErrKindTimeout, Err: err}
	}
	return &ProviderError{Provider: p.name, Kind: ErrKindProvider, Err: err}
}

func isOverflowCode(code any) bool {
	s, ok := code.(string)
	return ok && s == "context_length_exceeded"
}

// jsonSchema passes a raw JSON Schema string through to the API.
type jsonSchema string

// MarshalJSON emits the schema verbatim, or an empty object when unset.
func (s jsonSchema) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("{}"), nil
	}
	return []byte(s), nil
}
