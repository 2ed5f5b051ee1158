package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider serves the Anthropic Claude Messages API.
type AnthropicProvider struct {
	name   string
	client sdk.Client
}

// NewAnthropicProvider creates an Anthropic-backed provider.
func NewAnthropicProvider(name, apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}
	return &AnthropicProvider{
		name:   name,
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

func (p *AnthropicProvider) Name() string { return p.name }

func (p *AnthropicProvider) buildParams(req Request) sdk.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	var system []sdk.TextBlockParam
	var conversation []sdk.MessageParam
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, sdk.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			conversation = append(conversation, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		case RoleTool:
			conversation = append(conversation, sdk.NewUserMessage(
				sdk.NewToolResultBlock(m.ToolCallID, m.Content, false)))
		default:
			conversation = append(conversation, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(maxTokens),
		Messages:  conversation,
	}
	if len(system) > 0 {
		params.System = system
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(float64(req.Temperature))
	}
	if len(req.Stop) > 0 {
		params.StopSequences = req.Stop
	}
	for _, t := range req.Tools {
		var schema sdk.ToolInputSchemaParam
		if t.Parameters != "" {
			var doc map[string]any
			if err := json.Unmarshal([]byte(t.Parameters), &doc); err == nil {
				schema.Properties = doc["properties"]
			}
		}
		params.Tools = append(params.Tools, sdk.ToolUnionParam{
			OfTool: &sdk.ToolParam{
				Name:        t.Name,
				Description: sdk.String(t.Description),
				InputSchema: schema,
			},
		})
	}
	return params
}

// Complete issues a non-streaming Messages call.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Completion, error) {
	msg, err := p.client.Messages.New(ctx, p.buildParams(req))
	if err != nil {
		return nil, p.classify(err)
	}

	out := &Completion{
		Provider: p.name,
		Model:    string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			out.Content += block.Text
		case "tool_use":
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	return out, nil
}

// Stream issues a streaming Messages call and adapts SSE events to chunks.
func (p *AnthropicProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	stream := p.client.Messages.NewStreaming(ctx, p.buildParams(req))
	if err := stream.Err(); err != nil {
		return nil, p.classify(err)
	}

	out := make(chan Chunk, 64)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		// Tool-use block state: the id and name arrive on block start,
		// the arguments accumulate across input_json deltas.
		var toolID, toolName, toolArgs string
		var usage Usage

		flushTool := func() {
			if toolID == "" {
				return
			}
			out <- &ToolCallChunk{CallID: toolID, Name: toolName, Arguments: toolArgs}
			toolID, toolName, toolArgs = "", "", ""
		}

		for stream.Next() {
			event := stream.Current()
			switch event.Type {
			case "content_block_start":
				if event.ContentBlock.Type == "tool_use" {
					flushTool()
					toolID = event.ContentBlock.ID
					toolName = event.ContentBlock.Name
				}
			case "content_block_delta":
				switch event.Delta.Type {
				case "text_delta":
					out <- &TextChunk{Content: event.Delta.Text}
				case "input_json_delta":
					toolArgs += event.Delta.PartialJSON
				}
			case "content_block_stop":
				flushTool()
			case "message_start":
				usage.InputTokens = int(event.Message.Usage.InputTokens)
			case "message_delta":
				usage.OutputTokens = int(event.Usage.OutputTokens)
			}
		}
		flushTool()

		if err := stream.Err(); err != nil {
			kind := KindOf(p.classify(err))
			out <- &ErrorChunk{Message: err.Error(), Retryable: kind == ErrKindRateLimited || kind == ErrKindTimeout}
			return
		}
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
		out <- &UsageChunk{Usage: usage}
	}()
	return out, nil
}

// classify maps SDK errors onto the failover taxonomy.
func (p *AnthropicProvider) classify(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return &ProviderError{Provider: p.name, Kind: ErrKindRateLimited, Err: err}
		case apiErr.StatusCode == 400 && strings.Contains(err.Error(), "prompt is too long"):
			return &ProviderError{Provider: p.name, Kind: ErrKindContextOverflow, Err: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Provider: p.name, Kind: ErrKindTimeout, Err: err}
	}
	return &ProviderError{Provider: p.name, Kind: ErrKindProvider, Err: err}
}
