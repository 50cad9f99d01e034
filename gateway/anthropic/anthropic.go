// Package anthropic provides a gateway.Gateway implementation backed by the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/autopilot-ai/autopilot/gateway"
)

// Options configure the Anthropic gateway adapter (model id, temperature,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Gateway wraps the Anthropic Messages API behind gateway.Gateway. Anthropic
// has no provider-side search; Search returns gateway.ErrSearchUnsupported.
type Gateway struct {
	client *anthropic.Client
	opts   Options
}

// New creates an Anthropic gateway using the official client.
func New(optFns ...func(o *Options)) *Gateway {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Gateway{client: &client, opts: opts}
}

// NewFromClient creates an Anthropic gateway from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Gateway {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Gateway{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0,
		MaxTokens:   4096,
	}
}

// Complete implements gateway.Gateway.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userMessage string) (*gateway.Completion, error) {
	params := anthropic.MessageNewParams{
		Model:       g.opts.Model,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: anthropic.Float(g.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	finishReason := "stop"
	if resp.StopReason != "" {
		finishReason = string(resp.StopReason)
	}

	return &gateway.Completion{
		ID:    resp.ID,
		Model: string(resp.Model),
		Choices: []gateway.Choice{{
			Message:      gateway.Message{Role: "assistant", Content: text.String()},
			FinishReason: finishReason,
		}},
	}, nil
}

// Search implements gateway.SearchGateway for interface parity. Anthropic has
// no server-side search, so the caller must route search-dependent actions to
// a provider that supports it.
func (g *Gateway) Search(context.Context, string) (*gateway.Completion, error) {
	return nil, gateway.ErrSearchUnsupported
}
