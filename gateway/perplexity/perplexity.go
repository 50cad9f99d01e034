// Package perplexity provides a gateway.Gateway implementation backed by the
// Perplexity chat completions API. Perplexity exposes an OpenAI-compatible
// endpoint, so the adapter is built on the official OpenAI client pointed at
// the Perplexity base URL. The Search variant enables provider-side web
// search and surfaces the returned search_results alongside the free text.
package perplexity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/autopilot-ai/autopilot/gateway"
)

// DefaultBaseURL is the Perplexity OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.perplexity.ai"

// Options configure the Perplexity gateway adapter.
// Fields mirror a subset of chat completion parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	BaseURL     string
	APIKey      string
}

// Gateway wraps the Perplexity chat completions API behind gateway.Gateway
// and gateway.SearchGateway.
type Gateway struct {
	client *openai.Client
	opts   Options
}

// New creates a Perplexity gateway using a fresh OpenAI client.
func New(optFns ...func(o *Options)) *Gateway {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	clientOpts := []option.RequestOption{option.WithBaseURL(opts.BaseURL)}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := openai.NewClient(clientOpts...)

	return &Gateway{client: &client, opts: opts}
}

// NewFromClient creates a Perplexity gateway from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Gateway {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Gateway{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       "sonar-pro",
		Temperature: 0,
		MaxTokens:   4096,
		BaseURL:     DefaultBaseURL,
	}
}

// Complete implements gateway.Gateway. Provider-side search is disabled so
// classification prompts are answered from the model alone.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userMessage string) (*gateway.Completion, error) {
	return g.call(ctx, systemPrompt, userMessage, false)
}

// Search implements gateway.SearchGateway. The prompt is sent as the user
// message with provider-side search enabled; structured results are parsed
// from the raw response body.
func (g *Gateway) Search(ctx context.Context, prompt string) (*gateway.Completion, error) {
	return g.call(ctx, "", prompt, true)
}

func (g *Gateway) call(ctx context.Context, systemPrompt, userMessage string, search bool) (*gateway.Completion, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userMessage))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               g.opts.Model,
		Temperature:         openai.Float(g.opts.Temperature),
		MaxCompletionTokens: openai.Int(g.opts.MaxTokens),
	}

	// "search" is a Perplexity extension not present in the OpenAI schema.
	resp, err := g.client.Chat.Completions.New(ctx, params, option.WithJSONSet("search", search))
	if err != nil {
		return nil, fmt.Errorf("perplexity api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, gateway.ErrEmptyCompletion
	}

	completion := &gateway.Completion{
		ID:      resp.ID,
		Model:   resp.Model,
		Choices: make([]gateway.Choice, 0, len(resp.Choices)),
	}
	for _, ch := range resp.Choices {
		completion.Choices = append(completion.Choices, gateway.Choice{
			Message: gateway.Message{
				Role:    string(ch.Message.Role),
				Content: ch.Message.Content,
			},
			FinishReason: ch.FinishReason,
		})
	}

	if search {
		completion.SearchResults = parseSearchResults(resp.RawJSON())
	}

	return completion, nil
}

// parseSearchResults pulls the Perplexity search_results extension out of the
// raw response body. Absence or malformed entries degrade to no results.
func parseSearchResults(raw string) []gateway.SearchResult {
	var extension struct {
		SearchResults []gateway.SearchResult `json:"search_results"`
	}
	if err := json.Unmarshal([]byte(raw), &extension); err != nil {
		return nil
	}
	return extension.SearchResults
}
