package gateway

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyCompletion indicates the provider returned no choices.
var ErrEmptyCompletion = errors.New("gateway: completion contained no choices")

// ErrSearchUnsupported is returned by providers without server-side search.
var ErrSearchUnsupported = errors.New("gateway: provider does not support search")

// Message is a single generated chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Choice is one candidate completion returned by a provider.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// SearchResult is a provider-side web search hit attached to a completion.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Completion is the normalized response shape shared by all providers.
type Completion struct {
	ID            string         `json:"id,omitempty"`
	Model         string         `json:"model,omitempty"`
	Choices       []Choice       `json:"choices"`
	SearchResults []SearchResult `json:"search_results,omitempty"`
}

// Text returns the content of the first choice, or an error if the provider
// returned none. Agents use this as the raw model text.
func (c *Completion) Text() (string, error) {
	if c == nil || len(c.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return c.Choices[0].Message.Content, nil
}

// Gateway sends a (system prompt, user message) pair to a completion endpoint.
// Implementations must be safe for concurrent use.
type Gateway interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (*Completion, error)
}

// SearchGateway extends Gateway with provider-side web search. The returned
// completion carries structured SearchResults in addition to free text. Used
// by the news and research paths.
type SearchGateway interface {
	Gateway

	Search(ctx context.Context, prompt string) (*Completion, error)
}

// MockGateway is a lightweight in-memory Gateway useful for tests & examples.
// Responses are keyed by exact user message; unmatched messages receive a
// deterministic echo completion.
type MockGateway struct {
	responses     map[string]string
	searchResults []SearchResult
	err           error
}

// NewMockGateway constructs an empty MockGateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned completion for a user message.
func (m *MockGateway) AddResponse(userMessage, response string) {
	m.responses[userMessage] = response
}

// SetSearchResults sets the structured results attached to Search completions.
func (m *MockGateway) SetSearchResults(results ...SearchResult) {
	m.searchResults = results
}

// FailWith makes every subsequent call return err.
func (m *MockGateway) FailWith(err error) { m.err = err }

// Complete implements Gateway.
func (m *MockGateway) Complete(_ context.Context, _, userMessage string) (*Completion, error) {
	if m.err != nil {
		return nil, m.err
	}
	text, ok := m.responses[userMessage]
	if !ok {
		text = fmt.Sprintf("Mock response to: %s", userMessage)
	}
	return &Completion{
		ID:      "mock-completion",
		Model:   "mock",
		Choices: []Choice{{Message: Message{Role: "assistant", Content: text}, FinishReason: "stop"}},
	}, nil
}

// Search implements SearchGateway.
func (m *MockGateway) Search(ctx context.Context, prompt string) (*Completion, error) {
	completion, err := m.Complete(ctx, "", prompt)
	if err != nil {
		return nil, err
	}
	completion.SearchResults = m.searchResults
	return completion, nil
}
