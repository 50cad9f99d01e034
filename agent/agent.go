package agent

import (
	"context"
	"errors"

	"github.com/autopilot-ai/autopilot/gateway"
	"github.com/autopilot-ai/autopilot/logging"
)

// ErrEmptySystemPrompt is returned by New when the system prompt is missing.
var ErrEmptySystemPrompt = errors.New("agent: system prompt must not be empty")

// Options configure an Agent instance.
type Options struct {
	Logger logging.Logger
}

// Agent binds a fixed system prompt to an LLM gateway. Agents hold no mutable
// state after construction and are safe for concurrent use; every Invoke is
// one independent gateway call.
type Agent struct {
	name         Name
	systemPrompt string
	gw           gateway.Gateway
	logger       logging.Logger
}

// New constructs an Agent. The system prompt is required.
func New(name Name, systemPrompt string, gw gateway.Gateway, optFns ...func(o *Options)) (*Agent, error) {
	if systemPrompt == "" {
		return nil, ErrEmptySystemPrompt
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Agent{
		name:         name,
		systemPrompt: systemPrompt,
		gw:           gw,
		logger:       opts.Logger,
	}, nil
}

// Name returns the agent's routable name.
func (a *Agent) Name() Name { return a.name }

// SystemPrompt returns the bound instruction prompt.
func (a *Agent) SystemPrompt() string { return a.systemPrompt }

// Invoke sends the message under the bound system prompt and returns the raw
// completion. Gateway failures are hard failures.
func (a *Agent) Invoke(ctx context.Context, message string) (*gateway.Completion, error) {
	a.logger.Debug("agent.invoke", "agent", string(a.name))

	completion, err := a.gw.Complete(ctx, a.systemPrompt, message)
	if err != nil {
		a.logger.Error("agent.invoke.error", "agent", string(a.name), "error", err.Error())
		return nil, err
	}
	return completion, nil
}

// InvokeText is Invoke narrowed to the first choice's text content. This is
// the raw model reply: expected to be a JSON action descriptor, but not
// guaranteed to be one.
func (a *Agent) InvokeText(ctx context.Context, message string) (string, error) {
	completion, err := a.Invoke(ctx, message)
	if err != nil {
		return "", err
	}
	return completion.Text()
}

// mustNew is New for the package's own constructors, whose prompts are
// compile-time constants and cannot be empty.
func mustNew(name Name, systemPrompt string, gw gateway.Gateway, optFns ...func(o *Options)) *Agent {
	a, err := New(name, systemPrompt, gw, optFns...)
	if err != nil {
		panic(err)
	}
	return a
}
