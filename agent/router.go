package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/autopilot-ai/autopilot/gateway"
	"github.com/autopilot-ai/autopilot/internal/util"
)

// routerPromptTemplate enumerates the agent name enum at render time so the
// prompt cannot drift from the dispatch set.
const routerPromptTemplate = `You are a router.

You MUST output only JSON:
{
  "agent": "<{{join .Agents " | "}}>",
  "message": "<same user message>"
}

Rules:
- If the user wants to schedule something, create an event, set a reminder, or check the calendar -> agent = "calendar_agent"
- If the user wants to send, read, check or summarize emails -> agent = "email_agent"
- If the user asks to research a topic, search the web, or scrape a website -> agent = "researcher_agent"
- If the user asks for someone's contact details, email address or phone number -> agent = "contacts_agent"
- If the user asks for news or headlines about a topic -> agent = "google_news_agent"
- Otherwise -> agent = "none"

Do NOT explain anything. Do NOT add text. Only return valid JSON.`

// Decision is the router's classification of one inbound user message. It is
// created per message, consumed immediately and never persisted.
type Decision struct {
	Agent   Name   `json:"agent"`
	Message string `json:"message"`
}

// ParseDecision decodes the router's raw text strictly. There is deliberately
// no leniency at this layer: a router that cannot produce valid JSON is a
// fatal protocol violation surfaced structurally by the orchestrator, unlike
// the executor's tolerant handling of specialized agent output.
func ParseDecision(raw string) (*Decision, error) {
	var d Decision
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &d); err != nil {
		return nil, fmt.Errorf("router returned invalid JSON: %w", err)
	}
	return &d, nil
}

// Router is the top-level agent whose sole job is intent classification into
// the closed set of specialized agent names. It owns no execution logic.
type Router struct {
	agent *Agent
}

// NewRouter constructs the router with a prompt generated from the Name enum.
func NewRouter(gw gateway.Gateway, optFns ...func(o *Options)) *Router {
	names := Names()
	values := make([]string, len(names))
	for i, n := range names {
		values[i] = string(n)
	}

	prompt, err := util.RenderTemplate(routerPromptTemplate, map[string]any{"Agents": values})
	if err != nil {
		// The template is a compile-time constant; rendering cannot fail
		// with a well-formed enum.
		panic(err)
	}

	return &Router{agent: mustNew(Name("router"), prompt, gw, optFns...)}
}

// Route classifies the message, returning the router's raw text. Decoding is
// left to the caller so the raw text can be surfaced on failure.
func (r *Router) Route(ctx context.Context, message string) (string, error) {
	return r.agent.InvokeText(ctx, message)
}
