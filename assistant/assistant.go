package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autopilot-ai/autopilot/action"
	"github.com/autopilot-ai/autopilot/agent"
	"github.com/autopilot-ai/autopilot/executor"
	"github.com/autopilot-ai/autopilot/logging"
)

// Reply is the assistant's answer to one turn: either a structured result
// envelope or the agent's free text, never both.
type Reply struct {
	// Text holds the verbatim agent reply when no action was executed
	// (conversational pass-through).
	Text string `json:"text,omitempty"`

	// Envelope holds the executor's result when an action ran, or a
	// structural error shape from the routing stage.
	Envelope executor.Envelope `json:"envelope,omitempty"`
}

// IsText reports whether the reply is a conversational pass-through.
func (r Reply) IsText() bool { return r.Envelope == nil }

func textReply(text string) Reply             { return Reply{Text: text} }
func envelopeReply(e executor.Envelope) Reply { return Reply{Envelope: e} }

// formatEnvelope renders an envelope for the history analyzer prompt.
func formatEnvelope(e executor.Envelope) string {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(e))
	}
	return string(data)
}

// Recorder persists an analyzed turn; see the history package.
type Recorder interface {
	Record(ctx context.Context, userMessage, agentResponse, userID string, executionTime time.Duration) error
}

// Options configure an Assistant.
type Options struct {
	Logger logging.Logger

	// Recorder, when set, receives every completed turn as a detached
	// background task.
	Recorder Recorder

	// RecordTimeout bounds each background recording task.
	RecordTimeout time.Duration

	// Now supplies the clock; overridable for tests.
	Now func() time.Time
}

// Assistant is the turn orchestrator. It holds only long-lived, read-only
// collaborators and is safe for concurrent turns across users.
type Assistant struct {
	router *agent.Router
	agents map[agent.Name]*agent.Agent
	exec   *executor.Executor

	logger        logging.Logger
	recorder      Recorder
	recordTimeout time.Duration
	now           func() time.Time
}

// New composes an Assistant from its collaborators. The agents map must be
// keyed by the same Name enum the router prompt enumerates; the shared enum
// keeps the router's vocabulary and the dispatch set from drifting.
func New(router *agent.Router, agents map[agent.Name]*agent.Agent, exec *executor.Executor, optFns ...func(o *Options)) *Assistant {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		RecordTimeout: 30 * time.Second,
		Now:           time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Assistant{
		router:        router,
		agents:        agents,
		exec:          exec,
		logger:        opts.Logger,
		recorder:      opts.Recorder,
		recordTimeout: opts.RecordTimeout,
		now:           opts.Now,
	}
}

// Handle runs one full turn: route, invoke the selected specialized agent,
// try-execute its reply, and fire the history recording task. The returned
// error is non-nil only for hard failures (LLM transport errors, fatal
// domain data); protocol-shaped problems come back inside the reply.
func (a *Assistant) Handle(ctx context.Context, message, userID string) (Reply, error) {
	turnID := uuid.NewString()
	started := a.now()

	a.logger.Info("assistant.turn.start", "turn", turnID, "user_id", userID)

	routerText, err := a.router.Route(ctx, message)
	if err != nil {
		return Reply{}, err
	}

	a.logger.Debug("assistant.router.raw", "turn", turnID, "raw", routerText)

	// Strict parse: an unparseable router is a protocol violation surfaced
	// structurally, not recovered like specialized agent output is.
	decision, err := agent.ParseDecision(routerText)
	if err != nil {
		a.logger.Warn("assistant.router.invalid_json", "turn", turnID)
		return envelopeReply(executor.Envelope{
			"error": "Router returned invalid JSON",
			"raw":   routerText,
		}), nil
	}

	reply, err := a.dispatch(ctx, decision, turnID, userID)
	if err != nil {
		return Reply{}, err
	}

	a.record(message, reply, userID, turnID, a.now().Sub(started))

	return reply, nil
}

func (a *Assistant) dispatch(ctx context.Context, decision *agent.Decision, turnID, userID string) (Reply, error) {
	if decision.Agent == agent.NameNone {
		return envelopeReply(executor.Envelope{
			"response": "No agent required",
			"raw":      decision,
		}), nil
	}

	selected, ok := a.agents[decision.Agent]
	if !ok {
		// Identifiers outside the enum are rejected, not silently ignored.
		a.logger.Warn("assistant.router.unknown_agent", "turn", turnID, "agent", string(decision.Agent))
		return envelopeReply(executor.Envelope{
			"error": "unknown agent",
			"agent": string(decision.Agent),
		}), nil
	}

	a.logger.Info("assistant.dispatch", "turn", turnID, "agent", string(decision.Agent))

	agentText, err := selected.InvokeText(ctx, decision.Message)
	if err != nil {
		return Reply{}, err
	}

	return a.tryExecute(ctx, agentText, userID)
}

// tryExecute hands the agent reply to the executor only when it decodes to a
// descriptor carrying an action key; everything else is a conversational
// answer returned verbatim. The researcher agent relies on this pass-through.
func (a *Assistant) tryExecute(ctx context.Context, agentText, userID string) (Reply, error) {
	desc, err := action.Decode(agentText)
	if err != nil || desc.Action == "" {
		return textReply(agentText), nil
	}

	envelope, err := a.exec.ExecuteDescriptor(ctx, desc, userID)
	if err != nil {
		return Reply{}, err
	}
	return envelopeReply(envelope), nil
}

// record fires the analyze-and-store task detached from the turn. It never
// blocks the reply; failures are diagnostic-logged and swallowed.
func (a *Assistant) record(message string, reply Reply, userID, turnID string, elapsed time.Duration) {
	if a.recorder == nil {
		return
	}

	response := reply.Text
	if !reply.IsText() {
		response = formatEnvelope(reply.Envelope)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.recordTimeout)
		defer cancel()

		if err := a.recorder.Record(ctx, message, response, userID, elapsed); err != nil {
			a.logger.Warn("assistant.record.failed", "turn", turnID, "error", err.Error())
		}
	}()
}
