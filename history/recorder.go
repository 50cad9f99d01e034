package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autopilot-ai/autopilot/gateway"
	"github.com/autopilot-ai/autopilot/internal/jsonx"
	"github.com/autopilot-ai/autopilot/logging"
)

const analyzerPrompt = `You are an agent activity analyzer.
Your job is to convert conversations into structured JSON.
Return ONLY valid JSON. No markdown. No explanation.`

const analyzerRequestTemplate = `Convert the following interaction into JSON strictly matching this schema:

{
  "task_name": string,
  "task_description": string,
  "agent_type": string,
  "status": "completed" | "failed",
  "execution_time": number,
  "result_summary": string
}

User Message:
%s

Agent Response:
%s`

// RecorderOptions configure a Recorder.
type RecorderOptions struct {
	Logger logging.Logger
	Now    func() time.Time
}

// Recorder analyzes a completed turn with an LLM call and persists the
// structured result. It is safe for concurrent use.
type Recorder struct {
	gw     gateway.Gateway
	store  Store
	logger logging.Logger
	now    func() time.Time
}

// NewRecorder constructs a Recorder over the given gateway and store.
func NewRecorder(gw gateway.Gateway, store Store, optFns ...func(o *RecorderOptions)) *Recorder {
	opts := RecorderOptions{
		Logger: logging.NoOpLogger{},
		Now:    time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Recorder{gw: gw, store: store, logger: opts.Logger, now: opts.Now}
}

// Record analyzes one turn and saves the resulting record. Callers running it
// as a background task should log, not propagate, the returned error.
func (r *Recorder) Record(ctx context.Context, userMessage, agentResponse, userID string, executionTime time.Duration) error {
	request := fmt.Sprintf(analyzerRequestTemplate, userMessage, agentResponse)

	completion, err := r.gw.Complete(ctx, analyzerPrompt, request)
	if err != nil {
		return fmt.Errorf("history analysis failed: %w", err)
	}
	content, err := completion.Text()
	if err != nil {
		return fmt.Errorf("history analysis failed: %w", err)
	}

	// The analyzer is itself an LLM; decode its output as leniently as any
	// other model-generated JSON.
	var parsed struct {
		TaskName        string `json:"task_name"`
		TaskDescription string `json:"task_description"`
		AgentType       string `json:"agent_type"`
		Status          Status `json:"status"`
		ResultSummary   string `json:"result_summary"`
	}
	if err := jsonx.DecodeLenient(content, &parsed); err != nil {
		return fmt.Errorf("history analysis returned invalid JSON: %w", err)
	}

	status := parsed.Status
	if !status.Valid() {
		status = StatusCompleted
	}

	rec := &Record{
		ID:              uuid.NewString(),
		TaskName:        parsed.TaskName,
		TaskDescription: parsed.TaskDescription,
		AgentType:       parsed.AgentType,
		Status:          status,
		ExecutionTime:   executionTime.Seconds(),
		ResultSummary:   parsed.ResultSummary,
		UserID:          userID,
		CreatedAt:       r.now(),
	}

	if err := r.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("history save failed: %w", err)
	}

	r.logger.Debug("history.recorded", "user_id", userID, "task", rec.TaskName, "status", string(rec.Status))
	return nil
}
