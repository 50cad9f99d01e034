package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/autopilot/gateway"
)

var recorderNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func withRecorderNow(o *RecorderOptions) { o.Now = func() time.Time { return recorderNow } }

func analyzerResponse(t *testing.T, gw *gateway.MockGateway, userMessage, agentResponse, analysis string) {
	t.Helper()
	gw.AddResponse(fmt.Sprintf(analyzerRequestTemplate, userMessage, agentResponse), analysis)
}

func TestRecorder_AnalyzesAndSaves(t *testing.T) {
	gw := gateway.NewMockGateway()
	analyzerResponse(t, gw, "send an email to Alice", `{"status": "emails_sent"}`,
		`{"task_name": "Send email", "task_description": "Email Alice", "agent_type": "email_agent", "status": "completed", "execution_time": 1.2, "result_summary": "sent"}`)

	store := NewInMemoryStore()
	rec := NewRecorder(gw, store, withRecorderNow)

	err := rec.Record(context.Background(), "send an email to Alice", `{"status": "emails_sent"}`, "u1", 1200*time.Millisecond)
	require.NoError(t, err)

	got, err := store.List(context.Background(), "u1", 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	saved := got[0]
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Send email", saved.TaskName)
	assert.Equal(t, "Email Alice", saved.TaskDescription)
	assert.Equal(t, "email_agent", saved.AgentType)
	assert.Equal(t, StatusCompleted, saved.Status)
	assert.InDelta(t, 1.2, saved.ExecutionTime, 0.001)
	assert.Equal(t, "sent", saved.ResultSummary)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, recorderNow, saved.CreatedAt)
}

func TestRecorder_LenientAnalyzerOutput(t *testing.T) {
	gw := gateway.NewMockGateway()
	analyzerResponse(t, gw, "q", "a",
		"```json\n{\"task_name\": \"Question\", \"status\": \"failed\"}\n```")

	store := NewInMemoryStore()
	rec := NewRecorder(gw, store, withRecorderNow)

	require.NoError(t, rec.Record(context.Background(), "q", "a", "u1", time.Second))

	got, _ := store.List(context.Background(), "u1", 1, 0)
	require.Len(t, got, 1)
	assert.Equal(t, StatusFailed, got[0].Status)
}

func TestRecorder_InvalidStatusDefaultsToCompleted(t *testing.T) {
	gw := gateway.NewMockGateway()
	analyzerResponse(t, gw, "q", "a", `{"task_name": "Question", "status": "done-ish"}`)

	store := NewInMemoryStore()
	rec := NewRecorder(gw, store, withRecorderNow)

	require.NoError(t, rec.Record(context.Background(), "q", "a", "u1", time.Second))

	got, _ := store.List(context.Background(), "u1", 1, 0)
	require.Len(t, got, 1)
	assert.Equal(t, StatusCompleted, got[0].Status)
}

func TestRecorder_GatewayFailure(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.FailWith(errors.New("upstream down"))

	rec := NewRecorder(gw, NewInMemoryStore(), withRecorderNow)
	err := rec.Record(context.Background(), "q", "a", "u1", time.Second)
	assert.ErrorContains(t, err, "history analysis failed")
}

func TestRecorder_UnparseableAnalysis(t *testing.T) {
	gw := gateway.NewMockGateway()
	analyzerResponse(t, gw, "q", "a", "the task was completed successfully")

	store := NewInMemoryStore()
	rec := NewRecorder(gw, store, withRecorderNow)

	err := rec.Record(context.Background(), "q", "a", "u1", time.Second)
	assert.ErrorContains(t, err, "invalid JSON")
	assert.Equal(t, 0, store.Count("u1"))
}
