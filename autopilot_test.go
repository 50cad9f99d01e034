package autopilot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/autopilot/gateway"
	"github.com/autopilot-ai/autopilot/history"
)

func TestHandle_ResearcherTextTurn(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.AddResponse("who designed Go?",
		`{"agent": "researcher_agent", "message": "go language designers"}`)
	gw.AddResponse("go language designers",
		"Go was designed by Robert Griesemer, Rob Pike and Ken Thompson.")

	p := New(gw, func(o *Options) { o.DisableHistory = true })

	reply, err := p.Handle(context.Background(), "who designed Go?", "u1")
	require.NoError(t, err)
	assert.True(t, reply.IsText())
	assert.Equal(t, "Go was designed by Robert Griesemer, Rob Pike and Ken Thompson.", reply.Text)
}

func TestHandle_NoneDecision(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.AddResponse("what is wikipedia?",
		`{"agent": "none", "message": "what is wikipedia?"}`)

	p := New(gw, func(o *Options) { o.DisableHistory = true })

	reply, err := p.Handle(context.Background(), "what is wikipedia?", "u1")
	require.NoError(t, err)
	require.False(t, reply.IsText())
	assert.Equal(t, "No agent required", reply.Envelope["response"])
}

func TestHandle_HistoryAnalysisFailureNeverBreaksTurn(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.AddResponse("who designed Go?",
		`{"agent": "researcher_agent", "message": "go designers"}`)
	gw.AddResponse("go designers", "Griesemer, Pike and Thompson.")
	// The analyzer prompt is unregistered, so it receives the mock's prose
	// echo, which is not decodable JSON. The background task must swallow
	// that failure without affecting the reply or the store.

	store := history.NewInMemoryStore()
	p := New(gw, func(o *Options) {
		o.HistoryStore = store
		o.RecordTimeout = 2 * time.Second
	})

	reply, err := p.Handle(context.Background(), "who designed Go?", "u1")
	require.NoError(t, err)
	assert.True(t, reply.IsText())

	time.Sleep(100 * time.Millisecond) // let the background task finish
	assert.Equal(t, 0, store.Count("u1"))
	assert.Same(t, store, p.History())
}
