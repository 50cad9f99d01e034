package history

import (
	"context"
	"time"
)

// Status is the terminal state of a recorded turn.
type Status string

const (
	// StatusCompleted marks a turn that produced its intended result.
	StatusCompleted Status = "completed"
	// StatusFailed marks a turn whose action or agent failed.
	StatusFailed Status = "failed"
	// StatusInProgress marks a turn still executing.
	StatusInProgress Status = "in-progress"
)

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusInProgress:
		return true
	default:
		return false
	}
}

// Record is one analyzed assistant turn.
type Record struct {
	ID              string    `json:"id"`
	TaskName        string    `json:"task_name"`
	TaskDescription string    `json:"task_description"`
	AgentType       string    `json:"agent_type"`
	Status          Status    `json:"status"`
	ExecutionTime   float64   `json:"execution_time"` // seconds
	ResultSummary   string    `json:"result_summary,omitempty"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// Store persists turn records. Implementations must support concurrent use
// across simultaneous turns for different users without cross-user
// interference.
type Store interface {
	// Save persists one record.
	Save(ctx context.Context, rec *Record) error

	// List returns up to limit records for userID, newest first, skipping
	// offset records.
	List(ctx context.Context, userID string, limit, offset int) ([]*Record, error)
}
