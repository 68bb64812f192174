package domain

import "time"

// Action names a user-triggered mutation.
type Action string

const (
	ActionToggle Action = "toggle"
	ActionDelete Action = "delete"
)

// Outcome records how a mutation ended.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeFailed         Outcome = "failed"
	OutcomeCancelled      Outcome = "cancelled"
	OutcomeAlreadyDeleted Outcome = "already_deleted"
)

// Activity is a journal entry describing one mutation attempt.
type Activity struct {
	ID           string       `json:"id"`
	Action       Action       `json:"action"`
	AssignmentID AssignmentID `json:"assignment_id"`
	Completed    *bool        `json:"completed,omitempty"`
	Outcome      Outcome      `json:"outcome"`
	RequestID    string       `json:"request_id,omitempty"`
	Error        string       `json:"error,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
}
