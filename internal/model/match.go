package model

import "time"

// Match statuses. Matches are created pending; the other values exist in the
// data model but no endpoint transitions them — a match is recorded intent,
// not a workflow.
const (
	MatchStatusPending   = "pending"
	MatchStatusAccepted  = "accepted"
	MatchStatusRejected  = "rejected"
	MatchStatusCompleted = "completed"
)

// Match links a project with a maintainer who offered to help.
type Match struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	MaintainerID string    `json:"maintainer_id"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
