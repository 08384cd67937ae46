package events

import "time"

const SubmissionDecidedTopic = "hr.submission.decision.v1"

type SubmissionDecidedEvent struct {
	EventType      string    `json:"event_type"`
	SubmissionID   string    `json:"submission_id"`
	SubmissionType string    `json:"submission_type"`
	UserID         string    `json:"user_id"`
	Status         string    `json:"status"`
	DecidedBy      string    `json:"decided_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
