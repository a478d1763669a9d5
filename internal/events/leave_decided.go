package events

import "time"

const LeaveDecidedTopic = "hr.leave.decision.v1"

type LeaveDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID int64     `json:"leave_request_id"`
	ManagerID      int64     `json:"manager_id"`
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	DecidedAt      time.Time `json:"decided_at"`
}
