package events

import "time"

const (
	TimesheetLifecycleTopic   = "timesheet.lifecycle.v1"
	TimesheetCreatedEventType = "timesheet.created"
)

type TimesheetCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	TimesheetID string    `json:"timesheet_id"`
	EmployeeID  string    `json:"employee_id"`
	WeekStart   string    `json:"week_start"`
	OccurredAt  time.Time `json:"occurred_at"`
}
