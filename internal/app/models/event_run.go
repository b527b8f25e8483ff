package models

import "time"

// EventRun records one invocation of a registered function.
type EventRun struct {
	ID         string         `json:"id" db:"id"`
	FunctionID string         `json:"functionId" db:"function_id"`
	EventName  string         `json:"eventName" db:"event_name"`
	Status     EventRunStatus `json:"status" db:"status"`
	Output     *string        `json:"output,omitempty" db:"output"`
	Error      *string        `json:"error,omitempty" db:"error"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at"`
}
