package dto

import "encoding/json"

// EventRequest is an event delivered to the function endpoint.
type EventRequest struct {
	Name string          `json:"name" binding:"required" example:"test/hello.world"`
	Data json.RawMessage `json:"data" swaggertype:"object"`
	ID   string          `json:"id,omitempty"`
	TS   int64           `json:"ts,omitempty"`
}

// FunctionTrigger describes what starts a function.
type FunctionTrigger struct {
	Event string `json:"event,omitempty" example:"clerk/user.created"`
	Cron  string `json:"cron,omitempty" example:"@daily"`
}

// FunctionInfo is the introspection view of one registered function.
type FunctionInfo struct {
	ID       string            `json:"id" example:"create-new-user"`
	Name     string            `json:"name" example:"Create new user"`
	Triggers []FunctionTrigger `json:"triggers"`
}

// FunctionListResponse is returned by GET and PUT on the function endpoint.
type FunctionListResponse struct {
	Functions     []FunctionInfo `json:"functions"`
	FunctionCount int            `json:"functionCount"`
}

// FunctionResult is the outcome of one function for a delivered event.
type FunctionResult struct {
	FunctionID string      `json:"functionId"`
	RunID      string      `json:"runId"`
	Status     string      `json:"status"`
	Output     interface{} `json:"output,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// EventDeliveryResponse lists the result of every subscribed function.
type EventDeliveryResponse struct {
	Event   string           `json:"event"`
	Results []FunctionResult `json:"results"`
}
