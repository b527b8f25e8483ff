// Package events hosts named functions triggered by incoming webhook events
// or by a cron schedule, and records the outcome of every invocation.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

// ScheduledEventName is the event name passed to cron-triggered functions
const ScheduledEventName = "scheduled.timer"

// Event is a named payload delivered to the webhook endpoint
type Event struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data,omitempty"`
	ID   string          `json:"id,omitempty"`
	TS   int64           `json:"ts,omitempty"`
}

// Decode unmarshals the event data into v
func (e Event) Decode(v interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%w: event %s has no data", apperrors.ErrBadRequest, e.Name)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("%w: invalid data for event %s: %v", apperrors.ErrBadRequest, e.Name, err)
	}
	return nil
}

// HandlerFunc runs a function. The returned value is stored as the run output.
type HandlerFunc func(ctx context.Context, evt Event) (interface{}, error)

// Trigger subscribes a function either to an event name or to a cron schedule
type Trigger struct {
	Event string `json:"event,omitempty"`
	Cron  string `json:"cron,omitempty"`
}

// Function is a registered unit of work
type Function struct {
	ID      string
	Name    string
	Trigger Trigger
	Handler HandlerFunc
}

// FunctionInfo describes a registered function for introspection
type FunctionInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Triggers []Trigger `json:"triggers"`
}

// Result is the outcome of one function run
type Result struct {
	FunctionID string                `json:"functionId"`
	RunID      string                `json:"runId"`
	Status     models.EventRunStatus `json:"status"`
	Output     interface{}           `json:"output,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// RunRecorder persists run outcomes
type RunRecorder interface {
	Create(ctx context.Context, run *models.EventRun) error
}

// Registry holds the registered functions
type Registry struct {
	mu        sync.RWMutex
	functions map[string]*Function
	order     []string
	recorder  RunRecorder
	logger    zerolog.Logger
}

// NewRegistry creates an empty registry. recorder may be nil.
func NewRegistry(recorder RunRecorder, logger zerolog.Logger) *Registry {
	return &Registry{
		functions: make(map[string]*Function),
		recorder:  recorder,
		logger:    logger,
	}
}

// Register adds fn. Ids are unique and each function has exactly one trigger.
func (r *Registry) Register(fn Function) error {
	if fn.ID == "" || fn.Handler == nil {
		return errors.New("function id and handler are required")
	}
	if (fn.Trigger.Event == "") == (fn.Trigger.Cron == "") {
		return fmt.Errorf("function %s must have exactly one of event or cron trigger", fn.ID)
	}
	if fn.Trigger.Cron != "" {
		if _, err := cronParser.Parse(fn.Trigger.Cron); err != nil {
			return fmt.Errorf("function %s has invalid cron %q: %w", fn.ID, fn.Trigger.Cron, err)
		}
	}
	if fn.Name == "" {
		fn.Name = fn.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.functions[fn.ID]; exists {
		return fmt.Errorf("function %s already registered", fn.ID)
	}
	r.functions[fn.ID] = &fn
	r.order = append(r.order, fn.ID)
	return nil
}

// MustRegister is Register for wiring code; it panics on error.
func (r *Registry) MustRegister(fns ...Function) {
	for _, fn := range fns {
		if err := r.Register(fn); err != nil {
			panic(err)
		}
	}
}

// Functions lists the registered functions in registration order
func (r *Registry) Functions() []FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]FunctionInfo, 0, len(r.order))
	for _, id := range r.order {
		fn := r.functions[id]
		infos = append(infos, FunctionInfo{ID: fn.ID, Name: fn.Name, Triggers: []Trigger{fn.Trigger}})
	}
	return infos
}

func (r *Registry) subscribers(eventName string) []*Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var fns []*Function
	for _, id := range r.order {
		if fn := r.functions[id]; fn.Trigger.Event == eventName {
			fns = append(fns, fn)
		}
	}
	return fns
}

func (r *Registry) scheduled() []*Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var fns []*Function
	for _, id := range r.order {
		if fn := r.functions[id]; fn.Trigger.Cron != "" {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Dispatch runs every function subscribed to evt.Name, in registration
// order. A failing function does not stop the others; its failure is part of
// the results. ErrUnknownEvent is returned when nothing is subscribed.
func (r *Registry) Dispatch(ctx context.Context, evt Event) ([]Result, error) {
	if evt.Name == "" {
		return nil, apperrors.NewBadRequestError("Event name is required")
	}

	fns := r.subscribers(evt.Name)
	if len(fns) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownEvent, evt.Name)
	}

	results := make([]Result, 0, len(fns))
	for _, fn := range fns {
		results = append(results, r.run(ctx, fn, evt))
	}
	return results, nil
}

// Invoke runs a single function by id regardless of its trigger
func (r *Registry) Invoke(ctx context.Context, functionID string, evt Event) (Result, error) {
	r.mu.RLock()
	fn, ok := r.functions[functionID]
	r.mu.RUnlock()
	if !ok {
		return Result{}, apperrors.NewResourceNotFoundError(fmt.Sprintf("Function %s not found", functionID))
	}
	return r.run(ctx, fn, evt), nil
}

func (r *Registry) run(ctx context.Context, fn *Function, evt Event) Result {
	start := time.Now()
	result := Result{FunctionID: fn.ID, RunID: uuid.New().String()}

	output, err := safeCall(ctx, fn.Handler, evt)
	if err != nil {
		result.Status = models.EventRunFailed
		result.Error = err.Error()
	} else {
		result.Status = models.EventRunCompleted
		result.Output = output
	}

	logEvent := r.logger.Info()
	if err != nil {
		logEvent = r.logger.Error().Err(err)
	}
	logEvent.
		Str("function", fn.ID).
		Str("event", evt.Name).
		Str("runID", result.RunID).
		Dur("duration", time.Since(start)).
		Msg("Function run finished")

	r.record(ctx, evt, result)
	return result
}

func safeCall(ctx context.Context, h HandlerFunc, evt Event) (out interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("function panicked: %v", p)
		}
	}()
	return h(ctx, evt)
}

func (r *Registry) record(ctx context.Context, evt Event, result Result) {
	if r.recorder == nil {
		return
	}

	run := &models.EventRun{
		ID:         result.RunID,
		FunctionID: result.FunctionID,
		EventName:  evt.Name,
		Status:     result.Status,
		CreatedAt:  time.Now().UTC(),
	}
	if result.Error != "" {
		run.Error = &result.Error
	}
	if result.Output != nil {
		if b, err := json.Marshal(result.Output); err == nil {
			out := string(b)
			run.Output = &out
		}
	}

	// The run is recorded even when the request context is already done
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := r.recorder.Create(recordCtx, run); err != nil {
		r.logger.Error().Err(err).Str("runID", run.ID).Msg("Failed to record function run")
	}
}
