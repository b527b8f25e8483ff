package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

type memoryRecorder struct {
	mu   sync.Mutex
	runs []*models.EventRun
}

func (m *memoryRecorder) Create(_ context.Context, run *models.EventRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

func (m *memoryRecorder) all() []*models.EventRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.EventRun(nil), m.runs...)
}

func echoFunction(id, event string) Function {
	return Function{
		ID:      id,
		Trigger: Trigger{Event: event},
		Handler: func(_ context.Context, evt Event) (interface{}, error) {
			return map[string]string{"seen": evt.Name}, nil
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(nil, zerolog.Nop())

	require.NoError(t, r.Register(echoFunction("a", "x/y")))
	assert.Error(t, r.Register(echoFunction("a", "x/z")), "duplicate id")
	assert.Error(t, r.Register(Function{ID: "b", Handler: echoFunction("b", "e").Handler}), "no trigger")
	assert.Error(t, r.Register(Function{ID: "c", Trigger: Trigger{Event: "e", Cron: "@daily"}, Handler: echoFunction("c", "e").Handler}), "two triggers")
	assert.Error(t, r.Register(Function{ID: "d", Trigger: Trigger{Cron: "not a cron"}, Handler: echoFunction("d", "e").Handler}), "bad cron")
	assert.Error(t, r.Register(Function{ID: "e", Trigger: Trigger{Event: "e"}}), "no handler")
	require.NoError(t, r.Register(Function{ID: "cleanup", Name: "Cleanup", Trigger: Trigger{Cron: "@daily"}, Handler: echoFunction("x", "e").Handler}))

	infos := r.Functions()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].ID)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, []Trigger{{Event: "x/y"}}, infos[0].Triggers)
	assert.Equal(t, "Cleanup", infos[1].Name)
	assert.Equal(t, []Trigger{{Cron: "@daily"}}, infos[1].Triggers)
}

func TestRegistry_Dispatch(t *testing.T) {
	rec := &memoryRecorder{}
	r := NewRegistry(rec, zerolog.Nop())
	r.MustRegister(
		echoFunction("first", "test/event"),
		Function{
			ID:      "failing",
			Trigger: Trigger{Event: "test/event"},
			Handler: func(context.Context, Event) (interface{}, error) { return nil, errors.New("boom") },
		},
		Function{
			ID:      "panicking",
			Trigger: Trigger{Event: "test/event"},
			Handler: func(context.Context, Event) (interface{}, error) { panic("oops") },
		},
		echoFunction("other", "other/event"),
	)

	results, err := r.Dispatch(context.Background(), Event{Name: "test/event"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "first", results[0].FunctionID)
	assert.Equal(t, models.EventRunCompleted, results[0].Status)
	assert.Equal(t, map[string]string{"seen": "test/event"}, results[0].Output)
	assert.NotEmpty(t, results[0].RunID)

	assert.Equal(t, models.EventRunFailed, results[1].Status)
	assert.Equal(t, "boom", results[1].Error)

	assert.Equal(t, models.EventRunFailed, results[2].Status)
	assert.Contains(t, results[2].Error, "oops")

	runs := rec.all()
	require.Len(t, runs, 3)
	require.NotNil(t, runs[0].Output)
	assert.JSONEq(t, `{"seen":"test/event"}`, *runs[0].Output)
	require.NotNil(t, runs[1].Error)
	assert.Equal(t, "boom", *runs[1].Error)
	assert.Equal(t, "test/event", runs[1].EventName)
}

func TestRegistry_DispatchUnknownEvent(t *testing.T) {
	r := NewRegistry(nil, zerolog.Nop())
	r.MustRegister(echoFunction("a", "known"))

	_, err := r.Dispatch(context.Background(), Event{Name: "unknown"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownEvent)

	_, err = r.Dispatch(context.Background(), Event{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegistry_Invoke(t *testing.T) {
	r := NewRegistry(nil, zerolog.Nop())
	r.MustRegister(echoFunction("a", "known"))

	res, err := r.Invoke(context.Background(), "a", Event{Name: "manual"})
	require.NoError(t, err)
	assert.Equal(t, models.EventRunCompleted, res.Status)

	_, err = r.Invoke(context.Background(), "missing", Event{Name: "manual"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEvent_Decode(t *testing.T) {
	var payload struct {
		Email string `json:"email"`
	}
	evt := Event{Name: "x", Data: json.RawMessage(`{"email":"a@b.c"}`)}
	require.NoError(t, evt.Decode(&payload))
	assert.Equal(t, "a@b.c", payload.Email)

	assert.ErrorIs(t, Event{Name: "x"}.Decode(&payload), apperrors.ErrBadRequest)
	assert.ErrorIs(t, Event{Name: "x", Data: json.RawMessage(`[1]`)}.Decode(&payload), apperrors.ErrBadRequest)
}

func TestScheduler_RunsCronFunctions(t *testing.T) {
	rec := &memoryRecorder{}
	r := NewRegistry(rec, zerolog.Nop())

	ran := make(chan Event, 1)
	r.MustRegister(Function{
		ID:      "tick",
		Trigger: Trigger{Cron: "@every 1s"},
		Handler: func(_ context.Context, evt Event) (interface{}, error) {
			select {
			case ran <- evt:
			default:
			}
			return nil, nil
		},
	})

	s := NewScheduler(r, time.UTC, zerolog.Nop())
	require.NoError(t, s.Start(context.Background()))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	}()

	select {
	case evt := <-ran:
		assert.Equal(t, ScheduledEventName, evt.Name)
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled function did not run")
	}
}

func TestSignature(t *testing.T) {
	key := []byte("secret")
	body := []byte(`{"name":"test/hello.world"}`)
	header := Sign(key, body)

	assert.NoError(t, VerifySignature(key, body, header))
	assert.NoError(t, VerifySignature(nil, body, ""), "disabled without key")
	assert.ErrorIs(t, VerifySignature(key, body, ""), apperrors.ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(key, body, "sha256=zz"), apperrors.ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(key, []byte("tampered"), header), apperrors.ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature([]byte("other"), body, header), apperrors.ErrInvalidSignature)
}
