package logger

import (
	"net/http"

	"github.com/rollbar/rollbar-go"
	"github.com/rs/zerolog"
)

// Reporter forwards errors to an external error tracker.
type Reporter interface {
	Message(level, msg string)
	RequestError(r *http.Request, err error, extras map[string]interface{})
}

// RollbarConfig holds the settings passed to rollbar-go.
type RollbarConfig struct {
	Token       string
	Environment string
	CodeVersion string
	ServerHost  string
}

// RollbarReporter reports through the process-wide rollbar client.
type RollbarReporter struct{}

// NewRollbarReporter configures rollbar-go. It returns nil when no token is set so callers
// can skip reporting entirely.
func NewRollbarReporter(cfg RollbarConfig) *RollbarReporter {
	if cfg.Token == "" {
		return nil
	}
	rollbar.SetToken(cfg.Token)
	rollbar.SetEnvironment(cfg.Environment)
	rollbar.SetCodeVersion(cfg.CodeVersion)
	rollbar.SetServerHost(cfg.ServerHost)
	return &RollbarReporter{}
}

// Message sends a plain message at the given rollbar level.
func (r *RollbarReporter) Message(level, msg string) {
	rollbar.Log(level, msg)
}

// RequestError sends err with the request attached.
func (r *RollbarReporter) RequestError(req *http.Request, err error, extras map[string]interface{}) {
	rollbar.RequestErrorWithExtras(rollbar.ERR, req, err, extras)
}

// Close flushes pending items.
func (r *RollbarReporter) Close() {
	rollbar.Close()
}

type reporterHook struct {
	reporter Reporter
}

func (h reporterHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	switch level {
	case zerolog.ErrorLevel:
		h.reporter.Message(rollbar.ERR, msg)
	case zerolog.FatalLevel, zerolog.PanicLevel:
		h.reporter.Message(rollbar.CRIT, msg)
	}
}
