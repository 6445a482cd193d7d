package llm

import (
	"errors"

	"github.com/margdarshak/disha/internal/logger"
)

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Provider  string
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes generation call events to the application log.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an Observer that logs events.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.log.Info("llm_call",
			"provider", event.Provider,
			"model", event.Model,
			"latency_ms", event.LatencyMs,
		)
		return
	}
	o.log.Warn("llm_call_failed",
		"provider", event.Provider,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode,
	)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
