package monitoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("unknown log level")

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

// Logger writes one JSON encoded LogEntry per line.
type Logger struct {
	component string
	minLevel  LogLevel
	now       func() time.Time

	mu  sync.Mutex
	enc *json.Encoder
}

// NewLogger returns a logger for component that writes entries at or above
// minLevel to w.
func NewLogger(component string, w io.Writer, minLevel LogLevel) *Logger {
	return &Logger{
		component: component,
		minLevel:  minLevel,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
}

func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.minLevel
}

func (l *Logger) Log(_ context.Context, level LogLevel, eventType string, message string, details map[string]any) {
	if !l.Enabled(level) {
		return
	}
	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// A diagnostic log that cannot be written has nowhere left to report to.
	_ = l.enc.Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return WARN, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
