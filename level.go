package kernlog

import (
	"fmt"
	"strings"
)

// Level is the severity of a log record, most severe first.
type Level int

// Log levels
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Kernel priorities as written in the <N> line prefix. The kernel convention
// runs 0 (emergency) through 7 (debug); this backend only emits the userland
// subset below.
const (
	priErr     = 3
	priWarning = 4
	priInfo    = 6
	priDebug   = 7
)

// Priority returns the kernel priority integer for the level. The mapping is
// monotonic: a more severe level never maps to a larger integer. Debug and
// Trace share the kernel's least severe slot.
func (l Level) Priority() int {
	switch l {
	case LevelError:
		return priErr
	case LevelWarn:
		return priWarning
	case LevelInfo:
		return priInfo
	default:
		return priDebug
	}
}

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, fmt.Errorf("kernlog: unknown level %q", s)
}
