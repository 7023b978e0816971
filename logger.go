package kernlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LineWriter is the narrow write surface a Logger needs: one encoded line
// in, one kernel log entry out. *Device implements it; tests and callers
// doing their own singleton wiring can substitute anything else.
type LineWriter interface {
	Write(line []byte) error
}

// Logger encodes records into kernel log lines and submits them to a
// LineWriter. Beyond the open handle, the level gate and the identity fields
// resolved at construction it keeps no cross-call state.
type Logger struct {
	out   LineWriter
	level Level
	tag   string
	pid   int
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the least severe level that still reaches the device.
// Records below it are dropped silently. The default lets everything
// through.
func WithLevel(level Level) Option {
	return func(l *Logger) { l.level = level }
}

// WithTag overrides the identifying tag. The default is the program name.
func WithTag(tag string) Option {
	return func(l *Logger) { l.tag = sanitizeTag(tag) }
}

// WithWriter directs encoded lines at w instead of opening the kernel log
// device. The caller keeps ownership of w.
func WithWriter(w LineWriter) Option {
	return func(l *Logger) { l.out = w }
}

// openDevice is the device acquisition seam; tests substitute it.
var openDevice = func() (LineWriter, error) {
	return Open()
}

// New builds a Logger. Unless WithWriter is given it performs exactly one
// device open; on open failure no Logger is produced and the error carries
// the ErrPermissionDenied or ErrUnavailable sentinel for the caller to pick
// a fallback backend.
func New(opts ...Option) (*Logger, error) {
	l := &Logger{level: LevelTrace, tag: defaultTag()}
	if pidReporting {
		l.pid = os.Getpid()
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.out == nil {
		out, err := openDevice()
		if err != nil {
			return nil, err
		}
		l.out = out
	}
	return l, nil
}

// Enabled reports whether records at level pass the gate.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level <= l.level
}

// Log encodes one record and writes it. Failures never reach the caller: a
// logging backend must not disrupt application control flow, so a failed
// write is noted once on stderr and the record is dropped. On a nil Logger
// Log is a no-op.
func (l *Logger) Log(r Record) {
	if !l.Enabled(r.Level) {
		return
	}
	tag := l.tag
	if r.Tag != "" {
		tag = sanitizeTag(r.Tag)
	}
	for _, line := range encodeRecord(r.Level.Priority(), tag, l.pid, r.Message) {
		if err := l.out.Write(line); err != nil {
			fmt.Fprintf(os.Stderr, "kernlog: dropped record: %v\n", err)
		}
	}
}

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(LevelError, format, args...) }

// Warnf logs a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(LevelWarn, format, args...) }

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(LevelInfo, format, args...) }

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }

// Tracef logs a formatted message at LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(LevelTrace, format, args...) }

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.Log(Record{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Flush is a no-op: every Log call is synchronous and unbuffered.
func (l *Logger) Flush() {}

// Close releases the underlying device when the Logger owns one that can be
// closed.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	if c, ok := l.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func defaultTag() string {
	if len(os.Args) > 0 {
		if tag := sanitizeTag(filepath.Base(os.Args[0])); tag != "" {
			return tag
		}
	}
	return "kernlog"
}
