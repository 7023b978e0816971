package kernlog

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Handler adapts a Logger to slog.Handler so the standard structured logging
// front-end drives the kernel log backend. The kernel log line format has no
// structured fields, so attributes are flattened into the message tail as
// key=value pairs, group names joined into the key with dots.
type Handler struct {
	logger *Logger
	attrs  []slog.Attr // keys already group-qualified
	prefix string      // active group prefix, "a.b."
}

// NewHandler wraps logger in a slog.Handler.
func NewHandler(logger *Logger) *Handler {
	return &Handler{logger: logger}
}

// Enabled mirrors the Logger's level gate; the front-end's own filter runs
// first, this is the defensive second check.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(fromSlogLevel(level))
}

// Handle renders the record and submits it. Safe for concurrent use: the
// handler itself is immutable after construction and the Device serializes
// the actual writes.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		if !a.Equal(slog.Attr{}) {
			writeAttr(&b, h.prefix+a.Key, a.Value)
		}
		return true
	})
	h.logger.Log(Record{Level: fromSlogLevel(r.Level), Message: b.String()})
	return nil
}

// WithAttrs returns a copy of the handler with additional base attributes,
// their keys qualified by the active group prefix.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		nh.attrs = append(nh.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &nh
}

// WithGroup returns a copy of the handler that prefixes subsequent attribute
// keys with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func writeAttr(b *strings.Builder, key string, v slog.Value) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(v.Resolve().String())
}

// fromSlogLevel maps slog levels onto ours. slog has no trace constant;
// anything below debug is treated as trace.
func fromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

var (
	initMu   sync.Mutex
	initDone bool
)

// Init opens the kernel log device and installs the backend as the process
// default slog logger with every level enabled. Call it once at process
// start, before any logging; a second call returns ErrAlreadyInitialized
// and leaves the first registration active. On open failure nothing is
// installed and the previous default logger keeps working.
func Init(opts ...Option) error {
	return InitWithLevel(LevelTrace, opts...)
}

// InitWithLevel is Init with an explicit level gate.
func InitWithLevel(level Level, opts ...Option) error {
	initMu.Lock()
	defer initMu.Unlock()
	if initDone {
		return ErrAlreadyInitialized
	}
	logger, err := New(append([]Option{WithLevel(level)}, opts...)...)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(logger)))
	initDone = true
	return nil
}
