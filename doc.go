// Package kernlog writes log records to the kernel ring buffer via /dev/kmsg.
//
// # Overview
//
// The package is a logging backend for contexts where userspace logging is
// not available: early boot, systemd generators, privileged agents that run
// before a syslog daemon does. It translates each record into the kernel log
// wire format and writes it to the device synchronously, one line per call.
// There is no buffering, batching or rotation; a record either becomes a
// ring-buffer entry immediately or is dropped.
//
// Quick start
//
//	if err := kernlog.Init(); err != nil {
//	    // no kernel log on this system, or not enough privilege;
//	    // pick another backend
//	}
//	slog.Warn("something strange happened")
//
// Callers that wire their own front-end can skip Init and use a Logger
// directly:
//
//	l, err := kernlog.New(kernlog.WithTag("myapp"), kernlog.WithLevel(kernlog.LevelInfo))
//	l.Warnf("disk low: %d MB free", free)
//
// Note the caller needs write permission on /dev/kmsg, which normal users
// usually don't have.
//
// # Wire format
//
// Each record becomes one line of the form
//
//	<P>tag[pid]: message\n
//
// where P is the kernel priority (0 most severe through 7), tag identifies
// the process, and the [pid] segment appears only in builds with pid
// reporting enabled (see below). A message holding embedded newlines is
// split: every non-empty segment is emitted as its own complete line with
// identical framing, since kernel log readers treat each newline as a record
// boundary. Lines longer than the kernel's 1024-byte limit are truncated on
// a rune boundary. Both policies are deterministic.
//
// # Pid reporting
//
// Stamping lines with the process id is a build-time capability, not runtime
// configuration: build with -tags kernlog_pid and every line carries the
// [pid] segment; without the tag the segment is omitted entirely.
package kernlog
