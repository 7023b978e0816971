package kernlog

import "errors"

// Sentinel errors, matched with errors.Is. Open failures are configuration
// facts (the device is absent, or the caller is unprivileged) and are never
// retried; write failures stay inside the Logger and never reach its caller.
var (
	// ErrPermissionDenied means the kernel log device refused the open for
	// lack of privilege. Expected for non-root callers.
	ErrPermissionDenied = errors.New("kernlog: permission denied opening kernel log device")

	// ErrUnavailable means the device path does not exist on this system, or
	// the platform has no kernel log device at all.
	ErrUnavailable = errors.New("kernlog: kernel log device unavailable")

	// ErrWriteFailed means a single line write did not complete.
	ErrWriteFailed = errors.New("kernlog: kernel log write failed")

	// ErrAlreadyInitialized is returned by a second Init call. Non-fatal: the
	// first registration stays active.
	ErrAlreadyInitialized = errors.New("kernlog: backend already initialized")
)
