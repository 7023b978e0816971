//go:build linux

package kernlog

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// open opens path write-only with the flag set kernel log writers use:
// close-on-exec, no controlling terminal, and non-blocking so a full ring
// buffer surfaces as a write error instead of stalling the caller forever.
func open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|unix.O_CLOEXEC|unix.O_NONBLOCK|unix.O_NOCTTY, 0o600)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Device{f: f}, nil
}
