package kernlog

import (
	"fmt"
	"os"
	"sync"
)

// DevicePath is the fixed kernel log device target. It is not configurable
// at runtime; device presence and permission are configuration facts of the
// host, not knobs.
const DevicePath = "/dev/kmsg"

// Device owns the process's write-only handle to the kernel log device. One
// Device is shared by every caller; Write serializes internally so lines
// from concurrent callers never interleave, even where the OS does not
// guarantee atomicity for the write size.
type Device struct {
	mu sync.Mutex
	f  *os.File
}

// Open opens the kernel log device once. It fails with ErrPermissionDenied
// for unprivileged callers and ErrUnavailable when the device path does not
// exist on this system. Neither is retried.
func Open() (*Device, error) {
	return open(DevicePath)
}

// Write appends one encoded line to the kernel ring buffer as a single
// write. The entry is visible to kernel log readers as soon as Write
// returns. Short or refused writes surface as ErrWriteFailed; there is no
// buffering or retry at this layer.
func (d *Device) Write(line []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, err := d.f.Write(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if n != len(line) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrWriteFailed, n, len(line))
	}
	return nil
}

// Close releases the device handle. Best effort: correctness never depends
// on it, the OS reclaims the handle at process exit.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.f.Close()
}
