//go:build !linux

package kernlog

import (
	"fmt"
	"runtime"
)

func open(path string) (*Device, error) {
	return nil, fmt.Errorf("%w: no kernel log device on %s", ErrUnavailable, runtime.GOOS)
}
