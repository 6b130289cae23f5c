package platform

import (
	"fmt"
	"runtime"
)

// ErrUnsupported is returned on platforms with no registered window source.
var ErrUnsupported = fmt.Errorf("winq is not supported on %s/%s; supported: linux (X11)", runtime.GOOS, runtime.GOARCH)

// NewSourceFunc is set by platform-specific packages via init().
// See internal/platform/x11 for the Linux registration.
var NewSourceFunc func() (WindowSource, error)

// NewSource returns a WindowSource for the current OS.
func NewSource() (WindowSource, error) {
	if NewSourceFunc == nil {
		return nil, ErrUnsupported
	}
	return NewSourceFunc()
}
