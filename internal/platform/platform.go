package platform

import "fmt"

// Handle is an opaque OS window identifier. The core never interprets its
// bits; handles are only passed back to the WindowSource and printed in hex.
type Handle uint64

// WindowSource supplies raw per-window facts from the OS. Implementations
// live in platform-specific subpackages; the snapshot builder is the only
// consumer.
//
// Every Read* call is best-effort: text reads return "" on failure, metadata
// and geometry reads report failure through their error, and none of them
// may panic on a stale handle. Only EnumerateTopLevelVisible can fail a
// snapshot build.
type WindowSource interface {
	// EnumerateTopLevelVisible returns the handles of every currently
	// visible window that has no parent, in OS enumeration order.
	EnumerateTopLevelVisible() ([]Handle, error)

	// ReadTitle returns the window title, truncated to a bounded length.
	// Truncation is silent; failure yields "".
	ReadTitle(h Handle) string

	// ReadClassName returns the window class, same contract as ReadTitle.
	ReadClassName(h Handle) string

	// ReadOwningProcessID returns the pid owning the window, 0 if unknown.
	ReadOwningProcessID(h Handle) uint32

	// ReadProcessMetadata returns the image name and executable path for
	// pid. Failure (exited process, insufficient privilege) is non-fatal
	// to callers, which fall back to empty strings.
	ReadProcessMetadata(pid uint32) (name, path string, err error)

	// ReadGeometry returns the window rectangle as [x, y, width, height]
	// in screen coordinates.
	ReadGeometry(h Handle) ([4]int, error)

	// IsStillPresent reports whether the window behind h still exists.
	IsStillPresent(h Handle) bool
}

// EnumerationError reports a failed top-level enumeration call. It is the
// only error kind that carries a raw platform code.
type EnumerationError struct {
	Code int
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("window enumeration failed: platform error 0x%08x", e.Code)
}
