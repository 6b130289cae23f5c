//go:build linux

package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/ktalbot/winq/internal/platform"
)

// Handle aliases the platform handle type for readability inside this package.
type Handle = platform.Handle

// maxTextLen bounds title and class reads; longer values are silently
// truncated, mirroring the fixed-size text buffers of native window APIs.
const maxTextLen = 256

// Source implements platform.WindowSource over an X11 connection, reading
// the window manager's EWMH client list.
type Source struct {
	conn *Connection
}

var _ platform.WindowSource = (*Source)(nil)

// NewSource opens a fresh X11 connection.
func NewSource() (*Source, error) {
	conn, err := NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &Source{conn: conn}, nil
}

// Close disconnects from the X server.
func (s *Source) Close() {
	s.conn.Close()
}

// EnumerateTopLevelVisible returns every viewable window managed by the
// window manager. _NET_CLIENT_LIST contains only parentless client windows;
// unmapped (hidden or minimized-to-nothing) ones are dropped by map state.
// When the WM does not publish a client list, the root window's direct
// children are walked instead.
func (s *Source) EnumerateTopLevelVisible() ([]platform.Handle, error) {
	clients, err := ewmh.ClientListGet(s.conn.XUtil)
	if err != nil {
		clients, err = s.rootChildren()
		if err != nil {
			return nil, &platform.EnumerationError{Code: errorCode(err)}
		}
	}

	var handles []platform.Handle
	for _, win := range clients {
		attrs, err := xproto.GetWindowAttributes(s.conn.XUtil.Conn(), win).Reply()
		if err != nil || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		handles = append(handles, platform.Handle(win))
	}
	return handles, nil
}

// rootChildren lists the direct children of the root window.
func (s *Source) rootChildren() ([]xproto.Window, error) {
	tree, err := xproto.QueryTree(s.conn.XUtil.Conn(), s.conn.Root).Reply()
	if err != nil {
		return nil, err
	}
	return tree.Children, nil
}

// ReadTitle returns the window title, preferring _NET_WM_NAME over the
// legacy WM_NAME property.
func (s *Source) ReadTitle(h Handle) string {
	win := xproto.Window(h)
	name, err := ewmh.WmNameGet(s.conn.XUtil, win)
	if err != nil || name == "" {
		name, err = icccm.WmNameGet(s.conn.XUtil, win)
		if err != nil {
			return ""
		}
	}
	return truncate(name)
}

// ReadClassName returns the WM_CLASS class component.
func (s *Source) ReadClassName(h Handle) string {
	class, err := icccm.WmClassGet(s.conn.XUtil, xproto.Window(h))
	if err != nil || class == nil {
		return ""
	}
	return truncate(class.Class)
}

// ReadOwningProcessID returns _NET_WM_PID, 0 when the window does not
// advertise its owner.
func (s *Source) ReadOwningProcessID(h Handle) uint32 {
	pid, err := ewmh.WmPidGet(s.conn.XUtil, xproto.Window(h))
	if err != nil {
		return 0
	}
	return uint32(pid)
}

// ReadGeometry returns the window rectangle including WM decorations, in
// screen coordinates.
func (s *Source) ReadGeometry(h Handle) ([4]int, error) {
	win := xwindow.New(s.conn.XUtil, xproto.Window(h))
	geom, err := win.DecorGeometry()
	if err != nil {
		return [4]int{}, err
	}
	return [4]int{geom.X(), geom.Y(), geom.Width(), geom.Height()}, nil
}

// IsStillPresent reports whether the window still exists on the server.
func (s *Source) IsStillPresent(h Handle) bool {
	_, err := xproto.GetWindowAttributes(s.conn.XUtil.Conn(), xproto.Window(h)).Reply()
	return err == nil
}

// errorCode extracts the numeric X error code when the server reported one.
func errorCode(err error) int {
	var xerr xgb.Error
	if errors.As(err, &xerr) {
		return int(xerr.BadId())
	}
	return 0
}

// truncate caps s at maxTextLen runes. Truncation is not an error.
func truncate(s string) string {
	if len(s) <= maxTextLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxTextLen {
		return s
	}
	return string(runes[:maxTextLen])
}
