// Package x11 provides the Linux window source backed by the X11 protocol
// via xgb/xgbutil. On other platforms the package compiles as an empty stub
// and registers nothing.
package x11
