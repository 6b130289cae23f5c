//go:build linux

package x11

import "github.com/ktalbot/winq/internal/platform"

func init() {
	platform.NewSourceFunc = func() (platform.WindowSource, error) {
		return NewSource()
	}
}
