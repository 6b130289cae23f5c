package main

import (
	"github.com/ktalbot/winq/cmd"

	// Registers the platform window source for the current OS.
	_ "github.com/ktalbot/winq/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
