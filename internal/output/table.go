package output

import (
	"fmt"
	"io"

	"github.com/ktalbot/winq/internal/model"
)

// WriteTable writes windows as a fixed-width index table. Existing tooling
// parses this layout, so the header, separator, and row format must not
// change.
func WriteTable(w io.Writer, windows []model.Window) {
	fmt.Fprintln(w, "Index | Handle      | PID    | Position    | Title")
	fmt.Fprintln(w, "------|-------------|--------|-------------|-------------------")
	for _, win := range windows {
		fmt.Fprintf(w, "%5d | 0x%08x | %6d | %4d,%4d     | %s\n",
			win.Index, win.Handle, win.PID, win.Bounds[0], win.Bounds[1], win.Title)
	}
}

// WriteCompact writes one line per window:
//
//	[<index>] 0x<handle> (PID: <pid>) @ (<x>,<y>) - <title>
func WriteCompact(w io.Writer, windows []model.Window) {
	for _, win := range windows {
		fmt.Fprintf(w, "[%d] 0x%x (PID: %d) @ (%d,%d) - %s\n",
			win.Index, win.Handle, win.PID, win.Bounds[0], win.Bounds[1], win.Title)
	}
}

// WriteDetail writes the full per-window block with a trailing rule.
func WriteDetail(w io.Writer, windows []model.Window) {
	for _, win := range windows {
		fmt.Fprintf(w, "Index: %d\n", win.Index)
		fmt.Fprintf(w, "Window Handle: 0x%x\n", win.Handle)
		fmt.Fprintf(w, "Process ID: %d\n", win.PID)
		fmt.Fprintf(w, "Title: %s\n", win.Title)
		fmt.Fprintf(w, "Class Name: %s\n", win.ClassName)
		fmt.Fprintf(w, "Process Name: %s\n", win.ProcessName)
		fmt.Fprintf(w, "Process File: %s\n", win.ProcessPath)
		fmt.Fprintf(w, "Position: (%d, %d) Size: %dx%d\n",
			win.Bounds[0], win.Bounds[1], win.Bounds[2], win.Bounds[3])
		fmt.Fprintln(w, "----------------------------------------")
	}
}
