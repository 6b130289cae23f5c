package model

import "strings"

// MatchesFilter reports whether w satisfies every criterion present in c.
// Criteria combine with AND. An empty substring criterion is treated as
// absent, so it never rejects a window.
func MatchesFilter(w Window, c FilterCriteria) bool {
	if c.PID != 0 && w.PID != c.PID {
		return false
	}
	if !containsFold(w.Title, c.TitleContains) {
		return false
	}
	if !containsFold(w.ClassName, c.ClassContains) {
		return false
	}
	if !containsFold(w.ProcessName, c.ProcessContains) {
		return false
	}
	if !containsFold(w.ProcessPath, c.PathContains) {
		return false
	}
	return true
}

// FilterWindows returns the windows matching c, preserving input order.
func FilterWindows(windows []Window, c FilterCriteria) []Window {
	var result []Window
	for _, w := range windows {
		if MatchesFilter(w, c) {
			result = append(result, w)
		}
	}
	return result
}

// containsFold reports whether s contains substr, case-insensitively.
// An empty substr matches everything.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
