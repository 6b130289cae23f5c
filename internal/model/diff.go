package model

import "fmt"

// WindowChange records a window whose metadata changed between two captures.
type WindowChange struct {
	Handle  uint64               `yaml:"handle"          json:"handle"`
	Title   string               `yaml:"title,omitempty" json:"title,omitempty"`
	Changes map[string][2]string `yaml:"changes"         json:"changes"`
}

// CaptureDiff is the result of comparing two captures window by window.
type CaptureDiff struct {
	Added          []Window       `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []Window       `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []WindowChange `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int            `yaml:"unchanged_count"   json:"unchanged_count"`
}

// DiffWindows compares two window lists using the OS handle for identity.
// A handle present in both captures is the same window even when its title,
// owner, or bounds moved; snapshot indices play no part in matching because
// they are only meaningful within a single capture.
func DiffWindows(prev, curr []Window) CaptureDiff {
	prevByHandle := make(map[uint64]Window, len(prev))
	for _, w := range prev {
		prevByHandle[w.Handle] = w
	}
	currByHandle := make(map[uint64]Window, len(curr))
	for _, w := range curr {
		currByHandle[w.Handle] = w
	}

	var diff CaptureDiff

	for _, w := range curr {
		prevW, existed := prevByHandle[w.Handle]
		if !existed {
			diff.Added = append(diff.Added, w)
			continue
		}
		changes := diffWindowProperties(prevW, w)
		if len(changes) > 0 {
			diff.Changed = append(diff.Changed, WindowChange{
				Handle:  w.Handle,
				Title:   w.Title,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	for _, w := range prev {
		if _, exists := currByHandle[w.Handle]; !exists {
			diff.Removed = append(diff.Removed, w)
		}
	}

	return diff
}

// diffWindowProperties compares the mutable properties of two records
// matched by handle: title, owning pid, and bounds.
func diffWindowProperties(prev, curr Window) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Title != curr.Title {
		diffs["title"] = [2]string{prev.Title, curr.Title}
	}
	if prev.PID != curr.PID {
		diffs["pid"] = [2]string{
			fmt.Sprintf("%d", prev.PID),
			fmt.Sprintf("%d", curr.PID),
		}
	}
	if prev.Bounds != curr.Bounds {
		diffs["bounds"] = [2]string{
			fmt.Sprintf("%v", prev.Bounds),
			fmt.Sprintf("%v", curr.Bounds),
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
