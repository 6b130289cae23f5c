package model

import (
	"sort"
	"strings"
)

// CompareWindows compares a and b under c, returning -1, 0, or 1. Keys run
// in fixed precedence order — PID, then case-folded title, then position —
// and a later key is only consulted when every earlier active key tied.
func CompareWindows(a, b Window, c SortCriteria) int {
	if c.PID != Unsorted {
		if r := directed(compareInt(int(a.PID), int(b.PID)), c.PID); r != 0 {
			return r
		}
	}
	if c.Title != Unsorted {
		r := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		if r = directed(r, c.Title); r != 0 {
			return r
		}
	}
	if c.Position != nil {
		if r := comparePosition(a, b, *c.Position); r != 0 {
			return r
		}
	}
	return 0
}

// comparePosition compares screen coordinates. X is the primary axis; Y is
// consulted only when X is inactive or tied on a compound sort. Each axis
// carries its own direction.
func comparePosition(a, b Window, p PositionSort) int {
	if p.X != Unsorted {
		if r := directed(compareInt(a.Bounds[0], b.Bounds[0]), p.X); r != 0 {
			return r
		}
		if p.Y == Unsorted {
			return 0
		}
	}
	if p.Y != Unsorted {
		return directed(compareInt(a.Bounds[1], b.Bounds[1]), p.Y)
	}
	return 0
}

// SortWindows stably sorts windows in place. When no key in c is active the
// slice is left untouched: "sort by nothing" is an intentional identity
// pass, not an error. The stable sort keeps equal records in snapshot
// order.
func SortWindows(windows []Window, c SortCriteria) {
	if c.IsZero() {
		return
	}
	sort.SliceStable(windows, func(i, j int) bool {
		return CompareWindows(windows[i], windows[j], c) < 0
	})
}

// directed flips an ordering for descending keys.
func directed(r int, o SortOrder) int {
	if o == Descending {
		return -r
	}
	return r
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
