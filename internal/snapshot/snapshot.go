// Package snapshot captures one-shot, indexed snapshots of the desktop's
// top-level windows and answers filter/sort/select queries over them.
package snapshot

import (
	"time"

	"github.com/ktalbot/winq/internal/model"
)

// Snapshot is the immutable, indexed result of one enumeration pass.
// Indices run 1..N in enumeration order and never change; a rebuild
// produces an entirely new Snapshot. A published Snapshot is safe for
// concurrent readers because nothing mutates it in place.
type Snapshot struct {
	windows []model.Window
	taken   time.Time
}

// Taken returns when the snapshot was captured.
func (s *Snapshot) Taken() time.Time {
	return s.taken
}

// Len returns the number of captured windows.
func (s *Snapshot) Len() int {
	return len(s.windows)
}

// Windows returns a copy of every record in index order.
func (s *Snapshot) Windows() []model.Window {
	out := make([]model.Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// ByIndex returns the record whose immutable index is i.
func (s *Snapshot) ByIndex(i int) (model.Window, bool) {
	for _, w := range s.windows {
		if w.Index == i {
			return w, true
		}
	}
	return model.Window{}, false
}

// Filter returns the records matching c, in snapshot order.
func (s *Snapshot) Filter(c model.FilterCriteria) []model.Window {
	return model.FilterWindows(s.windows, c)
}

// Query runs the pipeline in its fixed order: filter against the whole
// snapshot, sort the filtered records, then select. Selection is keyed by
// each record's immutable Index — selecting index k returns the record
// whose Index == k provided it survived the filter; an index that was
// filtered out selects nothing, regardless of sort order. A nil selection
// keeps everything.
func (s *Snapshot) Query(c model.FilterCriteria, sc model.SortCriteria, sel *model.Selection) []model.Window {
	result := model.FilterWindows(s.windows, c)
	model.SortWindows(result, sc)
	if sel == nil || sel.All {
		return result
	}
	var selected []model.Window
	for _, w := range result {
		if sel.Contains(w.Index) {
			selected = append(selected, w)
		}
	}
	return selected
}
