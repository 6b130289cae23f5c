package snapshot

import (
	"sync"
	"time"

	"github.com/ktalbot/winq/internal/model"
	"github.com/ktalbot/winq/internal/platform"
)

// Builder captures snapshots from a WindowSource. Builds are serialized:
// the source's enumeration may carry per-call state, so only one build runs
// at a time. The current snapshot reference swaps under the same lock, so
// readers always see either the old complete snapshot or the new one.
type Builder struct {
	source platform.WindowSource

	mu   sync.Mutex
	snap *Snapshot
}

// NewBuilder returns a Builder reading from source. The snapshot is empty
// until the first Rebuild.
func NewBuilder(source platform.WindowSource) *Builder {
	return &Builder{source: source, snap: &Snapshot{}}
}

// Current returns the most recently built snapshot.
func (b *Builder) Current() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

// Rebuild discards the current snapshot and captures a new one. Per-window
// metadata failures are recovered locally — the window is kept with empty
// or zero fields, never dropped. Only a failure of the enumeration call
// itself aborts the build, and then the snapshot is left empty rather than
// falling back to the stale one.
func (b *Builder) Rebuild() (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.snap = &Snapshot{taken: time.Now()}

	handles, err := b.source.EnumerateTopLevelVisible()
	if err != nil {
		return b.snap, err
	}

	windows := make([]model.Window, 0, len(handles))
	processCache := make(map[uint32][2]string)
	for _, h := range handles {
		windows = append(windows, b.collect(h, processCache))
	}
	for i := range windows {
		windows[i].Index = i + 1
	}

	b.snap = &Snapshot{windows: windows, taken: time.Now()}
	return b.snap, nil
}

// collect gathers best-effort metadata for one window. processCache bounds
// the work to one process-metadata query per unique pid per build; failed
// lookups are cached too, as empty metadata.
func (b *Builder) collect(h platform.Handle, processCache map[uint32][2]string) model.Window {
	w := model.Window{
		Handle:    uint64(h),
		Title:     b.source.ReadTitle(h),
		ClassName: b.source.ReadClassName(h),
	}

	w.PID = b.source.ReadOwningProcessID(h)
	if w.PID != 0 {
		meta, ok := processCache[w.PID]
		if !ok {
			name, path, err := b.source.ReadProcessMetadata(w.PID)
			if err != nil {
				name, path = "", ""
			}
			meta = [2]string{name, path}
			processCache[w.PID] = meta
		}
		w.ProcessName, w.ProcessPath = meta[0], meta[1]
	}

	if bounds, err := b.source.ReadGeometry(h); err == nil {
		w.Bounds = bounds
	}
	return w
}

// FindByTitle returns current-snapshot windows whose title contains substr,
// case-insensitively.
func (b *Builder) FindByTitle(substr string) []model.Window {
	return b.Current().Filter(model.FilterCriteria{TitleContains: substr})
}

// StillPresent reports whether the window behind w still exists on screen.
func (b *Builder) StillPresent(w model.Window) bool {
	return b.source.IsStillPresent(platform.Handle(w.Handle))
}
