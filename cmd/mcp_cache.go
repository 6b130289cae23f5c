package cmd

import (
	"sync"
	"time"

	"github.com/ktalbot/winq/internal/snapshot"
)

// mcpSnapshotCache keeps the latest snapshot for a TTL so bursts of tool
// calls don't re-enumerate the desktop on every request.
type mcpSnapshotCache struct {
	mu    sync.Mutex
	snap  *snapshot.Snapshot
	built time.Time
	ttl   time.Duration
}

// newMCPSnapshotCache creates a cache. A ttl of 0 disables caching and
// every call rebuilds.
func newMCPSnapshotCache(ttl time.Duration) *mcpSnapshotCache {
	return &mcpSnapshotCache{ttl: ttl}
}

// snapshot returns the cached snapshot if still fresh, otherwise rebuilds.
func (c *mcpSnapshotCache) snapshot(builder *snapshot.Builder) (*snapshot.Snapshot, error) {
	if c.ttl == 0 {
		return builder.Rebuild()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap != nil && time.Since(c.built) < c.ttl {
		return c.snap, nil
	}

	snap, err := builder.Rebuild()
	if err != nil {
		c.snap = nil
		return nil, err
	}
	c.snap = snap
	c.built = time.Now()
	return snap, nil
}
