package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ktalbot/winq/internal/model"
)

// fileCapture is the on-disk JSON shape of a saved snapshot.
type fileCapture struct {
	Taken   time.Time      `json:"taken"`
	Windows []model.Window `json:"windows"`
}

// Save writes the snapshot to path as JSON for later comparison.
func Save(path string, s *Snapshot) error {
	data, err := json.MarshalIndent(fileCapture{Taken: s.taken, Windows: s.windows}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a snapshot previously written by Save.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var c fileCapture
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &Snapshot{windows: c.Windows, taken: c.Taken}, nil
}
