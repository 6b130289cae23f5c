package model

// Window represents one top-level window captured in a snapshot.
//
// Index is assigned once by the snapshot builder — 1-based, in enumeration
// order — and never changes afterwards. Filtering and sorting only decide
// which records appear and in what order; selection strings always refer to
// this field, not to positions in a result slice.
type Window struct {
	Handle      uint64 `yaml:"handle"          json:"handle"`
	PID         uint32 `yaml:"pid"             json:"pid"` // 0 = owning process unknown
	Title       string `yaml:"title"           json:"title"`
	ClassName   string `yaml:"class"           json:"class"`
	ProcessName string `yaml:"process"         json:"process"`
	ProcessPath string `yaml:"path,omitempty"  json:"path,omitempty"`
	Bounds      [4]int `yaml:"bounds"          json:"bounds"` // [x, y, width, height]
	Index       int    `yaml:"index"           json:"index"`
}
