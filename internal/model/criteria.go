package model

import "sort"

// SortOrder is a per-key sort direction. The zero value Unsorted means the
// key is inactive.
type SortOrder int

const (
	Unsorted   SortOrder = 0
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

// FilterCriteria describes which windows to keep. Zero values mean "no
// constraint": PID 0 matches any owner and an empty substring constrains
// nothing. Substring fields are case-insensitive and unanchored.
type FilterCriteria struct {
	PID             uint32
	TitleContains   string
	ClassContains   string
	ProcessContains string
	PathContains    string
}

// IsZero reports whether no criterion is set.
func (c FilterCriteria) IsZero() bool {
	return c == FilterCriteria{}
}

// PositionSort orders windows by screen coordinates. An axis left Unsorted
// does not participate. With both axes active, X is primary and Y breaks X
// ties, each axis with its own direction.
type PositionSort struct {
	X SortOrder
	Y SortOrder
}

// SortCriteria lists the active sort keys. Key precedence is fixed — PID,
// then title, then position — and a fully inactive value means "do not
// sort" rather than being an error.
type SortCriteria struct {
	PID      SortOrder
	Title    SortOrder
	Position *PositionSort
}

// IsZero reports whether no sort key is active.
func (c SortCriteria) IsZero() bool {
	return c.PID == Unsorted && c.Title == Unsorted && c.Position == nil
}

// Selection is a parsed window selection: either every index, or an
// explicit set of 1-based snapshot indices, sorted ascending without
// duplicates. Indices refer to Window.Index.
type Selection struct {
	All     bool
	Indices []int
}

// Contains reports whether the selection includes the given snapshot index.
func (s Selection) Contains(index int) bool {
	if s.All {
		return true
	}
	i := sort.SearchInts(s.Indices, index)
	return i < len(s.Indices) && s.Indices[i] == index
}
