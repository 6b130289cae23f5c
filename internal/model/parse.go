package model

import (
	"sort"
	"strconv"
	"strings"
)

// ParseSelection parses a selection string: "all", or a comma-separated
// list of 1-based indices and inclusive ranges like "1-3". Surrounding
// whitespace is trimmed and matching is case-insensitive.
//
// A range whose start exceeds its end expands to nothing. That is the
// direct consequence of the ascending inclusive expansion and is kept as
// documented behavior — "5-2" selects no windows rather than reversing.
// The resulting indices are deduplicated and sorted ascending.
func ParseSelection(s string) (Selection, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Selection{}, ErrInvalidSelectionFormat
	}
	if s == "all" {
		return Selection{All: true}, nil
	}

	var indices []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			bounds := strings.Split(part, "-")
			if len(bounds) != 2 {
				return Selection{}, ErrInvalidRange
			}
			start, err := parseIndex(strings.TrimSpace(bounds[0]))
			if err != nil {
				return Selection{}, err
			}
			end, err := parseIndex(strings.TrimSpace(bounds[1]))
			if err != nil {
				return Selection{}, err
			}
			for i := start; i <= end; i++ {
				indices = append(indices, i)
			}
			continue
		}
		index, err := parseIndex(part)
		if err != nil {
			return Selection{}, err
		}
		indices = append(indices, index)
	}

	sort.Ints(indices)
	var deduped []int
	for _, n := range indices {
		if len(deduped) == 0 || deduped[len(deduped)-1] != n {
			deduped = append(deduped, n)
		}
	}
	return Selection{Indices: deduped}, nil
}

// parseIndex parses a non-negative integer index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidIndex
	}
	return n, nil
}

// ParsePositionSort parses a position sort directive: "x1" or "y-1" for a
// single axis, or a compound "x1|y1" where the first part must name X and
// the second Y. An empty string means no position sort and is not an
// error.
func ParsePositionSort(s string) (*PositionSort, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}

	if strings.Contains(s, "|") {
		parts := strings.Split(s, "|")
		if len(parts) != 2 {
			return nil, ErrInvalidPositionSortFormat
		}
		x, err := parseAxisOrder(strings.TrimSpace(parts[0]), 'x')
		if err != nil {
			return nil, err
		}
		y, err := parseAxisOrder(strings.TrimSpace(parts[1]), 'y')
		if err != nil {
			return nil, err
		}
		return &PositionSort{X: x, Y: y}, nil
	}

	switch {
	case strings.HasPrefix(s, "x"):
		order, err := parseAxisOrder(s, 'x')
		if err != nil {
			return nil, err
		}
		return &PositionSort{X: order}, nil
	case strings.HasPrefix(s, "y"):
		order, err := parseAxisOrder(s, 'y')
		if err != nil {
			return nil, err
		}
		return &PositionSort{Y: order}, nil
	}
	return nil, ErrInvalidPositionSortFormat
}

// parseAxisOrder parses a single axis directive like "x1" or "y-1".
func parseAxisOrder(part string, axis byte) (SortOrder, error) {
	if len(part) < 2 || part[0] != axis {
		return Unsorted, ErrInvalidPositionSortFormat
	}
	switch part[1:] {
	case "1":
		return Ascending, nil
	case "-1":
		return Descending, nil
	}
	return Unsorted, ErrInvalidSortOrder
}

// ParseSortOrder converts a numeric direction flag: 1 ascending,
// -1 descending, 0 inactive.
func ParseSortOrder(n int) (SortOrder, error) {
	switch n {
	case 0:
		return Unsorted, nil
	case 1:
		return Ascending, nil
	case -1:
		return Descending, nil
	}
	return Unsorted, ErrInvalidSortOrder
}
