package model

import "errors"

// Validation errors returned by the selection and position-sort parsers.
// Parsing is all-or-nothing: the first error aborts the whole parse and no
// partial value is returned.
var (
	ErrInvalidSelectionFormat    = errors.New("invalid selection format: use 'all', '1,2,3', or '1-3'")
	ErrInvalidPositionSortFormat = errors.New("invalid position sort format: use 'x1', 'y-1', or 'x1|y1'")
	ErrInvalidRange              = errors.New("invalid range format")
	ErrInvalidIndex              = errors.New("invalid index")
	ErrInvalidSortOrder          = errors.New("sort order must be 1 (ascending) or -1 (descending)")
)
