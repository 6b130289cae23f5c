package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSelection_All(t *testing.T) {
	for _, input := range []string{"all", "ALL", "  all  "} {
		sel, err := ParseSelection(input)
		if err != nil {
			t.Fatalf("ParseSelection(%q): %v", input, err)
		}
		if !sel.All {
			t.Errorf("ParseSelection(%q) should be All", input)
		}
	}
}

func TestParseSelection_Indices(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"1", []int{1}},
		{"3,1,2", []int{1, 2, 3}},
		{"1-3", []int{1, 2, 3}},
		{"1,1,2", []int{1, 2}},
		{"1-3,2-4", []int{1, 2, 3, 4}},
		{" 2 , 5 ", []int{2, 5}},
		{"5-2", nil}, // reversed range expands to nothing, by design
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, err := ParseSelection(tt.input)
			if err != nil {
				t.Fatalf("ParseSelection(%q): %v", tt.input, err)
			}
			if sel.All {
				t.Fatalf("ParseSelection(%q) should not be All", tt.input)
			}
			if !reflect.DeepEqual(sel.Indices, tt.want) {
				t.Errorf("ParseSelection(%q) = %v, want %v", tt.input, sel.Indices, tt.want)
			}
		})
	}
}

// A reversed range is not an error and not reinterpreted as descending: the
// ascending inclusive expansion simply adds nothing.
func TestParseSelection_ReversedRangeIsEmpty(t *testing.T) {
	sel, err := ParseSelection("5-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Indices) != 0 {
		t.Errorf("expected empty selection, got %v", sel.Indices)
	}
}

func TestParseSelection_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"x", ErrInvalidIndex},
		{"1,x", ErrInvalidIndex},
		{"-3", ErrInvalidIndex}, // splits into an empty start bound
		{"1-2-3", ErrInvalidRange},
		{"1,", ErrInvalidIndex},
		{"", ErrInvalidSelectionFormat},
		{"   ", ErrInvalidSelectionFormat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSelection(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSelection(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseSelection_AllOrNothing(t *testing.T) {
	sel, err := ParseSelection("1,2,x")
	if err == nil {
		t.Fatal("expected error")
	}
	if sel.All || sel.Indices != nil {
		t.Errorf("failed parse must not return a partial selection, got %+v", sel)
	}
}

func TestParsePositionSort_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  PositionSort
	}{
		{"x1", PositionSort{X: Ascending}},
		{"x-1", PositionSort{X: Descending}},
		{"y1", PositionSort{Y: Ascending}},
		{"y-1", PositionSort{Y: Descending}},
		{"x1|y1", PositionSort{X: Ascending, Y: Ascending}},
		{"x-1|y1", PositionSort{X: Descending, Y: Ascending}},
		{"x1|y-1", PositionSort{X: Ascending, Y: Descending}},
		{"X1", PositionSort{X: Ascending}},
		{" y-1 ", PositionSort{Y: Descending}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePositionSort(tt.input)
			if err != nil {
				t.Fatalf("ParsePositionSort(%q): %v", tt.input, err)
			}
			if got == nil || *got != tt.want {
				t.Errorf("ParsePositionSort(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePositionSort_EmptyMeansNoSort(t *testing.T) {
	got, err := ParsePositionSort("")
	if err != nil {
		t.Fatalf("empty input should not error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestParsePositionSort_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"x2", ErrInvalidSortOrder},
		{"y0", ErrInvalidSortOrder},
		{"z1", ErrInvalidPositionSortFormat},
		{"x", ErrInvalidPositionSortFormat},
		{"x1|y1|x1", ErrInvalidPositionSortFormat},
		{"y1|x1", ErrInvalidPositionSortFormat}, // compound order is fixed: x first
		{"x1|z1", ErrInvalidPositionSortFormat},
		{"x1|y2", ErrInvalidSortOrder},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParsePositionSort(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParsePositionSort(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	if o, err := ParseSortOrder(1); err != nil || o != Ascending {
		t.Errorf("ParseSortOrder(1) = %v, %v", o, err)
	}
	if o, err := ParseSortOrder(-1); err != nil || o != Descending {
		t.Errorf("ParseSortOrder(-1) = %v, %v", o, err)
	}
	if o, err := ParseSortOrder(0); err != nil || o != Unsorted {
		t.Errorf("ParseSortOrder(0) = %v, %v", o, err)
	}
	if _, err := ParseSortOrder(2); !errors.Is(err, ErrInvalidSortOrder) {
		t.Errorf("ParseSortOrder(2) error = %v, want ErrInvalidSortOrder", err)
	}
}
