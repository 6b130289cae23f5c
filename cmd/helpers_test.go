package cmd

import (
	"errors"
	"testing"

	"github.com/ktalbot/winq/internal/model"
)

func TestFilterFromFlags(t *testing.T) {
	flags := listCmd.Flags()
	for name, value := range map[string]string{
		"pid":     "1234",
		"title":   "chrome",
		"class":   "Navigator",
		"process": "firefox",
		"path":    "/usr/bin",
	} {
		if err := flags.Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	defer func() {
		for _, name := range []string{"pid", "title", "class", "process", "path"} {
			f := flags.Lookup(name)
			f.Value.Set(f.DefValue)
		}
	}()

	got := filterFromFlags(listCmd)
	want := model.FilterCriteria{
		PID:             1234,
		TitleContains:   "chrome",
		ClassContains:   "Navigator",
		ProcessContains: "firefox",
		PathContains:    "/usr/bin",
	}
	if got != want {
		t.Errorf("filterFromFlags = %+v, want %+v", got, want)
	}
}

func TestSortFromFlags(t *testing.T) {
	flags := listCmd.Flags()
	if err := flags.Set("sort-pid", "1"); err != nil {
		t.Fatal(err)
	}
	if err := flags.Set("sort-pos", "x1|y-1"); err != nil {
		t.Fatal(err)
	}
	defer func() {
		for _, name := range []string{"sort-pid", "sort-title", "sort-pos"} {
			f := flags.Lookup(name)
			f.Value.Set(f.DefValue)
		}
	}()

	criteria, err := sortFromFlags(listCmd)
	if err != nil {
		t.Fatalf("sortFromFlags: %v", err)
	}
	if criteria.PID != model.Ascending {
		t.Errorf("PID order = %d, want ascending", criteria.PID)
	}
	if criteria.Title != model.Unsorted {
		t.Errorf("Title order = %d, want unsorted", criteria.Title)
	}
	if criteria.Position == nil || criteria.Position.X != model.Ascending || criteria.Position.Y != model.Descending {
		t.Errorf("Position = %+v, want x ascending, y descending", criteria.Position)
	}
}

func TestSortFromFlags_RejectsBadOrder(t *testing.T) {
	flags := listCmd.Flags()
	if err := flags.Set("sort-pid", "2"); err != nil {
		t.Fatal(err)
	}
	defer func() {
		f := flags.Lookup("sort-pid")
		f.Value.Set(f.DefValue)
	}()

	if _, err := sortFromFlags(listCmd); !errors.Is(err, model.ErrInvalidSortOrder) {
		t.Errorf("err = %v, want ErrInvalidSortOrder", err)
	}
}
