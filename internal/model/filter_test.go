package model

import "testing"

func testWindows() []Window {
	return []Window{
		{Handle: 0x10, PID: 100, Title: "Notepad", ClassName: "Edit", ProcessName: "notepad", ProcessPath: "/usr/bin/notepad", Bounds: [4]int{0, 0, 800, 600}, Index: 1},
		{Handle: 0x20, PID: 200, Title: "chrome - tab", ClassName: "Chrome_WidgetWin", ProcessName: "chrome", ProcessPath: "/opt/chrome/chrome", Bounds: [4]int{100, 50, 1024, 768}, Index: 2},
		{Handle: 0x30, PID: 200, Title: "Calculator", ClassName: "CalcFrame", ProcessName: "calc", ProcessPath: "/usr/bin/calc", Bounds: [4]int{300, 300, 320, 240}, Index: 3},
	}
}

func TestMatchesFilter_NoCriteria(t *testing.T) {
	for _, w := range testWindows() {
		if !MatchesFilter(w, FilterCriteria{}) {
			t.Errorf("empty criteria rejected window %d", w.Index)
		}
	}
}

func TestMatchesFilter_CaseInsensitive(t *testing.T) {
	w := Window{Title: "chrome - tab"}
	if !MatchesFilter(w, FilterCriteria{TitleContains: "CHROME"}) {
		t.Error("title filter should be case-insensitive")
	}
}

func TestMatchesFilter_Substring(t *testing.T) {
	w := Window{Title: "chrome - tab"}
	if !MatchesFilter(w, FilterCriteria{TitleContains: "ome - t"}) {
		t.Error("title filter should match unanchored substrings")
	}
}

func TestMatchesFilter_PIDExact(t *testing.T) {
	w := Window{PID: 200}
	if !MatchesFilter(w, FilterCriteria{PID: 200}) {
		t.Error("matching pid rejected")
	}
	if MatchesFilter(w, FilterCriteria{PID: 100}) {
		t.Error("non-matching pid accepted")
	}
}

func TestMatchesFilter_ANDSemantics(t *testing.T) {
	w := Window{PID: 200, Title: "chrome - tab", ProcessName: "chrome"}
	if !MatchesFilter(w, FilterCriteria{PID: 200, TitleContains: "chrome", ProcessContains: "chr"}) {
		t.Error("all criteria match, window rejected")
	}
	if MatchesFilter(w, FilterCriteria{PID: 200, TitleContains: "notepad"}) {
		t.Error("one failing criterion must reject the window")
	}
}

func TestMatchesFilter_EmptyCriterionIsAbsent(t *testing.T) {
	w := Window{Title: "anything", ClassName: ""}
	if !MatchesFilter(w, FilterCriteria{TitleContains: "", ClassContains: ""}) {
		t.Error("empty substring criteria must not reject")
	}
}

func TestMatchesFilter_PathSubstring(t *testing.T) {
	w := Window{ProcessPath: "/opt/Chrome/chrome"}
	if !MatchesFilter(w, FilterCriteria{PathContains: "chrome/"}) {
		t.Error("path filter should match case-insensitively")
	}
}

func TestFilterWindows_PreservesOrderAndIndices(t *testing.T) {
	result := FilterWindows(testWindows(), FilterCriteria{PID: 200})
	if len(result) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(result))
	}
	if result[0].Index != 2 || result[1].Index != 3 {
		t.Errorf("indices must survive filtering unchanged, got %d, %d", result[0].Index, result[1].Index)
	}
}

// Applying the same criteria twice must yield the same result set.
func TestFilterWindows_Idempotent(t *testing.T) {
	c := FilterCriteria{TitleContains: "c", PID: 200}
	once := FilterWindows(testWindows(), c)
	twice := FilterWindows(once, c)
	if len(once) != len(twice) {
		t.Fatalf("filter is not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("record %d changed on second filter", i)
		}
	}
}
