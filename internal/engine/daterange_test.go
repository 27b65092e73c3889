package engine

import (
	"testing"
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// A Tuesday.
var rangeNow = time.Date(2026, 9, 1, 10, 15, 0, 0, time.Local)

func TestRangeWindowToday(t *testing.T) {
	w, ok := RangeWindow(rangeNow, RangeToday, "", "")
	if !ok {
		t.Fatal("RangeWindow today: not ok")
	}
	if !w.Contains(rangeNow) {
		t.Error("today window should contain now")
	}
	if w.Contains(rangeNow.AddDate(0, 0, -1)) {
		t.Error("today window should not contain yesterday")
	}
}

func TestRangeWindowWeek(t *testing.T) {
	w, ok := RangeWindow(rangeNow, RangeWeek, "", "")
	if !ok {
		t.Fatal("RangeWindow week: not ok")
	}

	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	if !w.Start.Equal(sunday) {
		t.Errorf("week start = %v, want %v", w.Start, sunday)
	}

	saturday := time.Date(2026, 9, 5, 23, 0, 0, 0, time.Local)
	if !w.Contains(saturday) {
		t.Error("week window should contain Saturday")
	}
	nextSunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
	if w.Contains(nextSunday) {
		t.Error("week window should end before the next Sunday")
	}
}

func TestRangeWindowYear(t *testing.T) {
	w, ok := RangeWindow(rangeNow, RangeYear, "", "")
	if !ok {
		t.Fatal("RangeWindow year: not ok")
	}
	if !w.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("year window should contain Jan 1")
	}
	if w.Contains(time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local)) {
		t.Error("year window should not contain the previous year")
	}
}

func TestRangeWindowCustomSwapIdempotence(t *testing.T) {
	forward, ok1 := RangeWindow(rangeNow, RangeCustom, "2026-08-01", "2026-08-15")
	reversed, ok2 := RangeWindow(rangeNow, RangeCustom, "2026-08-15", "2026-08-01")
	if !ok1 || !ok2 {
		t.Fatal("custom windows should resolve")
	}
	if !forward.Start.Equal(reversed.Start) || !forward.End.Equal(reversed.End) {
		t.Errorf("swapped bounds differ: %+v vs %+v", forward, reversed)
	}

	// Inclusive at both day endpoints.
	if !forward.Contains(time.Date(2026, 8, 15, 23, 59, 59, 0, time.Local)) {
		t.Error("custom window should include the whole end day")
	}
	if !forward.Contains(time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("custom window should include the start day midnight")
	}
}

func TestRangeWindowCustomMissingBound(t *testing.T) {
	tests := []struct{ start, end string }{
		{"", ""},
		{"2026-08-01", ""},
		{"", "2026-08-15"},
		{"garbage", "2026-08-15"},
	}
	for _, tt := range tests {
		if _, ok := RangeWindow(rangeNow, RangeCustom, tt.start, tt.end); ok {
			t.Errorf("RangeWindow(custom, %q, %q) ok, want empty", tt.start, tt.end)
		}
	}
}

func TestCountDiaryEntries(t *testing.T) {
	entries := []store.DiaryEntry{
		{Date: "2026-09-01"},
		{Date: "2026-09-01"},
		{Date: "2026-08-31"},
		{Date: "bogus"},
	}

	w, _ := RangeWindow(rangeNow, RangeToday, "", "")
	if got := CountDiaryEntries(entries, w); got != 2 {
		t.Errorf("today count = %d, want 2", got)
	}

	w, _ = RangeWindow(rangeNow, RangeWeek, "", "")
	if got := CountDiaryEntries(entries, w); got != 3 {
		t.Errorf("week count = %d, want 3", got)
	}
}

func TestSumFlowSeconds(t *testing.T) {
	today := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	lastYear := time.Date(2025, 9, 1, 9, 0, 0, 0, time.Local)

	tasks := []store.Task{
		{ID: today.UnixMilli(), FlowDuration: 3700},
		{ID: today.UnixMilli() + 1, FlowDuration: 200},
		{ID: lastYear.UnixMilli(), FlowDuration: 9999},
	}

	w, _ := RangeWindow(rangeNow, RangeToday, "", "")
	if got := SumFlowSeconds(tasks, w); got != 3900 {
		t.Errorf("today flow = %d, want 3900", got)
	}

	w, _ = RangeWindow(rangeNow, RangeYear, "", "")
	if got := SumFlowSeconds(tasks, w); got != 3900 {
		t.Errorf("year flow = %d, want 3900", got)
	}
}

func TestSplitDuration(t *testing.T) {
	tests := []struct {
		name        string
		in          int
		hours, mins int
	}{
		{"zero", 0, 0, 0},
		{"under a minute", 59, 0, 0},
		{"one hour five", 3900, 1, 5},
		{"negative", -5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := SplitDuration(tt.in)
			if h != tt.hours || m != tt.mins {
				t.Errorf("SplitDuration(%d) = %d, %d, want %d, %d", tt.in, h, m, tt.hours, tt.mins)
			}
		})
	}
}
