package engine

import (
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// RangeKind selects one of the drill-down windows shared by the diary and
// focus-time views.
type RangeKind string

const (
	RangeToday  RangeKind = "today"
	RangeWeek   RangeKind = "week"
	RangeYear   RangeKind = "year"
	RangeCustom RangeKind = "custom"
)

// ValidRangeKind reports whether k names a known filter.
func ValidRangeKind(k RangeKind) bool {
	switch k {
	case RangeToday, RangeWeek, RangeYear, RangeCustom:
		return true
	}
	return false
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// RangeWindow resolves a filter kind to a concrete window around now.
// Weeks run Sunday through Saturday. Custom bounds are date strings,
// inclusive at full-day granularity, and swapped when reversed; a missing
// or malformed bound yields no window (ok=false), which filters to empty.
func RangeWindow(now time.Time, kind RangeKind, customStart, customEnd string) (Window, bool) {
	today := Midnight(now)

	switch kind {
	case RangeToday:
		return Window{Start: today, End: today.AddDate(0, 0, 1)}, true
	case RangeWeek:
		sunday := today.AddDate(0, 0, -int(today.Weekday()))
		return Window{Start: sunday, End: sunday.AddDate(0, 0, 7)}, true
	case RangeYear:
		jan1 := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Window{Start: jan1, End: jan1.AddDate(1, 0, 0)}, true
	case RangeCustom:
		start, okS := ParseDate(customStart)
		end, okE := ParseDate(customEnd)
		if !okS || !okE {
			return Window{}, false
		}
		if start.After(end) {
			start, end = end, start
		}
		return Window{Start: start, End: end.AddDate(0, 0, 1)}, true
	}
	return Window{}, false
}

// FilterByTime returns the items whose extracted time falls in the window.
func FilterByTime[T any](items []T, at func(T) time.Time, w Window) []T {
	var out []T
	for _, item := range items {
		if w.Contains(at(item)) {
			out = append(out, item)
		}
	}
	return out
}

// CountDiaryEntries counts diary entries whose date falls in the window.
// Entries with malformed dates are skipped.
func CountDiaryEntries(entries []store.DiaryEntry, w Window) int {
	count := 0
	for _, e := range entries {
		if d, ok := ParseDate(e.Date); ok && w.Contains(d) {
			count++
		}
	}
	return count
}

// SumFlowSeconds totals flowDuration across the tasks created in the window.
func SumFlowSeconds(tasks []store.Task, w Window) int {
	filtered := FilterByTime(tasks, func(t store.Task) time.Time { return t.CreatedAt() }, w)
	total := 0
	for _, t := range filtered {
		total += t.FlowDuration
	}
	return total
}

// SplitDuration renders a second count as whole hours plus remainder minutes.
func SplitDuration(totalSeconds int) (hours, minutes int) {
	if totalSeconds < 0 {
		return 0, 0
	}
	return totalSeconds / 3600, (totalSeconds % 3600) / 60
}
