package engine

import (
	"math"
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// GaugeFloor is the lowest value any gauge reports, however long the
// decay has been running.
const GaugeFloor = 10

// Attributes holds the three raw gauge accumulators. Raw values are
// unbounded above; the displayed gauge is the remainder mod 100 and the
// integer quotients accumulate into the level.
type Attributes struct {
	Vitality  int `json:"vitality"`
	LightSpot int `json:"lightSpot"`
	Imprint   int `json:"imprint"`
}

// ComputeAttributes derives the three gauges from the login record, diary
// entries, and tasks, as of now. Each gauge is a monotonic growth term
// minus a time-based decay term, floored at GaugeFloor. Absent inputs
// decay from the first-login marker and naturally resolve to the floor.
func ComputeAttributes(login *store.LoginRecord, diary []store.DiaryEntry, tasks []store.Task, now time.Time) Attributes {
	today := Midnight(now)

	return Attributes{
		Vitality:  computeVitality(login, today),
		LightSpot: computeLightSpot(login, diary, today),
		Imprint:   computeImprint(login, tasks, today),
	}
}

// Vitality reflects login engagement: one point per login day plus a
// streak bonus, minus half a point per day of absence.
func computeVitality(login *store.LoginRecord, today time.Time) int {
	if login == nil {
		return GaugeFloor
	}

	bonus := 0
	switch {
	case login.ConsecutiveDays >= 30:
		bonus = 10
	case login.ConsecutiveDays >= 7:
		bonus = 5
	}
	growth := float64(login.TotalDays + bonus)

	decay := 0.0
	if last, ok := ParseDate(login.LastLogin); ok {
		decay = math.Max(0, daysSince(today, last)) * 0.5
	}

	return clampGauge(growth - decay)
}

// Light spot reflects diary engagement: two points per entry of either
// author, minus a point per day since the most recent entry, with one
// day of grace. With no entries at all it decays from the first login.
func computeLightSpot(login *store.LoginRecord, diary []store.DiaryEntry, today time.Time) int {
	growth := float64(len(diary) * 2)

	decay := 0.0
	if len(diary) > 0 {
		latest := diary[0].Date
		for _, e := range diary[1:] {
			if e.Date > latest {
				latest = e.Date
			}
		}
		if last, ok := ParseDate(latest); ok {
			decay = math.Max(0, daysSince(today, last)-1) * 1
		}
	} else if anchor, ok := firstLoginAnchor(login); ok {
		decay = math.Max(0, daysSince(today, anchor)) * 1
	}

	return clampGauge(growth - decay)
}

// Imprint reflects focus-session engagement: two points per started block
// of ten flow minutes, minus half a point per day since the most recently
// created task with flow time, with one day of grace.
func computeImprint(login *store.LoginRecord, tasks []store.Task, today time.Time) int {
	totalSeconds := 0
	var lastFlow *store.Task
	for i := range tasks {
		t := &tasks[i]
		totalSeconds += t.FlowDuration
		if t.FlowDuration > 0 && (lastFlow == nil || t.ID > lastFlow.ID) {
			lastFlow = t
		}
	}

	totalMinutes := float64(totalSeconds) / 60
	growth := math.Floor(totalMinutes/10) * 2

	decay := 0.0
	if lastFlow != nil {
		last := Midnight(lastFlow.CreatedAt())
		decay = math.Max(0, daysSince(today, last)-1) * 0.5
	} else if anchor, ok := firstLoginAnchor(login); ok {
		decay = math.Max(0, daysSince(today, anchor)) * 0.5
	}

	return clampGauge(growth - decay)
}

func firstLoginAnchor(login *store.LoginRecord) (time.Time, bool) {
	if login == nil || login.FirstLoginAt == 0 {
		return time.Time{}, false
	}
	return Midnight(time.UnixMilli(login.FirstLoginAt)), true
}

func clampGauge(v float64) int {
	return int(math.Max(GaugeFloor, math.Floor(v)))
}

// Level counts full 100-point rollovers across all three raw gauges.
func (a Attributes) Level() int {
	return a.Vitality/100 + a.LightSpot/100 + a.Imprint/100
}

// Display reduces the raw gauges to their 0-99 on-screen values.
func (a Attributes) Display() Attributes {
	return Attributes{
		Vitality:  a.Vitality % 100,
		LightSpot: a.LightSpot % 100,
		Imprint:   a.Imprint % 100,
	}
}

// Scale is the avatar scale factor for a growth level, capped at full size.
func Scale(level int) float64 {
	return math.Min(0.3+float64(level)*0.1, 1.0)
}
