package engine

import (
	"math"
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// RecordLogin applies one login event to the stored record and returns the
// updated record for persistence.
//
// Dates are compared at day granularity: a same-day login leaves both
// counters untouched, a login exactly one day after the stored one extends
// the streak, and any longer gap resets it to 1. totalDays counts every
// distinct login day. A nil or unreadable previous record is treated as a
// first-time login.
func RecordLogin(now time.Time, prev *store.LoginRecord) store.LoginRecord {
	today := Midnight(now)

	rec := store.LoginRecord{
		LastLogin:       DateString(today),
		ConsecutiveDays: 1,
		TotalDays:       1,
		FirstLoginAt:    now.UnixMilli(),
	}
	if prev == nil {
		return rec
	}

	rec.FirstLoginAt = prev.FirstLoginAt
	if rec.FirstLoginAt == 0 {
		rec.FirstLoginAt = now.UnixMilli()
	}

	last, ok := ParseDate(prev.LastLogin)
	if !ok {
		// Malformed stored state behaves as a first login.
		return rec
	}

	rec.ConsecutiveDays = prev.ConsecutiveDays
	rec.TotalDays = prev.TotalDays

	if today.Equal(last) {
		return rec
	}

	diffDays := int(math.Ceil(daysSince(today, last)))
	if diffDays == 1 {
		rec.ConsecutiveDays++
	} else if diffDays > 1 {
		rec.ConsecutiveDays = 1
	}
	rec.TotalDays++
	return rec
}
