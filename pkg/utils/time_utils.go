package utils

import "time"

// Today returns the current calendar date in server local time, truncated to
// midnight. Stored in the protein_last_update date column.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to the start of its calendar day in local time.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// SameCalendarDay reports whether a and b carry the same calendar date.
// Each value is read in its own location: a date column comes back from
// Postgres as midnight UTC, and converting that to a local zone west of UTC
// would shift it to the previous day and make every row look stale.
// The protein counter rolls over exactly when this turns false.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
