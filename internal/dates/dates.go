package dates

import (
	"time"

	"notice-precheck/internal/holidays"
)

// ParseISO parses "YYYY-MM-DD" ~10x faster than time.Parse by avoiding
// layout parsing. Returns zero time and false on invalid input.
func ParseISO(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > daysInMonth(y, m) {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// FormatISO renders a date back to YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatUK renders a date for display, e.g. "22 December 2025".
func FormatUK(t time.Time) string {
	return t.Format("02 January 2006")
}

// AddClearDays returns the first day after n clear days have elapsed. Clear
// days exclude both the given day and the resulting day, and count weekends
// and bank holidays (calendar days, not business days).
func AddClearDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n+1)
}

// AddMonths applies the statutory corresponding-date rule: the same day of
// the month n months on, clamped to the last day of the target month (so
// 30 November + 3 months is 28/29 February, not 1/2 March).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + total/12
	tm := time.Month(total%12 + 1)
	if total < 0 {
		// Go's % truncates toward zero; normalise for negative offsets.
		ty = y + (total-11)/12
		tm = time.Month((total%12+12)%12 + 1)
	}
	if dim := daysInMonth(ty, tm); d > dim {
		d = dim
	}
	return time.Date(ty, tm, d, 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay reports whether t is a weekday that is not an England &
// Wales bank holiday.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !holidays.IsBankHoliday(t)
}

// NextWorkingDay returns the first working day strictly after t.
func NextWorkingDay(t time.Time) time.Time {
	for {
		t = t.AddDate(0, 0, 1)
		if IsWorkingDay(t) {
			return t
		}
	}
}

// RollToWorkingDay returns t itself if it is a working day, otherwise the
// next working day.
func RollToWorkingDay(t time.Time) time.Time {
	if IsWorkingDay(t) {
		return t
	}
	return NextWorkingDay(t)
}

func daysInMonth(y int, m time.Month) int {
	switch m {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	}
	if y%4 == 0 && (y%100 != 0 || y%400 == 0) {
		return 29
	}
	return 28
}
