package roster

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" string. Malformed input yields
// the zero time and false.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time as an ISO "YYYY-MM-DD" string.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthDates returns every date of the given month in order.
func MonthDates(year int, month time.Month) []string {
	cur := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for cur.Month() == month {
		dates = append(dates, FormatDate(cur))
		cur = cur.AddDate(0, 0, 1)
	}
	return dates
}

// DatesBetween returns every date in the inclusive interval spanned by a
// and b, in ascending order regardless of the order of the arguments.
// If either date is malformed it falls back to the single valid date, or
// nil when both are malformed.
func DatesBetween(a, b string) []string {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	switch {
	case !okA && !okB:
		return nil
	case !okA:
		return []string{b}
	case !okB:
		return []string{a}
	}
	if tb.Before(ta) {
		ta, tb = tb, ta
	}
	var dates []string
	for cur := ta; !cur.After(tb); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(cur))
	}
	return dates
}

// Weekday returns the weekday index (0=Sunday .. 6=Saturday) for an ISO
// date, or -1 for malformed input.
func Weekday(date string) int {
	t, ok := ParseDate(date)
	if !ok {
		return -1
	}
	return int(t.Weekday())
}
