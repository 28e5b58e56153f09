package roster

// MissingShifts returns the required shift ids for the date's weekday
// that no listed employee holds on that date, in rule order. A weekday
// without a rule, or a malformed date, yields nil.
func MissingShifts(date string, required RequiredShiftsByDay, employees []Employee, schedule ScheduleData) []string {
	wd := Weekday(date)
	if wd < 0 {
		return nil
	}
	ids := required[wd]
	if len(ids) == 0 {
		return nil
	}
	covered := make(map[string]bool)
	for _, emp := range employees {
		for _, id := range schedule.Entry(date, emp.ID).ShiftIDs {
			covered[id] = true
		}
	}
	var missing []string
	for _, id := range ids {
		if !covered[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// CountRestDays counts the dates on which the employee holds at least
// one of the given rest shift ids. A date contributes at most once no
// matter how many rest ids the entry carries.
func CountRestDays(employeeID string, dates []string, restIDs []string, schedule ScheduleData) int {
	isRest := make(map[string]bool, len(restIDs))
	for _, id := range restIDs {
		isRest[id] = true
	}
	count := 0
	for _, date := range dates {
		for _, id := range schedule.Entry(date, employeeID).ShiftIDs {
			if isRest[id] {
				count++
				break
			}
		}
	}
	return count
}

// RestDayBalance reports taken rest days against the required count for
// the period. Negative means a deficit.
func RestDayBalance(employeeID string, dates []string, restIDs []string, schedule ScheduleData, required int) (taken, balance int) {
	taken = CountRestDays(employeeID, dates, restIDs, schedule)
	return taken, taken - required
}
