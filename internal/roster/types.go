// internal/roster/types.go
//
// Core data model for the roster grid. Everything here is plain data:
// the schedule is a nested map keyed by ISO date and employee id, and a
// missing key means exactly the same thing as an explicit empty entry.

package roster

// Reserved shift ids. When one of these is present in an entry's shift id
// set, the matching structured detail record becomes meaningful; when the
// id is absent, the detail must be nil.
const (
	ShiftIDProduction = "production"
	ShiftIDTravel     = "travel"
)

// ShiftType is a named, colored category of work or leave.
type ShiftType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
}

// Employee is one staff member. Order in the roster slice is display
// order and carries no other meaning.
type Employee struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	HolidayManaged  bool   `json:"isHolidayManaged"`
	ShowDivider     bool   `json:"showDivider,omitempty"`
}

// ProductionDetail holds the time/content attached to a production entry.
type ProductionDetail struct {
	Time    string `json:"time"`
	Content string `json:"content"`
}

// TravelDetail holds the destination attached to a travel entry.
type TravelDetail struct {
	Destination string `json:"destination"`
}

// ShiftEntry is the full assignment record for one employee on one date.
// An employee may hold several shift codes at once (a leave code plus a
// special assignment, say).
type ShiftEntry struct {
	ShiftIDs   []string          `json:"shiftIds"`
	Note       string            `json:"note,omitempty"`
	Production *ProductionDetail `json:"production,omitempty"`
	Travel     *TravelDetail     `json:"travel,omitempty"`
}

// IsEmpty reports whether the entry carries no information at all.
func (e ShiftEntry) IsEmpty() bool {
	return len(e.ShiftIDs) == 0 && e.Note == "" && e.Production == nil && e.Travel == nil
}

// HasShift reports whether the entry's id set contains id.
func (e ShiftEntry) HasShift(id string) bool {
	for _, s := range e.ShiftIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no mutable sub-objects.
func (e ShiftEntry) Clone() ShiftEntry {
	out := ShiftEntry{Note: e.Note}
	if len(e.ShiftIDs) > 0 {
		out.ShiftIDs = make([]string, len(e.ShiftIDs))
		copy(out.ShiftIDs, e.ShiftIDs)
	}
	if e.Production != nil {
		p := *e.Production
		out.Production = &p
	}
	if e.Travel != nil {
		t := *e.Travel
		out.Travel = &t
	}
	return out
}

// ScheduleData maps ISO date ("YYYY-MM-DD") to employee id to entry.
type ScheduleData map[string]map[string]ShiftEntry

// Entry returns the entry for (date, employee). A missing date or
// employee key yields the zero entry, which is treated everywhere as
// equivalent to "no assignment".
func (d ScheduleData) Entry(date, employeeID string) ShiftEntry {
	if byEmp, ok := d[date]; ok {
		if entry, ok := byEmp[employeeID]; ok {
			return entry
		}
	}
	return ShiftEntry{}
}

// Has reports whether an explicit entry exists for (date, employee).
func (d ScheduleData) Has(date, employeeID string) bool {
	byEmp, ok := d[date]
	if !ok {
		return false
	}
	_, ok = byEmp[employeeID]
	return ok
}

// Clone returns a deep copy of the schedule.
func (d ScheduleData) Clone() ScheduleData {
	out := make(ScheduleData, len(d))
	for date, byEmp := range d {
		day := make(map[string]ShiftEntry, len(byEmp))
		for empID, entry := range byEmp {
			day[empID] = entry.Clone()
		}
		out[date] = day
	}
	return out
}

// DailyNotes maps ISO date to a day-level annotation independent of any
// employee.
type DailyNotes map[string]string

// RequiredShiftsByDay maps weekday index (0=Sunday .. 6=Saturday) to the
// shift ids that must be covered by at least one employee on every date
// falling on that weekday.
type RequiredShiftsByDay map[int][]string

// SelectedCell identifies one grid cell.
type SelectedCell struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
}

// ProposedUpdate is one cell update in an assistant batch proposal. Note
// is a pointer so "not supplied" (keep the existing note) can be told
// apart from "set to empty".
type ProposedUpdate struct {
	Date       string   `json:"date"`
	EmployeeID string   `json:"employeeId"`
	ShiftIDs   []string `json:"shiftIds"`
	Note       *string  `json:"note,omitempty"`
}
