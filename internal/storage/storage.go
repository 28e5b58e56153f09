// Package storage persists the roster dataset as JSON records under the
// app data directory. Each record loads independently: a missing or
// unreadable file falls back to the built-in default for that record
// only, so one corrupt file never takes the rest of the dataset down.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rosterboard/internal/roster"
)

const (
	scheduleFile       = "schedule.json"
	shiftTypesFile     = "shift_types.json"
	employeesFile      = "employees.json"
	dailyNotesFile     = "daily_notes.json"
	holidayCountFile   = "required_holiday_count.json"
	requiredShiftsFile = "required_shifts.json"
)

// Dataset bundles every persisted record.
type Dataset struct {
	Schedule             roster.ScheduleData
	ShiftTypes           []roster.ShiftType
	Employees            []roster.Employee
	DailyNotes           roster.DailyNotes
	RequiredHolidayCount int
	RequiredShifts       roster.RequiredShiftsByDay
}

// Store reads and writes the JSON records in one directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// loadRecord decodes one record file into out. It reports false when the
// file is absent or undecodable, leaving out untouched.
func (s *Store) loadRecord(name string, out any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *Store) saveRecord(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	return nil
}

// Load reads every record, substituting the built-in default for any
// record that is missing or unreadable.
func (s *Store) Load() Dataset {
	ds := Dataset{
		Schedule:             roster.DefaultSchedule(),
		ShiftTypes:           roster.DefaultShiftTypes(),
		Employees:            roster.DefaultEmployees(),
		DailyNotes:           roster.DailyNotes{},
		RequiredHolidayCount: roster.DefaultRequiredHolidayCount,
		RequiredShifts:       roster.DefaultRequiredShifts(),
	}
	var schedule roster.ScheduleData
	if s.loadRecord(scheduleFile, &schedule) {
		ds.Schedule = schedule
	}
	var types []roster.ShiftType
	if s.loadRecord(shiftTypesFile, &types) {
		ds.ShiftTypes = types
	}
	var employees []roster.Employee
	if s.loadRecord(employeesFile, &employees) {
		ds.Employees = employees
	}
	var notes roster.DailyNotes
	if s.loadRecord(dailyNotesFile, &notes) {
		ds.DailyNotes = notes
	}
	var count int
	if s.loadRecord(holidayCountFile, &count) {
		ds.RequiredHolidayCount = count
	}
	var required roster.RequiredShiftsByDay
	if s.loadRecord(requiredShiftsFile, &required) {
		ds.RequiredShifts = required
	}
	if ds.Schedule == nil {
		ds.Schedule = roster.ScheduleData{}
	}
	if ds.DailyNotes == nil {
		ds.DailyNotes = roster.DailyNotes{}
	}
	return ds
}

// SaveSchedule writes the schedule record.
func (s *Store) SaveSchedule(data roster.ScheduleData) error {
	return s.saveRecord(scheduleFile, data)
}

// SaveShiftTypes writes the shift type catalogue record.
func (s *Store) SaveShiftTypes(types []roster.ShiftType) error {
	return s.saveRecord(shiftTypesFile, types)
}

// SaveEmployees writes the employee roster record.
func (s *Store) SaveEmployees(employees []roster.Employee) error {
	return s.saveRecord(employeesFile, employees)
}

// SaveDailyNotes writes the daily notes record.
func (s *Store) SaveDailyNotes(notes roster.DailyNotes) error {
	return s.saveRecord(dailyNotesFile, notes)
}

// SaveRequiredHolidayCount writes the monthly rest-day target record.
func (s *Store) SaveRequiredHolidayCount(count int) error {
	return s.saveRecord(holidayCountFile, count)
}

// SaveRequiredShifts writes the per-weekday coverage rule record.
func (s *Store) SaveRequiredShifts(required roster.RequiredShiftsByDay) error {
	return s.saveRecord(requiredShiftsFile, required)
}

// SaveAll writes every record, stopping at the first failure.
func (s *Store) SaveAll(ds Dataset) error {
	if err := s.SaveSchedule(ds.Schedule); err != nil {
		return err
	}
	if err := s.SaveShiftTypes(ds.ShiftTypes); err != nil {
		return err
	}
	if err := s.SaveEmployees(ds.Employees); err != nil {
		return err
	}
	if err := s.SaveDailyNotes(ds.DailyNotes); err != nil {
		return err
	}
	if err := s.SaveRequiredHolidayCount(ds.RequiredHolidayCount); err != nil {
		return err
	}
	return s.SaveRequiredShifts(ds.RequiredShifts)
}
