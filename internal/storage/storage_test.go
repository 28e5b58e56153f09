package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rosterboard/internal/roster"
)

func TestLoadEmptyDirUsesDefaults(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ds := store.Load()
	if ds.RequiredHolidayCount != roster.DefaultRequiredHolidayCount {
		t.Fatalf("holiday count = %d, want %d", ds.RequiredHolidayCount, roster.DefaultRequiredHolidayCount)
	}
	if len(ds.Employees) != len(roster.DefaultEmployees()) {
		t.Fatalf("employees = %d, want default roster", len(ds.Employees))
	}
	if ds.DailyNotes == nil {
		t.Fatal("daily notes nil, want empty map")
	}
}

func TestSaveAllRoundTrips(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	want := Dataset{
		Schedule: roster.ScheduleData{
			"2025-12-01": {"emp1": {ShiftIDs: []string{"rest"}, Note: "note"}},
		},
		ShiftTypes:           []roster.ShiftType{{ID: "rest", Name: "休", ShortName: "休"}},
		Employees:            []roster.Employee{{ID: "emp1", Name: "阿部 芳美", HolidayManaged: true}},
		DailyNotes:           roster.DailyNotes{"2025-12-01": "放送休止"},
		RequiredHolidayCount: 7,
		RequiredShifts:       roster.RequiredShiftsByDay{1: {"rest"}},
	}
	if err := store.SaveAll(want); err != nil {
		t.Fatalf("save all: %v", err)
	}
	got := store.Load()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestCorruptRecordFallsBackAlone(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.SaveRequiredHolidayCount(5); err != nil {
		t.Fatalf("save count: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "employees.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt record: %v", err)
	}
	ds := store.Load()
	if ds.RequiredHolidayCount != 5 {
		t.Fatalf("holiday count = %d, want the saved 5", ds.RequiredHolidayCount)
	}
	if len(ds.Employees) != len(roster.DefaultEmployees()) {
		t.Fatal("corrupt employees record did not fall back to defaults")
	}
}
