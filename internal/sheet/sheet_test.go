package sheet

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"rosterboard/internal/roster"
)

func fixtureTypes() []roster.ShiftType {
	return []roster.ShiftType{
		{ID: "asad_m", Name: "あさドM", ShortName: "あさM"},
		{ID: "night_n", Name: "夜N", ShortName: "夜N"},
		{ID: "rest", Name: "休", ShortName: "休"},
		{ID: roster.ShiftIDTravel, Name: "出張", ShortName: "出張"},
		{ID: roster.ShiftIDProduction, Name: "MA", ShortName: "MA"},
	}
}

func fixtureEmployees() []roster.Employee {
	return []roster.Employee{
		{ID: "emp1", Name: "阿部 芳美", Role: "アナウンサー"},
		{ID: "emp2", Name: "赤木 由布子", Role: "制作"},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	schedule := roster.ScheduleData{
		"2025-12-01": {
			"emp1": {ShiftIDs: []string{"asad_m", "night_n"}},
		},
		"2025-12-04": {
			"emp1": {ShiftIDs: []string{roster.ShiftIDProduction}, Production: &roster.ProductionDetail{Time: "1300"}},
			"emp2": {ShiftIDs: []string{roster.ShiftIDTravel}, Travel: &roster.TravelDetail{Destination: "大阪"}},
		},
	}
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	if err := Export(path, 2025, time.December, fixtureEmployees(), schedule, fixtureTypes()); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(path, 2025, time.December, fixtureEmployees(), fixtureTypes())
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	e1 := got.Entry("2025-12-01", "emp1")
	if !reflect.DeepEqual(e1.ShiftIDs, []string{"asad_m", "night_n"}) {
		t.Fatalf("emp1 12-01 ids = %v", e1.ShiftIDs)
	}
	p := got.Entry("2025-12-04", "emp1")
	if !p.HasShift(roster.ShiftIDProduction) || p.Production == nil || p.Production.Time != "1300" {
		t.Fatalf("production round trip = %+v", p)
	}
	tr := got.Entry("2025-12-04", "emp2")
	if !tr.HasShift(roster.ShiftIDTravel) || tr.Travel == nil || tr.Travel.Destination != "大阪" {
		t.Fatalf("travel round trip = %+v", tr)
	}
}

func TestImportWrongMonthFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	schedule := roster.ScheduleData{
		"2025-12-01": {"emp1": {ShiftIDs: []string{"rest"}}},
	}
	if err := Export(path, 2025, time.December, fixtureEmployees(), schedule, fixtureTypes()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := Import(path, 2025, time.November, fixtureEmployees(), fixtureTypes()); err == nil {
		t.Fatal("import of mismatched month succeeded")
	}
}

func TestImportSkipsUnknownRowsAndCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	employees := append(fixtureEmployees(), roster.Employee{ID: "ghost", Name: "退職 済子", Role: ""})
	schedule := roster.ScheduleData{
		"2025-12-02": {
			"emp1":  {ShiftIDs: []string{"rest"}},
			"ghost": {ShiftIDs: []string{"night_n"}},
		},
	}
	if err := Export(path, 2025, time.December, employees, schedule, fixtureTypes()); err != nil {
		t.Fatalf("export: %v", err)
	}

	// Import against a roster that no longer has the third employee.
	got, err := Import(path, 2025, time.December, fixtureEmployees(), fixtureTypes())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.Has("2025-12-02", "ghost") {
		t.Fatal("unknown employee row imported")
	}
	if !got.Entry("2025-12-02", "emp1").HasShift("rest") {
		t.Fatal("known row dropped")
	}
}

func TestCellTextEncodings(t *testing.T) {
	entry := roster.ShiftEntry{
		ShiftIDs: []string{roster.ShiftIDTravel, "rest"},
		Travel:   &roster.TravelDetail{Destination: "名古屋"},
	}
	text := cellText(entry, fixtureTypes())
	if text != "出張(名古屋),休" {
		t.Fatalf("cell text = %q", text)
	}
	if got := cellText(roster.ShiftEntry{}, fixtureTypes()); got != "" {
		t.Fatalf("empty entry text = %q", got)
	}
}

func TestParseCellFullwidthSeparators(t *testing.T) {
	entry := parseCell("出張（大阪）、休", fixtureTypes())
	if !entry.HasShift(roster.ShiftIDTravel) || !entry.HasShift("rest") {
		t.Fatalf("ids = %v", entry.ShiftIDs)
	}
	if entry.Travel == nil || entry.Travel.Destination != "大阪" {
		t.Fatalf("travel = %+v", entry.Travel)
	}
	if strings.Contains(strings.Join(entry.ShiftIDs, ","), "（") {
		t.Fatalf("unparsed fullwidth text leaked: %v", entry.ShiftIDs)
	}
}
