package roster

import (
	"reflect"
	"testing"
)

func clipFixture() *Store {
	return NewStore(ScheduleData{
		"2025-12-01": {
			"emp1": {
				ShiftIDs:   []string{ShiftIDProduction},
				Note:       "early call",
				Production: &ProductionDetail{Time: "0900", Content: "収録"},
			},
		},
		"2025-12-02": {
			"emp2": {ShiftIDs: []string{"night_n"}, Note: "existing"},
		},
	})
}

func TestPrimaryCellSmallestDateThenEmployee(t *testing.T) {
	cells := []SelectedCell{
		{EmployeeID: "emp3", Date: "2025-12-02"},
		{EmployeeID: "emp9", Date: "2025-12-01"},
		{EmployeeID: "emp2", Date: "2025-12-01"},
	}
	got, ok := primaryCell(cells)
	if !ok {
		t.Fatal("primaryCell reported empty selection")
	}
	want := SelectedCell{EmployeeID: "emp2", Date: "2025-12-01"}
	if got != want {
		t.Fatalf("primary = %v, want %v", got, want)
	}
}

func TestPasteAllReplacesTarget(t *testing.T) {
	store := clipFixture()
	var clip Clipboard
	clip.Capture(store.Data(), cellsFor("emp1", "2025-12-01"), CopyAll)
	clip.Paste(store, cellsFor("emp2", "2025-12-02"))

	got := store.Data().Entry("2025-12-02", "emp2")
	want := store.Data().Entry("2025-12-01", "emp1")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pasted = %+v, want %+v", got, want)
	}
	if got.Production == want.Production {
		t.Fatal("paste shares the source detail pointer")
	}
}

func TestPasteShiftOverwritesTarget(t *testing.T) {
	store := clipFixture()
	var clip Clipboard
	clip.Capture(store.Data(), cellsFor("emp1", "2025-12-01"), CopyShift)
	clip.Paste(store, cellsFor("emp2", "2025-12-02"))

	got := store.Data().Entry("2025-12-02", "emp2")
	if !reflect.DeepEqual(got.ShiftIDs, []string{ShiftIDProduction}) {
		t.Fatalf("ids = %v, want [%s]", got.ShiftIDs, ShiftIDProduction)
	}
	if got.Note != "" {
		t.Fatalf("note = %q, want cleared", got.Note)
	}
	if got.Production != nil {
		t.Fatalf("shift capture carried the detail record: %+v", got.Production)
	}
}

func TestPasteNoteOverwritesTarget(t *testing.T) {
	store := clipFixture()
	var clip Clipboard
	clip.Capture(store.Data(), cellsFor("emp1", "2025-12-01"), CopyNote)
	clip.Paste(store, cellsFor("emp2", "2025-12-02"))

	got := store.Data().Entry("2025-12-02", "emp2")
	if len(got.ShiftIDs) != 0 {
		t.Fatalf("ids = %v, want cleared", got.ShiftIDs)
	}
	if got.Note != "early call" {
		t.Fatalf("note = %q, want early call", got.Note)
	}
}

func TestCaptureNoteOmitsShiftData(t *testing.T) {
	store := clipFixture()
	var clip Clipboard
	clip.Capture(store.Data(), cellsFor("emp1", "2025-12-01"), CopyNote)
	clip.Paste(store, cellsFor("emp3", "2025-12-10"))

	got := store.Data().Entry("2025-12-10", "emp3")
	if len(got.ShiftIDs) != 0 || got.Production != nil {
		t.Fatalf("note paste carried shift data: %+v", got)
	}
	if got.Note != "early call" {
		t.Fatalf("note = %q, want early call", got.Note)
	}
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	store := clipFixture()
	before := store.Data()
	var clip Clipboard
	clip.Paste(store, cellsFor("emp2", "2025-12-02"))
	if !reflect.DeepEqual(before, store.Data()) {
		t.Fatal("empty clipboard paste changed the schedule")
	}
}

func TestCaptureEmptySelectionIsNoOp(t *testing.T) {
	store := clipFixture()
	var clip Clipboard
	clip.Capture(store.Data(), nil, CopyAll)
	if !clip.Empty() {
		t.Fatal("capture of empty selection filled the clipboard")
	}
}

func TestCaptureEntrylessPrimaryCellIsNoOp(t *testing.T) {
	store := clipFixture()
	var clip Clipboard
	clip.Capture(store.Data(), cellsFor("emp9", "2025-12-20"), CopyAll)
	if !clip.Empty() {
		t.Fatal("capture of an entry-less primary cell filled the clipboard")
	}

	// A paste after the no-op capture must leave the targets untouched.
	before := store.Data()
	clip.Paste(store, cellsFor("emp2", "2025-12-02"))
	if !reflect.DeepEqual(before, store.Data()) {
		t.Fatal("paste after a no-op capture changed the schedule")
	}
}
