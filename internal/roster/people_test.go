package roster

import "testing"

func TestAddEmployeeAssignsUniqueIDs(t *testing.T) {
	roster := AddEmployee(nil, "新人 一号", "AD")
	roster = AddEmployee(roster, "新人 二号", "AD")
	if len(roster) != 2 {
		t.Fatalf("len = %d, want 2", len(roster))
	}
	if roster[0].ID == "" || roster[0].ID == roster[1].ID {
		t.Fatalf("ids not unique: %q %q", roster[0].ID, roster[1].ID)
	}
}

func TestUpdateEmployeeReplacesMatchingID(t *testing.T) {
	roster := []Employee{{ID: "emp1", Name: "old"}, {ID: "emp2", Name: "keep"}}
	got := UpdateEmployee(roster, Employee{ID: "emp1", Name: "new", Role: "デスク"})
	if got[0].Name != "new" || got[0].Role != "デスク" {
		t.Fatalf("updated = %+v", got[0])
	}
	if roster[0].Name != "old" {
		t.Fatal("update mutated the input slice")
	}
}

func TestDeleteEmployeeUnknownIDIsNoOp(t *testing.T) {
	roster := []Employee{{ID: "emp1"}}
	if got := DeleteEmployee(roster, "ghost"); len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got := DeleteEmployee(roster, "emp1"); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestMoveEmployeeSwapsNeighbors(t *testing.T) {
	roster := []Employee{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := MoveEmployee(roster, "b", -1)
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("order = %v %v", got[0].ID, got[1].ID)
	}
}

func TestMoveEmployeeOutOfRangeIsNoOp(t *testing.T) {
	roster := []Employee{{ID: "a"}, {ID: "b"}}
	got := MoveEmployee(roster, "a", -1)
	if got[0].ID != "a" {
		t.Fatalf("top moved up: %v", got[0].ID)
	}
	got = MoveEmployee(roster, "b", 1)
	if got[1].ID != "b" {
		t.Fatalf("bottom moved down: %v", got[1].ID)
	}
}

func TestShiftTypeRoundTripOps(t *testing.T) {
	types := AddShiftType(nil, "夜勤", "夜勤", "#c7d2fe", "#312e81")
	id := types[0].ID
	types = UpdateShiftType(types, ShiftType{ID: id, Name: "夜勤2", ShortName: "夜2"})
	st, ok := ShiftTypeByID(types, id)
	if !ok || st.Name != "夜勤2" {
		t.Fatalf("lookup = %+v ok=%v", st, ok)
	}
	types = DeleteShiftType(types, id)
	if _, ok := ShiftTypeByID(types, id); ok {
		t.Fatal("deleted type still present")
	}
}

func TestMoveShiftTypeDown(t *testing.T) {
	types := []ShiftType{{ID: "x"}, {ID: "y"}}
	got := MoveShiftType(types, "x", 1)
	if got[0].ID != "y" || got[1].ID != "x" {
		t.Fatalf("order = %v %v", got[0].ID, got[1].ID)
	}
}

func TestDefaultDatasetConsistency(t *testing.T) {
	types := DefaultShiftTypes()
	byID := make(map[string]bool, len(types))
	for _, st := range types {
		if byID[st.ID] {
			t.Fatalf("duplicate shift id %q", st.ID)
		}
		byID[st.ID] = true
	}
	for wd, ids := range DefaultRequiredShifts() {
		for _, id := range ids {
			if !byID[id] {
				t.Fatalf("weekday %d requires unknown shift %q", wd, id)
			}
		}
	}
	emps := make(map[string]bool)
	for _, e := range DefaultEmployees() {
		emps[e.ID] = true
	}
	for date, byEmp := range DefaultSchedule() {
		for empID, entry := range byEmp {
			if !emps[empID] {
				t.Fatalf("%s assigns unknown employee %q", date, empID)
			}
			for _, id := range entry.ShiftIDs {
				if !byID[id] {
					t.Fatalf("%s/%s uses unknown shift %q", date, empID, id)
				}
			}
		}
	}
}
