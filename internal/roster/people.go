package roster

import "github.com/google/uuid"

// Administrative operations over the employee roster and the shift type
// catalogue. All of them return a new slice and leave the argument
// untouched; unknown ids and out-of-range moves are no-ops that return
// the input order unchanged.

// AddEmployee appends a new employee with a generated id.
func AddEmployee(employees []Employee, name, role string) []Employee {
	emp := Employee{ID: uuid.NewString(), Name: name, Role: role}
	out := append([]Employee(nil), employees...)
	return append(out, emp)
}

// UpdateEmployee replaces the employee with the same id.
func UpdateEmployee(employees []Employee, updated Employee) []Employee {
	out := append([]Employee(nil), employees...)
	for i, emp := range out {
		if emp.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

// DeleteEmployee removes the employee with the given id.
func DeleteEmployee(employees []Employee, id string) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.ID != id {
			out = append(out, emp)
		}
	}
	return out
}

// MoveEmployee shifts the employee with the given id one position up
// (delta -1) or down (delta +1) in display order.
func MoveEmployee(employees []Employee, id string, delta int) []Employee {
	out := append([]Employee(nil), employees...)
	for i, emp := range out {
		if emp.ID != id {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(out) {
			return out
		}
		out[i], out[j] = out[j], out[i]
		return out
	}
	return out
}

// AddShiftType appends a new shift type with a generated id.
func AddShiftType(types []ShiftType, name, shortName, color, textColor string) []ShiftType {
	st := ShiftType{ID: uuid.NewString(), Name: name, ShortName: shortName, Color: color, TextColor: textColor}
	out := append([]ShiftType(nil), types...)
	return append(out, st)
}

// UpdateShiftType replaces the shift type with the same id.
func UpdateShiftType(types []ShiftType, updated ShiftType) []ShiftType {
	out := append([]ShiftType(nil), types...)
	for i, st := range out {
		if st.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

// DeleteShiftType removes the shift type with the given id. The reserved
// ids stay deletable; entries referencing a deleted type simply render
// as unknown codes.
func DeleteShiftType(types []ShiftType, id string) []ShiftType {
	out := make([]ShiftType, 0, len(types))
	for _, st := range types {
		if st.ID != id {
			out = append(out, st)
		}
	}
	return out
}

// MoveShiftType shifts the type with the given id one position up or
// down in catalogue order.
func MoveShiftType(types []ShiftType, id string, delta int) []ShiftType {
	out := append([]ShiftType(nil), types...)
	for i, st := range out {
		if st.ID != id {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(out) {
			return out
		}
		out[i], out[j] = out[j], out[i]
		return out
	}
	return out
}

// ShiftTypeByID looks a type up in the catalogue.
func ShiftTypeByID(types []ShiftType, id string) (ShiftType, bool) {
	for _, st := range types {
		if st.ID == id {
			return st, true
		}
	}
	return ShiftType{}, false
}

// EmployeeByID looks an employee up in the roster.
func EmployeeByID(employees []Employee, id string) (Employee, bool) {
	for _, emp := range employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}
