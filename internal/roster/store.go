// internal/roster/store.go
//
// The Store owns the canonical ScheduleData register. Every mutation
// builds a fresh map and replaces the register wholesale, then notifies
// observers, so consumers relying on snapshot identity for change
// detection stay correct. Operations invoked with insufficient context
// (empty selection, missing source entry, empty clipboard) silently
// no-op; there are no recoverable error states in the engine.

package roster

// Store holds the schedule register and its observers. It is not safe
// for concurrent use; the application is single threaded by design.
type Store struct {
	data      ScheduleData
	observers []func(ScheduleData)
}

// NewStore wraps an initial schedule. A nil schedule starts empty.
func NewStore(data ScheduleData) *Store {
	if data == nil {
		data = ScheduleData{}
	}
	return &Store{data: data}
}

// Data returns the current register. Callers must treat it as read-only;
// derived state (coverage, rest counts) must be recomputed from a fresh
// Data() call after every mutation.
func (s *Store) Data() ScheduleData {
	return s.data
}

// Subscribe registers an observer invoked after every committed
// replacement of the register.
func (s *Store) Subscribe(fn func(ScheduleData)) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Replace swaps in a complete new schedule (used by spreadsheet import
// and persistence load).
func (s *Store) Replace(data ScheduleData) {
	if data == nil {
		data = ScheduleData{}
	}
	s.commit(data)
}

func (s *Store) commit(next ScheduleData) {
	s.data = next
	for _, fn := range s.observers {
		fn(s.data)
	}
}

// mutableCopy shallow-copies the date map and the inner employee maps so
// a mutation never writes through to the previous register value.
func (s *Store) mutableCopy() ScheduleData {
	next := make(ScheduleData, len(s.data)+1)
	for date, byEmp := range s.data {
		day := make(map[string]ShiftEntry, len(byEmp)+1)
		for empID, entry := range byEmp {
			day[empID] = entry
		}
		next[date] = day
	}
	return next
}

func setEntry(data ScheduleData, date, employeeID string, entry ShiftEntry) {
	day, ok := data[date]
	if !ok {
		day = make(map[string]ShiftEntry)
		data[date] = day
	}
	day[employeeID] = entry
}

func deleteEntry(data ScheduleData, date, employeeID string) {
	day, ok := data[date]
	if !ok {
		return
	}
	delete(day, employeeID)
	if len(day) == 0 {
		delete(data, date)
	}
}

// normalizeEntry clears detail records whose reserved id is not present
// in the id set, preserving the invariant that detail fields are only
// meaningful alongside their reserved id.
func normalizeEntry(entry ShiftEntry) ShiftEntry {
	if !entry.HasShift(ShiftIDProduction) {
		entry.Production = nil
	}
	if !entry.HasShift(ShiftIDTravel) {
		entry.Travel = nil
	}
	return entry
}

// ApplyEdit sets every selected cell to exactly the given content,
// discarding whatever the cells held before. Detail records are dropped
// when their reserved id is absent from shiftIDs. No-op on an empty
// selection.
func (s *Store) ApplyEdit(cells []SelectedCell, shiftIDs []string, note string, production *ProductionDetail, travel *TravelDetail) {
	if len(cells) == 0 {
		return
	}
	template := normalizeEntry(ShiftEntry{
		ShiftIDs:   shiftIDs,
		Note:       note,
		Production: production,
		Travel:     travel,
	})
	next := s.mutableCopy()
	for _, cell := range cells {
		setEntry(next, cell.Date, cell.EmployeeID, template.Clone())
	}
	s.commit(next)
}

// Move relocates the source entry to the destination, overwriting any
// destination entry and deleting the source key outright. No-op when the
// source has no entry.
func (s *Store) Move(srcEmployee, srcDate, destEmployee, destDate string) {
	if !s.data.Has(srcDate, srcEmployee) {
		return
	}
	next := s.mutableCopy()
	entry := next[srcDate][srcEmployee]
	setEntry(next, destDate, destEmployee, entry)
	deleteEntry(next, srcDate, srcEmployee)
	s.commit(next)
}

// Copy duplicates the source entry to the destination, deep-copied so the
// two cells share no mutable state. The source is left untouched. No-op
// when the source has no entry.
func (s *Store) Copy(srcEmployee, srcDate, destEmployee, destDate string) {
	if !s.data.Has(srcDate, srcEmployee) {
		return
	}
	next := s.mutableCopy()
	setEntry(next, destDate, destEmployee, next[srcDate][srcEmployee].Clone())
	s.commit(next)
}

// Delete removes the entry key for every targeted cell. Cells without an
// entry are skipped; deleting an already-empty cell changes nothing.
func (s *Store) Delete(cells ...SelectedCell) {
	if len(cells) == 0 {
		return
	}
	changed := false
	next := s.mutableCopy()
	for _, cell := range cells {
		if next.Has(cell.Date, cell.EmployeeID) {
			deleteEntry(next, cell.Date, cell.EmployeeID)
			changed = true
		}
	}
	if !changed {
		return
	}
	s.commit(next)
}

// ApplyProposal applies an assistant batch proposal with batch-assign
// semantics, one cell at a time. Each target keeps its existing note
// unless the update supplies one, and keeps its detail records only as
// long as the matching reserved id survives in the new id set.
func (s *Store) ApplyProposal(updates []ProposedUpdate) {
	if len(updates) == 0 {
		return
	}
	next := s.mutableCopy()
	for _, u := range updates {
		current := next.Entry(u.Date, u.EmployeeID)
		entry := ShiftEntry{
			Note:       current.Note,
			Production: current.Production,
			Travel:     current.Travel,
		}
		if len(u.ShiftIDs) > 0 {
			entry.ShiftIDs = make([]string, len(u.ShiftIDs))
			copy(entry.ShiftIDs, u.ShiftIDs)
		}
		if u.Note != nil {
			entry.Note = *u.Note
		}
		setEntry(next, u.Date, u.EmployeeID, normalizeEntry(entry).Clone())
	}
	s.commit(next)
}
