package roster

// CopyMode selects which part of an entry a clipboard capture carries.
type CopyMode int

const (
	// CopyAll carries shift ids, note, and detail records.
	CopyAll CopyMode = iota
	// CopyShift carries shift ids and detail records only.
	CopyShift
	// CopyNote carries the note only.
	CopyNote
)

// Clipboard holds one captured entry. The zero value is empty.
type Clipboard struct {
	entry ShiftEntry
	mode  CopyMode
	full  bool
}

// Empty reports whether nothing has been captured.
func (c *Clipboard) Empty() bool {
	return !c.full
}

// Mode returns the mode of the last capture.
func (c *Clipboard) Mode() CopyMode {
	return c.mode
}

// primaryCell picks the cell whose entry a multi-cell capture reads: the
// smallest date, then the smallest employee id among equal dates.
func primaryCell(cells []SelectedCell) (SelectedCell, bool) {
	if len(cells) == 0 {
		return SelectedCell{}, false
	}
	best := cells[0]
	for _, c := range cells[1:] {
		if c.Date < best.Date || (c.Date == best.Date && c.EmployeeID < best.EmployeeID) {
			best = c
		}
	}
	return best, true
}

// Capture reads the primary cell of the selection from the schedule and
// stores the parts selected by mode. CopyShift keeps the shift id set
// only; CopyNote keeps the note only. No-op when the selection is empty
// or the primary cell has no entry.
func (c *Clipboard) Capture(schedule ScheduleData, cells []SelectedCell, mode CopyMode) {
	primary, ok := primaryCell(cells)
	if !ok || !schedule.Has(primary.Date, primary.EmployeeID) {
		return
	}
	src := schedule.Entry(primary.Date, primary.EmployeeID)
	var captured ShiftEntry
	switch mode {
	case CopyAll:
		captured = src.Clone()
	case CopyShift:
		captured = ShiftEntry{}
		if len(src.ShiftIDs) > 0 {
			captured.ShiftIDs = make([]string, len(src.ShiftIDs))
			copy(captured.ShiftIDs, src.ShiftIDs)
		}
	case CopyNote:
		captured = ShiftEntry{Note: src.Note}
	default:
		return
	}
	c.entry = captured
	c.mode = mode
	c.full = true
}

// Paste writes a deep copy of the captured entry to every target cell,
// overwriting whatever the cells held before. Empty clipboard or empty
// target set is a no-op.
func (c *Clipboard) Paste(store *Store, cells []SelectedCell) {
	if c.Empty() || len(cells) == 0 {
		return
	}
	store.ApplyEdit(cells, c.entry.ShiftIDs, c.entry.Note, c.entry.Production, c.entry.Travel)
}
