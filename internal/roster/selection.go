package roster

// Tracker maintains the current cell selection and an in-progress drag.
// A drag is confined to the employee row it started on and always spans
// the inclusive date interval between the anchor and the hovered cell,
// in either direction.
type Tracker struct {
	selected []SelectedCell

	dragging bool
	toggle   bool
	anchor   SelectedCell
	hover    SelectedCell
	hasHover bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Selected returns the committed selection. The slice is owned by the
// tracker and must not be mutated.
func (t *Tracker) Selected() []SelectedCell {
	return t.selected
}

// IsSelected reports whether the cell is in the committed selection or
// inside the anchor-hover interval of an active drag.
func (t *Tracker) IsSelected(employeeID, date string) bool {
	for _, c := range t.selected {
		if c.EmployeeID == employeeID && c.Date == date {
			return true
		}
	}
	if t.dragging {
		for _, c := range t.dragRange() {
			if c.EmployeeID == employeeID && c.Date == date {
				return true
			}
		}
	}
	return false
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Clear drops the selection and any in-progress drag.
func (t *Tracker) Clear() {
	t.selected = nil
	t.dragging = false
	t.hasHover = false
}

// Select replaces the selection with exactly the given cells.
func (t *Tracker) Select(cells ...SelectedCell) {
	t.selected = append([]SelectedCell(nil), cells...)
	t.dragging = false
	t.hasHover = false
}

// BeginDrag starts a drag anchored at the given cell. toggle marks the
// drag as additive: on EndDrag the dragged range is combined with the
// prior selection by symmetric difference instead of replacing it.
func (t *Tracker) BeginDrag(employeeID, date string, toggle bool) {
	t.dragging = true
	t.toggle = toggle
	t.anchor = SelectedCell{EmployeeID: employeeID, Date: date}
	t.hover = t.anchor
	t.hasHover = false
}

// UpdateHover records the cell currently under the pointer. Hovering a
// different employee's row is ignored; the drag never leaves the anchor
// row.
func (t *Tracker) UpdateHover(employeeID, date string) {
	if !t.dragging || employeeID != t.anchor.EmployeeID {
		return
	}
	t.hover = SelectedCell{EmployeeID: employeeID, Date: date}
	t.hasHover = true
}

// dragRange is the inclusive date interval between anchor and hover on
// the anchor row. With no recorded hover it degenerates to the anchor
// cell alone.
func (t *Tracker) dragRange() []SelectedCell {
	end := t.anchor
	if t.hasHover {
		end = t.hover
	}
	dates := DatesBetween(t.anchor.Date, end.Date)
	cells := make([]SelectedCell, 0, len(dates))
	for _, d := range dates {
		cells = append(cells, SelectedCell{EmployeeID: t.anchor.EmployeeID, Date: d})
	}
	return cells
}

// DragRange exposes the in-progress range for rendering. Nil when no
// drag is active.
func (t *Tracker) DragRange() []SelectedCell {
	if !t.dragging {
		return nil
	}
	return t.dragRange()
}

// EndDrag commits the drag. For a plain drag the range replaces the
// selection. For a toggle drag the range is folded into the selection by
// symmetric difference, so re-dragging over selected cells deselects
// them. The return value is true exactly when a plain drag never left
// its single starting cell, which the caller treats as a request to open
// the cell editor.
func (t *Tracker) EndDrag() bool {
	if !t.dragging {
		return false
	}
	rng := t.dragRange()
	single := !t.toggle && len(rng) == 1 &&
		(!t.hasHover || t.hover == t.anchor)
	if t.toggle {
		t.selected = symmetricDifference(t.selected, rng)
	} else {
		t.selected = rng
	}
	t.dragging = false
	t.hasHover = false
	return single
}

// symmetricDifference keeps cells present in exactly one of the two
// sets, preserving the order prior-then-range for the survivors.
func symmetricDifference(prior, rng []SelectedCell) []SelectedCell {
	inRange := make(map[SelectedCell]bool, len(rng))
	for _, c := range rng {
		inRange[c] = true
	}
	inPrior := make(map[SelectedCell]bool, len(prior))
	for _, c := range prior {
		inPrior[c] = true
	}
	var out []SelectedCell
	for _, c := range prior {
		if !inRange[c] {
			out = append(out, c)
		}
	}
	for _, c := range rng {
		if !inPrior[c] {
			out = append(out, c)
		}
	}
	return out
}
