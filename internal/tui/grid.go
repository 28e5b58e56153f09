// internal/tui/grid.go
//
// Monthly grid rendering and mouse geometry. The grid is a fixed-width
// table, so a pointer position maps back to a cell with simple integer
// arithmetic; that mapping is what makes drag selection work.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rosterboard/internal/roster"
)

const (
	// Width of the left column holding name, role, and rest counter.
	nameColWidth = 22
	// Width of one date cell.
	cellWidth = 5
	// Screen row of the first employee row: title, date header, weekday
	// header.
	gridTop = 3
)

var (
	weekdayShort = [...]string{"日", "月", "火", "水", "木", "金", "土"}

	selectedStyle = lipgloss.NewStyle().Reverse(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	grayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	sundayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	saturdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// pad truncates or pads s to exactly width terminal cells.
func pad(s string, width int) string {
	s = runewidth.Truncate(s, width, "")
	return runewidth.FillRight(s, width)
}

// cellAt maps a terminal coordinate to a grid cell.
func (a *App) cellAt(x, y int) (employeeID, date string, ok bool) {
	col := (x - nameColWidth) / cellWidth
	if x < nameColWidth || col < 0 || col >= len(a.dates) {
		return "", "", false
	}
	row := a.rowAt(y)
	if row < 0 {
		return "", "", false
	}
	return a.employees[row].ID, a.dates[col], true
}

// rowAt maps a screen line to an employee index, accounting for divider
// lines between roster blocks.
func (a *App) rowAt(y int) int {
	line := gridTop
	for i, emp := range a.employees {
		if y == line {
			return i
		}
		line++
		if emp.ShowDivider {
			line++
		}
	}
	return -1
}

// handleMouse drives drag selection. Press anchors a drag, motion
// extends it along the anchor row, release commits it. A plain click
// that never moved opens the cell editor.
func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		empID, date, ok := a.cellAt(msg.X, msg.Y)
		if !ok {
			return
		}
		a.syncCursor(empID, date)
		a.tracker.BeginDrag(empID, date, msg.Shift || msg.Ctrl)
	case tea.MouseActionMotion:
		if !a.tracker.Dragging() {
			return
		}
		if empID, date, ok := a.cellAt(msg.X, msg.Y); ok {
			a.tracker.UpdateHover(empID, date)
		}
	case tea.MouseActionRelease:
		if !a.tracker.Dragging() {
			return
		}
		if open := a.tracker.EndDrag(); open {
			a.openEditor()
		}
	}
}

func (a *App) syncCursor(employeeID, date string) {
	for i, emp := range a.employees {
		if emp.ID == employeeID {
			a.cursorRow = i
			break
		}
	}
	for i, d := range a.dates {
		if d == date {
			a.cursorCol = i
			break
		}
	}
}

// gridText is the short code shown in one cell.
func (a *App) gridText(entry roster.ShiftEntry) string {
	if len(entry.ShiftIDs) == 0 {
		if entry.Note != "" {
			return "✎"
		}
		return ""
	}
	parts := make([]string, 0, len(entry.ShiftIDs))
	for _, id := range entry.ShiftIDs {
		if st, ok := roster.ShiftTypeByID(a.shiftTypes, id); ok {
			parts = append(parts, st.ShortName)
		} else {
			parts = append(parts, "?")
		}
	}
	return strings.Join(parts, "/")
}

func isGrayOut(entry roster.ShiftEntry) bool {
	for _, id := range roster.GrayOutShiftIDs() {
		if entry.HasShift(id) {
			return true
		}
	}
	return false
}

func (a *App) renderRoster() string {
	var b strings.Builder

	mode := "編集"
	if a.readOnly {
		mode = "閲覧"
	}
	title := fmt.Sprintf("勤務表 %d年%d月 · %sモード", a.year, int(a.month), mode)
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render(title))
	b.WriteString("\n")

	missingByDate := make(map[string][]string, len(a.dates))
	for _, date := range a.dates {
		missingByDate[date] = roster.MissingShifts(date, a.requiredShifts, a.employees, a.store.Data())
	}

	// Date header and weekday header.
	b.WriteString(pad("", nameColWidth))
	for _, date := range a.dates {
		t, _ := roster.ParseDate(date)
		label := fmt.Sprintf("%d", t.Day())
		if len(missingByDate[date]) > 0 {
			label += "!"
		}
		b.WriteString(pad(label, cellWidth))
	}
	b.WriteString("\n")
	b.WriteString(pad("", nameColWidth))
	for _, date := range a.dates {
		wd := roster.Weekday(date)
		label := pad(weekdayShort[wd], cellWidth)
		switch wd {
		case 0:
			label = sundayStyle.Render(label)
		case 6:
			label = saturdayStyle.Render(label)
		}
		b.WriteString(label)
	}
	b.WriteString("\n")

	data := a.store.Data()
	for i, emp := range a.employees {
		left := emp.Name
		if badge := a.holidayBadge(emp); badge != "" {
			left += " " + badge
		}
		b.WriteString(pad(left, nameColWidth))
		for col, date := range a.dates {
			entry := data.Entry(date, emp.ID)
			text := pad(a.gridText(entry), cellWidth)
			switch {
			case i == a.cursorRow && col == a.cursorCol:
				text = cursorStyle.Render(text)
			case a.tracker.IsSelected(emp.ID, date):
				text = selectedStyle.Render(text)
			case isGrayOut(entry):
				text = grayStyle.Render(text)
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
		if emp.ShowDivider {
			b.WriteString(dividerStyle.Render(strings.Repeat("─", nameColWidth+cellWidth*len(a.dates))))
			b.WriteString("\n")
		}
	}

	// Daily note and coverage detail for the cursor date.
	cursorDate := a.dates[a.cursorCol]
	if note := a.dailyNotes[cursorDate]; note != "" {
		b.WriteString(fmt.Sprintf("連絡: %s\n", note))
	}
	if missing := missingByDate[cursorDate]; len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, id := range missing {
			if st, ok := roster.ShiftTypeByID(a.shiftTypes, id); ok {
				names = append(names, st.Name)
			} else {
				names = append(names, id)
			}
		}
		b.WriteString(warnStyle.Render(fmt.Sprintf("%s 未割当: %s", cursorDate, strings.Join(names, "、"))))
		b.WriteString("\n")
	}

	if panel := a.renderLogPanel(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}

	hint := "enter:編集 e:連絡 c/C/n:コピー p:貼付 d:削除 m:移動 x:複製 g:AI t:翌日 w/W:週間 a:設定 E/I:Excel [ ]:月 q:終了"
	if a.readOnly {
		hint = "t:翌日 w/W:週間 [ ]:月 q:終了（閲覧モード）"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(hint))
	if a.statusMsg != "" {
		b.WriteString("\n" + a.statusMsg)
	}
	return b.String()
}
