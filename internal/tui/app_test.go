package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rosterboard/internal/assistant"
	"rosterboard/internal/config"
	"rosterboard/internal/roster"
	"rosterboard/internal/storage"
)

// testNow keeps every test inside the month the sample data covers.
var testNow = time.Date(2025, time.December, 10, 10, 0, 0, 0, time.Local)

func newTestApp(t *testing.T, opts ...AppOption) (*App, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	if err := config.Init(dir); err != nil {
		t.Fatalf("init data dir: %v", err)
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	baseOpts := []AppOption{WithClock(func() time.Time { return testNow })}
	baseOpts = append(baseOpts, opts...)
	app, err := NewApp(cfg, baseOpts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, cfg
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, app *App, keys ...string) {
	t.Helper()
	for _, k := range keys {
		app.Update(keyMsg(k))
	}
}

func typeText(t *testing.T, app *App, text string) {
	t.Helper()
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func login(t *testing.T, app *App, password string) {
	t.Helper()
	typeText(t, app, password)
	press(t, app, "enter")
	if app.state != stateRoster {
		t.Fatalf("login with %q left state %d, want roster", password, app.state)
	}
}

// mouse coordinates for a grid cell on an undivided row.
func mouseAt(row, col int) (x, y int) {
	return nameColWidth + col*cellWidth, gridTop + row
}

func TestAuthAdminViewerAndRejection(t *testing.T) {
	app, _ := newTestApp(t)
	typeText(t, app, "wrong")
	press(t, app, "enter")
	if app.state != stateAuth {
		t.Fatalf("wrong password advanced past the gate")
	}
	if app.authErr == "" {
		t.Fatalf("wrong password produced no error message")
	}
	login(t, app, "0035")
	if app.readOnly {
		t.Fatalf("admin login must not be read-only")
	}

	viewer, _ := newTestApp(t)
	login(t, viewer, "4444")
	if !viewer.readOnly {
		t.Fatalf("viewer login must be read-only")
	}
}

func TestKeyboardRangeEditApplies(t *testing.T) {
	app, cfg := newTestApp(t)
	login(t, app, "0035")
	app.store.Replace(roster.ScheduleData{})

	press(t, app, "shift+right", "shift+right", "enter")
	if app.state != stateEditor {
		t.Fatalf("enter did not open the editor, state %d", app.state)
	}
	if got := len(app.tracker.Selected()); got != 3 {
		t.Fatalf("selection has %d cells, want 3", got)
	}
	// Toggle the first catalogue entry and save.
	press(t, app, " ", "enter")
	if app.state != stateRoster {
		t.Fatalf("save did not return to the grid")
	}

	wantID := app.shiftTypes[0].ID
	emp := app.employees[0].ID
	data := app.store.Data()
	for col := 0; col < 3; col++ {
		entry := data.Entry(app.dates[col], emp)
		if len(entry.ShiftIDs) != 1 || entry.ShiftIDs[0] != wantID {
			t.Fatalf("cell %s/%s = %+v, want single %s", emp, app.dates[col], entry, wantID)
		}
	}

	// The commit observer must have written the schedule record.
	records, err := storage.New(cfg.RecordsDir())
	if err != nil {
		t.Fatalf("reopen records: %v", err)
	}
	reloaded := records.Load().Schedule
	if !reloaded.Entry(app.dates[0], emp).HasShift(wantID) {
		t.Fatalf("edit was not persisted")
	}
}

func TestMouseDragSelectsAndClickOpensEditor(t *testing.T) {
	app, _ := newTestApp(t)
	login(t, app, "0035")

	x0, y0 := mouseAt(0, 0)
	x3, _ := mouseAt(0, 3)
	app.Update(tea.MouseMsg{X: x0, Y: y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	app.Update(tea.MouseMsg{X: x3, Y: y0, Action: tea.MouseActionMotion})
	app.Update(tea.MouseMsg{X: x3, Y: y0, Action: tea.MouseActionRelease})
	if app.state != stateRoster {
		t.Fatalf("drag release opened a screen, state %d", app.state)
	}
	if got := len(app.tracker.Selected()); got != 4 {
		t.Fatalf("drag selected %d cells, want 4", got)
	}

	// Shift-drag folds a new range into the selection by symmetric
	// difference: {0..3} with {2..5} leaves {0,1,4,5}.
	x2, _ := mouseAt(0, 2)
	x5, _ := mouseAt(0, 5)
	app.Update(tea.MouseMsg{X: x2, Y: y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true})
	app.Update(tea.MouseMsg{X: x5, Y: y0, Action: tea.MouseActionMotion})
	app.Update(tea.MouseMsg{X: x5, Y: y0, Action: tea.MouseActionRelease})
	if got := len(app.tracker.Selected()); got != 4 {
		t.Fatalf("toggle drag left %d cells, want 4", got)
	}
	emp := app.employees[0].ID
	for _, col := range []int{0, 1, 4, 5} {
		if !app.tracker.IsSelected(emp, app.dates[col]) {
			t.Fatalf("column %d missing from toggled selection", col)
		}
	}
	for _, col := range []int{2, 3} {
		if app.tracker.IsSelected(emp, app.dates[col]) {
			t.Fatalf("column %d should have been deselected", col)
		}
	}

	// A plain click that never moves opens the editor.
	x1, _ := mouseAt(0, 1)
	app.Update(tea.MouseMsg{X: x1, Y: y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	app.Update(tea.MouseMsg{X: x1, Y: y0, Action: tea.MouseActionRelease})
	if app.state != stateEditor {
		t.Fatalf("single click did not open the editor, state %d", app.state)
	}
}

func TestViewerModeBlocksMutation(t *testing.T) {
	app, _ := newTestApp(t)
	login(t, app, "4444")
	before := app.store.Data()

	press(t, app, "enter")
	if app.state != stateRoster {
		t.Fatalf("viewer opened the editor")
	}
	press(t, app, "d", "p")
	x, y := mouseAt(0, 0)
	app.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(app.tracker.Selected()) != 0 || app.tracker.Dragging() {
		t.Fatalf("viewer mouse input reached the tracker")
	}

	after := app.store.Data()
	if len(after) != len(before) {
		t.Fatalf("viewer keys mutated the schedule")
	}
}

func TestClipboardKeys(t *testing.T) {
	app, _ := newTestApp(t)
	login(t, app, "0035")
	app.store.Replace(roster.ScheduleData{})

	emp := app.employees[0].ID
	seed := roster.SelectedCell{EmployeeID: emp, Date: app.dates[0]}
	app.store.ApplyEdit([]roster.SelectedCell{seed}, []string{"day_shift"}, "引き継ぎ", nil, nil)

	// Copy-all from the cursor cell, paste one column right.
	press(t, app, "c", "right", "p")
	got := app.store.Data().Entry(app.dates[1], emp)
	if !got.HasShift("day_shift") || got.Note != "引き継ぎ" {
		t.Fatalf("paste-all result = %+v", got)
	}

	// Note-only copy carries the note and nothing else.
	press(t, app, "left", "n", "right", "right", "p")
	noteOnly := app.store.Data().Entry(app.dates[2], emp)
	if len(noteOnly.ShiftIDs) != 0 || noteOnly.Note != "引き継ぎ" {
		t.Fatalf("paste-note result = %+v", noteOnly)
	}
}

func TestMoveAndDuplicateTwoPress(t *testing.T) {
	app, _ := newTestApp(t)
	login(t, app, "0035")
	app.store.Replace(roster.ScheduleData{})

	emp := app.employees[0].ID
	src := roster.SelectedCell{EmployeeID: emp, Date: app.dates[0]}
	app.store.ApplyEdit([]roster.SelectedCell{src}, []string{"rest"}, "", nil, nil)

	press(t, app, "m")
	if app.moveSource == nil {
		t.Fatalf("first m press did not arm the move")
	}
	press(t, app, "right", "m")
	data := app.store.Data()
	if data.Has(app.dates[0], emp) {
		t.Fatalf("move left the source cell in place")
	}
	if !data.Entry(app.dates[1], emp).HasShift("rest") {
		t.Fatalf("move did not reach the destination")
	}

	press(t, app, "x", "right", "x")
	data = app.store.Data()
	if !data.Entry(app.dates[1], emp).HasShift("rest") || !data.Entry(app.dates[2], emp).HasShift("rest") {
		t.Fatalf("duplicate did not keep both cells")
	}
}

func TestAssistantProposalApply(t *testing.T) {
	var askedPrompt string
	stub := func(_ context.Context, prompt string, _ assistant.Context) (assistant.Response, error) {
		askedPrompt = prompt
		note := "依頼どおり"
		return assistant.Response{
			Type:    assistant.TypeUpdate,
			Message: "更新案を作成しました。",
			Updates: []roster.ProposedUpdate{
				{Date: "2025-12-05", EmployeeID: "emp2", ShiftIDs: []string{"rest"}, Note: &note},
			},
		}, nil
	}
	app, _ := newTestApp(t, WithAskFunc(stub))
	login(t, app, "0035")
	app.store.Replace(roster.ScheduleData{})

	press(t, app, "g")
	if app.state != stateAssistant {
		t.Fatalf("g did not open the assistant, state %d", app.state)
	}
	typeText(t, app, "田中さんを休みに")
	_, cmd := app.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatalf("enter produced no assistant command")
	}
	msg := cmd()
	app.Update(msg)
	if askedPrompt != "田中さんを休みに" {
		t.Fatalf("prompt = %q", askedPrompt)
	}
	if !app.assistPane.proposal {
		t.Fatalf("UPDATE reply did not arm a proposal")
	}

	press(t, app, "a")
	if app.state != stateRoster {
		t.Fatalf("apply did not return to the grid")
	}
	entry := app.store.Data().Entry("2025-12-05", "emp2")
	if !entry.HasShift("rest") || entry.Note != "依頼どおり" {
		t.Fatalf("proposal not applied, entry = %+v", entry)
	}
}

func TestDigestReminderFiresOncePerDay(t *testing.T) {
	sendTime := time.Date(2025, time.December, 10, 16, 0, 0, 0, time.Local)
	app, _ := newTestApp(t, WithClock(func() time.Time { return sendTime }))
	login(t, app, "0035")

	app.Update(reminderTickMsg(sendTime))
	if app.state != stateDigest {
		t.Fatalf("reminder at send time did not open the digest, state %d", app.state)
	}
	if app.digestText == "" {
		t.Fatalf("digest text is empty")
	}

	// Same day, same time again: the reminder stays quiet.
	app.state = stateRoster
	app.Update(reminderTickMsg(sendTime.Add(time.Second)))
	if app.state != stateRoster {
		t.Fatalf("reminder fired twice on the same day")
	}
}

func TestEmptyRosterGridActionsAreNoOps(t *testing.T) {
	app, _ := newTestApp(t)
	login(t, app, "0035")

	// Delete every employee through the admin screen.
	press(t, app, "a", "enter")
	for len(app.employees) > 0 {
		press(t, app, "d")
	}
	press(t, app, "esc", "esc")
	if app.state != stateRoster {
		t.Fatalf("admin exit left state %d, want roster", app.state)
	}

	// Every cell-addressed action must degrade to a no-op.
	press(t, app, "enter", " ", "d", "c", "p", "m", "x", "right", "down", "shift+right")
	if app.state != stateRoster {
		t.Fatalf("empty-roster key left state %d, want roster", app.state)
	}
	if app.moveSource != nil || app.copySource != nil {
		t.Fatalf("empty roster armed a move or duplicate source")
	}
	if app.View() == "" {
		t.Fatalf("empty roster produced no view")
	}
}

func TestAdminHolidayCountForm(t *testing.T) {
	app, cfg := newTestApp(t)
	login(t, app, "0035")

	press(t, app, "a")
	if app.state != stateAdmin {
		t.Fatalf("a did not open admin, state %d", app.state)
	}
	// Menu: down to the holiday count item, open its form.
	press(t, app, "down", "down", "down", "enter")
	if app.admin.form == nil {
		t.Fatalf("holiday count form did not open")
	}
	app.admin.form.fields[0].SetValue("12")
	press(t, app, "enter")
	if app.requiredHolidayCount != 12 {
		t.Fatalf("holiday count = %d, want 12", app.requiredHolidayCount)
	}

	records, err := storage.New(cfg.RecordsDir())
	if err != nil {
		t.Fatalf("reopen records: %v", err)
	}
	if got := records.Load().RequiredHolidayCount; got != 12 {
		t.Fatalf("persisted holiday count = %d, want 12", got)
	}
}
