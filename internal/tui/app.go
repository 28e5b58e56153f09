// internal/tui/app.go
//
// This is the main TUI for rosterboard. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rosterboard/internal/assistant"
	"rosterboard/internal/config"
	"rosterboard/internal/digest"
	"rosterboard/internal/logbook"
	"rosterboard/internal/roster"
	"rosterboard/internal/sheet"
	"rosterboard/internal/storage"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateAuth      appState = iota // Password gate
	stateRoster                    // The monthly grid
	stateEditor                    // Cell editor for the current selection
	stateNote                      // Daily note editor
	stateAssistant                 // Assistant prompt and reply
	stateDigest                    // Tomorrow's duty digest
	stateWeekly                    // Program weekly extract
	stateAdmin                     // Roster administration screens
)

const reminderTickInterval = 30 * time.Second

type reminderTickMsg time.Time

type assistantReplyMsg struct {
	resp assistant.Response
	err  error
}

// askFunc lets tests swap the Gemini call for a stub.
type askFunc func(ctx context.Context, prompt string, rc assistant.Context) (assistant.Response, error)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithAskFunc overrides the assistant backend.
func WithAskFunc(fn askFunc) AppOption {
	return func(a *App) {
		if fn != nil {
			a.ask = fn
		}
	}
}

// WithClock overrides the time source used by the digest reminder.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state  appState
	config *config.Config

	records   *storage.Store
	store     *roster.Store
	tracker   *roster.Tracker
	clipboard roster.Clipboard
	logbook   *logbook.Logbook

	employees            []roster.Employee
	shiftTypes           []roster.ShiftType
	dailyNotes           roster.DailyNotes
	requiredShifts       roster.RequiredShiftsByDay
	requiredHolidayCount int

	year  int
	month time.Month
	dates []string

	// Keyboard cursor over the grid.
	cursorRow int
	cursorCol int
	// Keyboard range anchor column, -1 when no range is being extended.
	rangeAnchor int

	// Pending single-cell move/duplicate sources.
	moveSource *roster.SelectedCell
	copySource *roster.SelectedCell

	readOnly  bool
	authInput textinput.Model
	authErr   string

	editor      *editorView
	noteInput   textinput.Model
	noteDate    string
	admin       *adminView
	digestText  string
	weeklyText  string
	assistPane  assistantPane
	pendingEdit []roster.ProposedUpdate

	ask         askFunc
	assistantCl *assistant.Client
	now         func() time.Time
	// Date the reminder already fired for, "YYYY-MM-DD".
	reminderShown string

	width     int
	height    int
	statusMsg string
}

// NewApp loads persisted state and builds the application model.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	records, err := storage.New(cfg.RecordsDir())
	if err != nil {
		return nil, err
	}
	ds := records.Load()

	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "session.log"))
	if err != nil {
		lb = nil
	}

	input := textinput.New()
	input.Placeholder = "パスワード"
	input.EchoMode = textinput.EchoPassword
	input.Focus()

	note := textinput.New()
	note.Placeholder = "連絡事項"
	note.CharLimit = 200

	app := &App{
		state:                stateAuth,
		config:               cfg,
		records:              records,
		store:                roster.NewStore(ds.Schedule),
		tracker:              roster.NewTracker(),
		logbook:              lb,
		employees:            ds.Employees,
		shiftTypes:           ds.ShiftTypes,
		dailyNotes:           ds.DailyNotes,
		requiredShifts:       ds.RequiredShifts,
		requiredHolidayCount: ds.RequiredHolidayCount,
		rangeAnchor:          -1,
		authInput:            input,
		noteInput:            note,
		now:                  time.Now,
	}
	app.ask = app.askGemini
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	base := app.now()
	app.setMonth(base.Year(), base.Month())

	// Every committed schedule goes straight to disk.
	app.store.Subscribe(func(data roster.ScheduleData) {
		if err := records.SaveSchedule(data); err != nil {
			app.logError("save schedule: %v", err)
			app.statusMsg = "保存に失敗しました: " + err.Error()
		}
	})

	app.logInfo("Session opened · %d employees, %d shift types", len(app.employees), len(app.shiftTypes))
	return app, nil
}

func (a *App) setMonth(year int, month time.Month) {
	a.year = year
	a.month = month
	a.dates = roster.MonthDates(year, month)
	if a.cursorCol >= len(a.dates) {
		a.cursorCol = len(a.dates) - 1
	}
	a.rangeAnchor = -1
	a.tracker.Clear()
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Info(format, args...)
	}
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Warn(format, args...)
	}
}

func (a *App) logError(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Error(format, args...)
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.scheduleReminderTick())
}

func (a *App) scheduleReminderTick() tea.Cmd {
	return tea.Tick(reminderTickInterval, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case reminderTickMsg:
		return a, tea.Batch(a.handleReminderTick(time.Time(msg)), a.scheduleReminderTick())

	case assistantReplyMsg:
		a.handleAssistantReply(msg)
		return a, nil

	case tea.MouseMsg:
		if a.state == stateRoster && !a.readOnly {
			a.handleMouse(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case stateAuth:
			return a.updateAuth(msg)
		case stateRoster:
			return a.updateRoster(msg)
		case stateEditor:
			return a.updateEditor(msg)
		case stateNote:
			return a.updateNote(msg)
		case stateAssistant:
			return a.updateAssistant(msg)
		case stateDigest, stateWeekly:
			if msg.String() == "esc" || msg.String() == "q" {
				a.state = stateRoster
			}
			return a, nil
		case stateAdmin:
			return a.updateAdmin(msg)
		}
	}
	return a, nil
}

// handleReminderTick opens the digest view once per day at the
// configured send time. It never touches the schedule.
func (a *App) handleReminderTick(now time.Time) tea.Cmd {
	if a.state != stateRoster {
		return nil
	}
	hour, minute := a.config.DigestSendTime()
	if now.Hour() != hour || now.Minute() != minute {
		return nil
	}
	today := roster.FormatDate(now)
	if a.reminderShown == today {
		return nil
	}
	a.reminderShown = today
	a.openDigest(now)
	a.statusMsg = "翌日予定の送信時刻です"
	a.logInfo("Digest reminder fired for %s", today)
	return nil
}

func (a *App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		entered := a.authInput.Value()
		a.authInput.SetValue("")
		switch entered {
		case a.config.AdminPassword():
			a.readOnly = false
			a.state = stateRoster
			a.logInfo("Login · admin")
		case a.config.ViewerPassword():
			a.readOnly = true
			a.state = stateRoster
			a.logInfo("Login · viewer")
		default:
			a.authErr = "パスワードが間違っています。"
			a.logWarn("Login rejected")
		}
		return a, nil
	case "esc":
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.authInput, cmd = a.authInput.Update(msg)
	return a, cmd
}

// selectionOrCursor returns the active selection, falling back to the
// cursor cell. Nil when the roster is empty and nothing is selected.
func (a *App) selectionOrCursor() []roster.SelectedCell {
	if cells := a.tracker.Selected(); len(cells) > 0 {
		return cells
	}
	cell, ok := a.cursorCell()
	if !ok {
		return nil
	}
	return []roster.SelectedCell{cell}
}

// cursorCell resolves the cursor to a cell. ok is false when the roster
// has no employees. The indices are re-clamped because the admin screen
// can shrink the roster underneath the cursor.
func (a *App) cursorCell() (roster.SelectedCell, bool) {
	if len(a.employees) == 0 || len(a.dates) == 0 {
		return roster.SelectedCell{}, false
	}
	row := clamp(a.cursorRow, 0, len(a.employees)-1)
	col := clamp(a.cursorCol, 0, len(a.dates)-1)
	return roster.SelectedCell{
		EmployeeID: a.employees[row].ID,
		Date:       a.dates[col],
	}, true
}

func (a *App) moveCursor(dRow, dCol int, extend bool) {
	if len(a.employees) == 0 || len(a.dates) == 0 {
		return
	}
	if extend && a.rangeAnchor < 0 {
		a.rangeAnchor = a.cursorCol
	}
	if !extend {
		a.rangeAnchor = -1
	}
	a.cursorRow = clamp(a.cursorRow+dRow, 0, len(a.employees)-1)
	a.cursorCol = clamp(a.cursorCol+dCol, 0, len(a.dates)-1)
	if extend {
		// A keyboard range always covers one employee row.
		emp := a.employees[a.cursorRow].ID
		dates := roster.DatesBetween(a.dates[a.rangeAnchor], a.dates[a.cursorCol])
		cells := make([]roster.SelectedCell, 0, len(dates))
		for _, d := range dates {
			cells = append(cells, roster.SelectedCell{EmployeeID: emp, Date: d})
		}
		a.tracker.Select(cells...)
	}
}

func (a *App) updateRoster(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		a.tracker.Clear()
		a.rangeAnchor = -1
		a.moveSource = nil
		a.copySource = nil
		a.statusMsg = ""
		return a, nil
	case "up", "k":
		a.moveCursor(-1, 0, false)
	case "down", "j":
		a.moveCursor(1, 0, false)
	case "left", "h":
		a.moveCursor(0, -1, false)
	case "right", "l":
		a.moveCursor(0, 1, false)
	case "shift+left":
		a.moveCursor(0, -1, true)
	case "shift+right":
		a.moveCursor(0, 1, true)
	case "[":
		y, m := prevMonth(a.year, a.month)
		a.setMonth(y, m)
	case "]":
		y, m := nextMonth(a.year, a.month)
		a.setMonth(y, m)
	case " ":
		cell, ok := a.cursorCell()
		if !ok {
			return a, nil
		}
		if a.tracker.IsSelected(cell.EmployeeID, cell.Date) {
			var kept []roster.SelectedCell
			for _, c := range a.tracker.Selected() {
				if c != cell {
					kept = append(kept, c)
				}
			}
			a.tracker.Select(kept...)
		} else {
			a.tracker.Select(append(a.tracker.Selected(), cell)...)
		}
	case "enter":
		if a.readOnly {
			a.statusMsg = "閲覧モードでは編集できません"
			return a, nil
		}
		a.openEditor()
	case "e":
		if a.readOnly {
			return a, nil
		}
		a.openNoteEditor(a.dates[a.cursorCol])
	case "d", "backspace", "delete":
		if a.readOnly {
			return a, nil
		}
		a.store.Delete(a.selectionOrCursor()...)
		a.statusMsg = "削除しました"
	case "c":
		a.clipboard.Capture(a.store.Data(), a.selectionOrCursor(), roster.CopyAll)
		a.statusMsg = "コピーしました（全て）"
	case "C":
		a.clipboard.Capture(a.store.Data(), a.selectionOrCursor(), roster.CopyShift)
		a.statusMsg = "コピーしました（シフトのみ）"
	case "n":
		a.clipboard.Capture(a.store.Data(), a.selectionOrCursor(), roster.CopyNote)
		a.statusMsg = "コピーしました（メモのみ）"
	case "p":
		if a.readOnly {
			return a, nil
		}
		a.clipboard.Paste(a.store, a.selectionOrCursor())
		a.statusMsg = "貼り付けました"
	case "m":
		if a.readOnly {
			return a, nil
		}
		a.handleMoveKey()
	case "x":
		if a.readOnly {
			return a, nil
		}
		a.handleDuplicateKey()
	case "g":
		a.openAssistant()
	case "t":
		a.openDigest(a.now())
	case "w":
		a.openWeekly(digest.ProgramAsadre)
	case "W":
		a.openWeekly(digest.ProgramCatch)
	case "a":
		if a.readOnly {
			a.statusMsg = "閲覧モードでは設定を変更できません"
			return a, nil
		}
		a.admin = newAdminView(a)
		a.state = stateAdmin
	case "E":
		a.exportSheet()
	case "I":
		if a.readOnly {
			return a, nil
		}
		a.importSheet()
	}
	return a, nil
}

// handleMoveKey marks the cursor cell as move source on first press and
// performs the destructive move on the second.
func (a *App) handleMoveKey() {
	cell, ok := a.cursorCell()
	if !ok {
		return
	}
	if a.moveSource == nil {
		src := cell
		a.moveSource = &src
		a.statusMsg = "移動先を選んでもう一度 m"
		return
	}
	a.store.Move(a.moveSource.EmployeeID, a.moveSource.Date, cell.EmployeeID, cell.Date)
	a.logInfo("Move %s/%s -> %s/%s", a.moveSource.EmployeeID, a.moveSource.Date, cell.EmployeeID, cell.Date)
	a.moveSource = nil
	a.statusMsg = "移動しました"
}

func (a *App) handleDuplicateKey() {
	cell, ok := a.cursorCell()
	if !ok {
		return
	}
	if a.copySource == nil {
		src := cell
		a.copySource = &src
		a.statusMsg = "複製先を選んでもう一度 x"
		return
	}
	a.store.Copy(a.copySource.EmployeeID, a.copySource.Date, cell.EmployeeID, cell.Date)
	a.copySource = nil
	a.statusMsg = "複製しました"
}

func (a *App) openEditor() {
	cells := a.selectionOrCursor()
	if len(cells) == 0 {
		return
	}
	if len(a.tracker.Selected()) == 0 {
		a.tracker.Select(cells...)
	}
	primary := cells[0]
	current := a.store.Data().Entry(primary.Date, primary.EmployeeID)
	a.editor = newEditorView(a.shiftTypes, current)
	a.state = stateEditor
}

func (a *App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, save, cmd := a.editor.Update(msg)
	if !done {
		return a, cmd
	}
	if save {
		ids, note, prod, travel := a.editor.Result()
		a.store.ApplyEdit(a.tracker.Selected(), ids, note, prod, travel)
		a.logInfo("Edit applied to %d cell(s)", len(a.tracker.Selected()))
		a.statusMsg = "保存しました"
	}
	a.editor = nil
	a.state = stateRoster
	return a, nil
}

func (a *App) openNoteEditor(date string) {
	a.noteDate = date
	a.noteInput.SetValue(a.dailyNotes[date])
	a.noteInput.Focus()
	a.state = stateNote
}

func (a *App) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(a.noteInput.Value())
		if value == "" {
			delete(a.dailyNotes, a.noteDate)
		} else {
			a.dailyNotes[a.noteDate] = value
		}
		if err := a.records.SaveDailyNotes(a.dailyNotes); err != nil {
			a.logError("save daily notes: %v", err)
		}
		a.state = stateRoster
		return a, nil
	case "esc":
		a.state = stateRoster
		return a, nil
	}
	var cmd tea.Cmd
	a.noteInput, cmd = a.noteInput.Update(msg)
	return a, cmd
}

func (a *App) openDigest(base time.Time) {
	a.digestText = digest.Daily(a.store.Data(), a.employees, base)
	a.state = stateDigest
}

func (a *App) openWeekly(program digest.Program) {
	start, end := digest.WeekRange(a.now())
	a.weeklyText = digest.Weekly(a.store.Data(), a.employees, program, start, end)
	a.state = stateWeekly
}

func (a *App) exportSheet() {
	path := a.exportPath()
	err := sheet.Export(path, a.year, a.month, a.employees, a.store.Data(), a.shiftTypes)
	if err != nil {
		a.statusMsg = "出力に失敗しました: " + err.Error()
		a.logError("export: %v", err)
		return
	}
	a.statusMsg = "出力しました: " + path
	a.logInfo("Exported %s", path)
}

func (a *App) importSheet() {
	path := a.exportPath()
	imported, err := sheet.Import(path, a.year, a.month, a.employees, a.shiftTypes)
	if err != nil {
		a.statusMsg = "読み込みに失敗しました: " + err.Error()
		a.logError("import: %v", err)
		return
	}
	a.store.Replace(imported)
	a.statusMsg = "読み込みました: " + path
	a.logInfo("Imported %s", path)
}

func (a *App) exportPath() string {
	return filepath.Join(a.config.ExportsDir(), fmt.Sprintf("勤務表_%d_%d.xlsx", a.year, int(a.month)))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// View renders the current state to a string.
func (a *App) View() string {
	switch a.state {
	case stateAuth:
		return a.renderAuth()
	case stateEditor:
		return a.editor.View(a.width)
	case stateNote:
		return a.renderNote()
	case stateAssistant:
		return a.assistPane.View(a.width)
	case stateDigest:
		return renderTextPane("翌日の予定メール", a.digestText)
	case stateWeekly:
		return renderTextPane("週間予定", a.weeklyText)
	case stateAdmin:
		return a.admin.View()
	default:
		return a.renderRoster()
	}
}

func (a *App) renderAuth() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("スマート勤務表")
	lines := []string{title, "", "パスワードを入力してください", a.authInput.View()}
	if a.authErr != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Render(a.authErr))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
	return box
}

func (a *App) renderNote() string {
	head := fmt.Sprintf("%s の連絡事項", a.noteDate)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(1, 2).
		Render(head + "\n\n" + a.noteInput.View() + "\n\nEnter → 保存    Esc → キャンセル")
}

func renderTextPane(title, body string) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(title)
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("Esc → 戻る")
	return lipgloss.JoinVertical(lipgloss.Left, head, "", body, hint)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, _ := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG · " + filepath.Base(a.logbook.Path()))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + body)
}

// holidayBadge renders the rest-day counter for one employee, blank for
// staff outside holiday management.
func (a *App) holidayBadge(emp roster.Employee) string {
	if !emp.HolidayManaged {
		return ""
	}
	taken, balance := roster.RestDayBalance(emp.ID, a.dates, roster.RestShiftIDs(), a.store.Data(), a.requiredHolidayCount)
	badge := fmt.Sprintf("休:%d", taken)
	if balance < 0 {
		badge += "(" + strconv.Itoa(balance) + ")"
	}
	return badge
}
