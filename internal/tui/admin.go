// internal/tui/admin.go
//
// Administration screens: employee roster, shift type catalogue,
// per-weekday coverage rules, and the monthly rest-day target. Every
// change is persisted to its record as soon as it is made.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rosterboard/internal/roster"
)

type adminScreen int

const (
	adminMenu adminScreen = iota
	adminEmployees
	adminShifts
	adminRules
	adminCount
)

var adminMenuItems = []string{
	"メンバー管理",
	"シフト管理",
	"必須シフト設定",
	"必要公休数設定",
}

// adminForm is a small sequential input form. Enter advances through
// the fields and commits on the last one.
type adminForm struct {
	title  string
	fields []textinput.Model
	active int
	commit func(values []string)
}

func newAdminForm(title string, commit func([]string), labels ...string) *adminForm {
	fields := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		fields[i] = in
	}
	fields[0].Focus()
	return &adminForm{title: title, fields: fields, commit: commit}
}

func newAdminFormValues(form *adminForm, values ...string) *adminForm {
	for i := range values {
		if i < len(form.fields) {
			form.fields[i].SetValue(values[i])
		}
	}
	return form
}

type adminView struct {
	app    *App
	screen adminScreen
	cursor int

	weekday    int
	ruleCursor int

	form *adminForm
}

func newAdminView(app *App) *adminView {
	return &adminView{app: app, weekday: 1}
}

func (v *adminView) Update(msg tea.KeyMsg) tea.Cmd {
	if v.form != nil {
		return v.updateForm(msg)
	}
	switch v.screen {
	case adminMenu:
		v.updateMenu(msg)
	case adminEmployees:
		v.updateEmployees(msg)
	case adminShifts:
		v.updateShifts(msg)
	case adminRules:
		v.updateRules(msg)
	case adminCount:
		// Count editing always goes through a form.
		v.screen = adminMenu
	}
	return nil
}

func (v *adminView) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.form = nil
		return nil
	case "enter":
		if v.form.active < len(v.form.fields)-1 {
			v.form.fields[v.form.active].Blur()
			v.form.active++
			v.form.fields[v.form.active].Focus()
			return nil
		}
		values := make([]string, len(v.form.fields))
		for i := range v.form.fields {
			values[i] = strings.TrimSpace(v.form.fields[i].Value())
		}
		commit := v.form.commit
		v.form = nil
		commit(values)
		return nil
	}
	var cmd tea.Cmd
	v.form.fields[v.form.active], cmd = v.form.fields[v.form.active].Update(msg)
	return cmd
}

func (v *adminView) updateMenu(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(adminMenuItems)-1 {
			v.cursor++
		}
	case "enter":
		switch v.cursor {
		case 0:
			v.screen = adminEmployees
		case 1:
			v.screen = adminShifts
		case 2:
			v.screen = adminRules
		case 3:
			v.openCountForm()
		}
		v.cursor = 0
	case "esc":
		v.app.state = stateRoster
	}
}

func (v *adminView) openCountForm() {
	app := v.app
	v.form = newAdminFormValues(
		newAdminForm("必要公休数", func(values []string) {
			count, err := strconv.Atoi(values[0])
			if err != nil || count < 0 {
				app.statusMsg = "数値を入力してください"
				return
			}
			app.requiredHolidayCount = count
			if err := app.records.SaveRequiredHolidayCount(count); err != nil {
				app.logError("save holiday count: %v", err)
			}
			app.statusMsg = fmt.Sprintf("必要公休数を %d に設定しました", count)
		}, "公休数"),
		strconv.Itoa(app.requiredHolidayCount),
	)
}

func (v *adminView) saveEmployees() {
	if err := v.app.records.SaveEmployees(v.app.employees); err != nil {
		v.app.logError("save employees: %v", err)
	}
}

func (v *adminView) updateEmployees(msg tea.KeyMsg) {
	app := v.app
	emps := app.employees
	switch msg.String() {
	case "esc":
		v.screen = adminMenu
		v.cursor = 0
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(emps)-1 {
			v.cursor++
		}
	case "a":
		v.form = newAdminForm("メンバー追加", func(values []string) {
			if values[0] == "" {
				return
			}
			app.employees = roster.AddEmployee(app.employees, values[0], values[1])
			v.saveEmployees()
			app.logInfo("Employee added: %s", values[0])
		}, "氏名", "役職")
	case "e":
		if len(emps) == 0 {
			return
		}
		target := emps[v.cursor]
		v.form = newAdminFormValues(
			newAdminForm("メンバー編集", func(values []string) {
				target.Name = values[0]
				target.Role = values[1]
				app.employees = roster.UpdateEmployee(app.employees, target)
				v.saveEmployees()
			}, "氏名", "役職"),
			target.Name, target.Role,
		)
	case "d":
		if len(emps) == 0 {
			return
		}
		removed := emps[v.cursor]
		app.employees = roster.DeleteEmployee(app.employees, removed.ID)
		if v.cursor >= len(app.employees) && v.cursor > 0 {
			v.cursor--
		}
		v.saveEmployees()
		app.logInfo("Employee removed: %s", removed.Name)
	case "K":
		if len(emps) == 0 {
			return
		}
		app.employees = roster.MoveEmployee(app.employees, emps[v.cursor].ID, -1)
		if v.cursor > 0 {
			v.cursor--
		}
		v.saveEmployees()
	case "J":
		if len(emps) == 0 {
			return
		}
		app.employees = roster.MoveEmployee(app.employees, emps[v.cursor].ID, 1)
		if v.cursor < len(app.employees)-1 {
			v.cursor++
		}
		v.saveEmployees()
	case "h":
		if len(emps) == 0 {
			return
		}
		target := emps[v.cursor]
		target.HolidayManaged = !target.HolidayManaged
		app.employees = roster.UpdateEmployee(app.employees, target)
		v.saveEmployees()
	case "v":
		if len(emps) == 0 {
			return
		}
		target := emps[v.cursor]
		target.ShowDivider = !target.ShowDivider
		app.employees = roster.UpdateEmployee(app.employees, target)
		v.saveEmployees()
	}
}

func (v *adminView) saveShiftTypes() {
	if err := v.app.records.SaveShiftTypes(v.app.shiftTypes); err != nil {
		v.app.logError("save shift types: %v", err)
	}
}

func (v *adminView) updateShifts(msg tea.KeyMsg) {
	app := v.app
	types := app.shiftTypes
	switch msg.String() {
	case "esc":
		v.screen = adminMenu
		v.cursor = 0
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(types)-1 {
			v.cursor++
		}
	case "a":
		v.form = newAdminForm("シフト追加", func(values []string) {
			if values[0] == "" {
				return
			}
			short := values[1]
			if short == "" {
				short = values[0]
			}
			app.shiftTypes = roster.AddShiftType(app.shiftTypes, values[0], short, values[2], values[3])
			v.saveShiftTypes()
			app.logInfo("Shift type added: %s", values[0])
		}, "名称", "略称", "背景色", "文字色")
	case "e":
		if len(types) == 0 {
			return
		}
		target := types[v.cursor]
		v.form = newAdminFormValues(
			newAdminForm("シフト編集", func(values []string) {
				target.Name = values[0]
				target.ShortName = values[1]
				target.Color = values[2]
				target.TextColor = values[3]
				app.shiftTypes = roster.UpdateShiftType(app.shiftTypes, target)
				v.saveShiftTypes()
			}, "名称", "略称", "背景色", "文字色"),
			target.Name, target.ShortName, target.Color, target.TextColor,
		)
	case "d":
		if len(types) == 0 {
			return
		}
		removed := types[v.cursor]
		app.shiftTypes = roster.DeleteShiftType(app.shiftTypes, removed.ID)
		if v.cursor >= len(app.shiftTypes) && v.cursor > 0 {
			v.cursor--
		}
		v.saveShiftTypes()
		app.logInfo("Shift type removed: %s", removed.Name)
	case "K":
		if len(types) == 0 {
			return
		}
		app.shiftTypes = roster.MoveShiftType(app.shiftTypes, types[v.cursor].ID, -1)
		if v.cursor > 0 {
			v.cursor--
		}
		v.saveShiftTypes()
	case "J":
		if len(types) == 0 {
			return
		}
		app.shiftTypes = roster.MoveShiftType(app.shiftTypes, types[v.cursor].ID, 1)
		if v.cursor < len(app.shiftTypes)-1 {
			v.cursor++
		}
		v.saveShiftTypes()
	}
}

func (v *adminView) updateRules(msg tea.KeyMsg) {
	app := v.app
	switch msg.String() {
	case "esc":
		v.screen = adminMenu
		v.cursor = 0
	case "left", "h":
		v.weekday = (v.weekday + 6) % 7
	case "right", "l":
		v.weekday = (v.weekday + 1) % 7
	case "up", "k":
		if v.ruleCursor > 0 {
			v.ruleCursor--
		}
	case "down", "j":
		if v.ruleCursor < len(app.shiftTypes)-1 {
			v.ruleCursor++
		}
	case " ":
		if len(app.shiftTypes) == 0 {
			return
		}
		id := app.shiftTypes[v.ruleCursor].ID
		current := app.requiredShifts[v.weekday]
		next := make([]string, 0, len(current)+1)
		found := false
		for _, existing := range current {
			if existing == id {
				found = true
				continue
			}
			next = append(next, existing)
		}
		if !found {
			next = append(next, id)
		}
		if len(next) == 0 {
			delete(app.requiredShifts, v.weekday)
		} else {
			app.requiredShifts[v.weekday] = next
		}
		if err := app.records.SaveRequiredShifts(app.requiredShifts); err != nil {
			app.logError("save required shifts: %v", err)
		}
	}
}

func (a *App) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.admin == nil {
		a.state = stateRoster
		return a, nil
	}
	cmd := a.admin.Update(msg)
	return a, cmd
}

func (v *adminView) View() string {
	head := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render("管理設定")
	var body string
	switch {
	case v.form != nil:
		body = v.renderForm()
	case v.screen == adminMenu:
		body = v.renderMenu()
	case v.screen == adminEmployees:
		body = v.renderEmployees()
	case v.screen == adminShifts:
		body = v.renderShifts()
	case v.screen == adminRules:
		body = v.renderRules()
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, "", body)
}

func (v *adminView) renderForm() string {
	var b strings.Builder
	b.WriteString(v.form.title + "\n\n")
	for i := range v.form.fields {
		marker := "  "
		if i == v.form.active {
			marker = "> "
		}
		b.WriteString(marker + v.form.fields[i].View() + "\n")
	}
	b.WriteString("\nenter:次へ/確定 esc:キャンセル")
	return b.String()
}

func (v *adminView) renderMenu() string {
	var b strings.Builder
	for i, item := range adminMenuItems {
		line := "  " + item
		if i == v.cursor {
			line = cursorStyle.Render("> " + item)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter:選択 esc:戻る")
	return b.String()
}

func (v *adminView) renderEmployees() string {
	var b strings.Builder
	for i, emp := range v.app.employees {
		flags := ""
		if emp.HolidayManaged {
			flags += " 休管理"
		}
		if emp.ShowDivider {
			flags += " 区切"
		}
		line := fmt.Sprintf("  %s（%s）%s", emp.Name, emp.Role, flags)
		if i == v.cursor {
			line = cursorStyle.Render(">" + line[1:])
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\na:追加 e:編集 d:削除 K/J:並替 h:休日管理 v:区切線 esc:戻る")
	return b.String()
}

func (v *adminView) renderShifts() string {
	var b strings.Builder
	for i, st := range v.app.shiftTypes {
		line := fmt.Sprintf("  %s（%s）", st.Name, st.ShortName)
		if i == v.cursor {
			line = cursorStyle.Render(">" + line[1:])
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\na:追加 e:編集 d:削除 K/J:並替 esc:戻る")
	return b.String()
}

func (v *adminView) renderRules() string {
	app := v.app
	required := make(map[string]bool)
	for _, id := range app.requiredShifts[v.weekday] {
		required[id] = true
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s曜日の必須シフト\n\n", weekdayShort[v.weekday]))
	for i, st := range app.shiftTypes {
		mark := "[ ]"
		if required[st.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, st.Name)
		if i == v.ruleCursor {
			line = cursorStyle.Render(">" + line[1:])
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nh/l:曜日 space:切替 esc:戻る")
	return b.String()
}
