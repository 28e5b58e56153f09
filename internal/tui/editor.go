// internal/tui/editor.go
//
// Cell editor and assistant pane. The editor writes the same content to
// every selected cell; detail inputs only appear while their reserved
// shift id is toggled on.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rosterboard/internal/assistant"
	"rosterboard/internal/roster"
)

// editor focus targets, cycled with tab.
const (
	focusCatalogue = iota
	focusNote
	focusProdTime
	focusProdContent
	focusTravelDest
)

type editorView struct {
	catalogue []roster.ShiftType
	selected  map[string]bool
	cursor    int
	focus     int

	note        textinput.Model
	prodTime    textinput.Model
	prodContent textinput.Model
	travelDest  textinput.Model
}

func newEditorView(catalogue []roster.ShiftType, current roster.ShiftEntry) *editorView {
	selected := make(map[string]bool, len(current.ShiftIDs))
	for _, id := range current.ShiftIDs {
		selected[id] = true
	}

	note := textinput.New()
	note.Placeholder = "メモ"
	note.SetValue(current.Note)

	prodTime := textinput.New()
	prodTime.Placeholder = "1300"
	prodContent := textinput.New()
	prodContent.Placeholder = "内容"
	if current.Production != nil {
		prodTime.SetValue(current.Production.Time)
		prodContent.SetValue(current.Production.Content)
	}

	travelDest := textinput.New()
	travelDest.Placeholder = "行き先"
	if current.Travel != nil {
		travelDest.SetValue(current.Travel.Destination)
	}

	return &editorView{
		catalogue:   catalogue,
		selected:    selected,
		note:        note,
		prodTime:    prodTime,
		prodContent: prodContent,
		travelDest:  travelDest,
	}
}

// focusTargets lists the reachable focus stops given the current id set.
func (e *editorView) focusTargets() []int {
	targets := []int{focusCatalogue, focusNote}
	if e.selected[roster.ShiftIDProduction] {
		targets = append(targets, focusProdTime, focusProdContent)
	}
	if e.selected[roster.ShiftIDTravel] {
		targets = append(targets, focusTravelDest)
	}
	return targets
}

func (e *editorView) cycleFocus() {
	targets := e.focusTargets()
	next := targets[0]
	for i, t := range targets {
		if t == e.focus {
			next = targets[(i+1)%len(targets)]
			break
		}
	}
	e.focus = next
	e.note.Blur()
	e.prodTime.Blur()
	e.prodContent.Blur()
	e.travelDest.Blur()
	switch e.focus {
	case focusNote:
		e.note.Focus()
	case focusProdTime:
		e.prodTime.Focus()
	case focusProdContent:
		e.prodContent.Focus()
	case focusTravelDest:
		e.travelDest.Focus()
	}
}

// Update handles one key. done reports the editor is closing; save
// reports the result should be applied.
func (e *editorView) Update(msg tea.KeyMsg) (done, save bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, false, nil
	case "enter":
		return true, true, nil
	case "tab":
		e.cycleFocus()
		return false, false, nil
	}

	if e.focus == focusCatalogue {
		switch msg.String() {
		case "up", "k":
			if e.cursor > 0 {
				e.cursor--
			}
		case "down", "j":
			if e.cursor < len(e.catalogue)-1 {
				e.cursor++
			}
		case " ":
			if len(e.catalogue) == 0 {
				return false, false, nil
			}
			id := e.catalogue[e.cursor].ID
			if e.selected[id] {
				delete(e.selected, id)
			} else {
				e.selected[id] = true
			}
		}
		return false, false, nil
	}

	switch e.focus {
	case focusNote:
		e.note, cmd = e.note.Update(msg)
	case focusProdTime:
		e.prodTime, cmd = e.prodTime.Update(msg)
	case focusProdContent:
		e.prodContent, cmd = e.prodContent.Update(msg)
	case focusTravelDest:
		e.travelDest, cmd = e.travelDest.Update(msg)
	}
	return false, false, cmd
}

// Result returns the entry content to apply. Detail records are only
// produced while their reserved id is in the set; ApplyEdit drops them
// otherwise anyway.
func (e *editorView) Result() (ids []string, note string, prod *roster.ProductionDetail, travel *roster.TravelDetail) {
	for _, st := range e.catalogue {
		if e.selected[st.ID] {
			ids = append(ids, st.ID)
		}
	}
	note = strings.TrimSpace(e.note.Value())
	if e.selected[roster.ShiftIDProduction] {
		prod = &roster.ProductionDetail{
			Time:    strings.TrimSpace(e.prodTime.Value()),
			Content: strings.TrimSpace(e.prodContent.Value()),
		}
	}
	if e.selected[roster.ShiftIDTravel] {
		travel = &roster.TravelDetail{
			Destination: strings.TrimSpace(e.travelDest.Value()),
		}
	}
	return ids, note, prod, travel
}

func (e *editorView) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render("シフト編集"))
	b.WriteString("\n\n")

	for i, st := range e.catalogue {
		mark := "[ ]"
		if e.selected[st.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s（%s）", mark, st.Name, st.ShortName)
		if i == e.cursor && e.focus == focusCatalogue {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nメモ: " + e.note.View() + "\n")
	if e.selected[roster.ShiftIDProduction] {
		b.WriteString("MA時間: " + e.prodTime.View() + "\n")
		b.WriteString("MA内容: " + e.prodContent.View() + "\n")
	}
	if e.selected[roster.ShiftIDTravel] {
		b.WriteString("出張先: " + e.travelDest.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).
		Render("space:選択 tab:項目移動 enter:保存 esc:キャンセル"))
	return b.String()
}

// assistantPane holds the prompt input and the last reply.
type assistantPane struct {
	input   textinput.Model
	waiting bool
	reply   assistant.Response
	err     error
	// True once a proposal is ready to apply with "a".
	proposal bool
}

func newAssistantPane() assistantPane {
	input := textinput.New()
	input.Placeholder = "例: 田中さんを金曜日すべて朝Nにして"
	input.CharLimit = 300
	input.Focus()
	return assistantPane{input: input}
}

func (p assistantPane) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render("AIアシスタント"))
	b.WriteString("\n\n" + p.input.View() + "\n\n")
	switch {
	case p.waiting:
		b.WriteString("問い合わせ中...")
	case p.err != nil:
		b.WriteString(warnStyle.Render("エラー: " + p.err.Error()))
	case p.reply.Message != "":
		b.WriteString(p.reply.Message)
		if p.proposal {
			b.WriteString("\n\n" + lipgloss.NewStyle().Bold(true).Render("a → 変更を適用    esc → 破棄"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("enter:送信 esc:戻る"))
	return b.String()
}

func (a *App) openAssistant() {
	a.assistPane = newAssistantPane()
	a.pendingEdit = nil
	a.state = stateAssistant
}

func (a *App) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.pendingEdit = nil
		a.state = stateRoster
		return a, nil
	case "enter":
		prompt := strings.TrimSpace(a.assistPane.input.Value())
		if prompt == "" || a.assistPane.waiting {
			return a, nil
		}
		a.assistPane.waiting = true
		a.assistPane.err = nil
		a.assistPane.proposal = false
		a.logInfo("Assistant asked: %s", prompt)
		return a, a.requestAssistant(prompt)
	case "a":
		if a.assistPane.proposal && !a.readOnly {
			a.store.ApplyProposal(a.pendingEdit)
			a.logInfo("Assistant proposal applied: %d update(s)", len(a.pendingEdit))
			a.pendingEdit = nil
			a.assistPane.proposal = false
			a.state = stateRoster
			a.statusMsg = "AIの変更を適用しました"
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.assistPane.input, cmd = a.assistPane.input.Update(msg)
	return a, cmd
}

func (a *App) requestAssistant(prompt string) tea.Cmd {
	rc := assistant.Context{
		Year:       a.year,
		Month:      int(a.month),
		Employees:  a.employees,
		ShiftTypes: a.shiftTypes,
		Schedule:   a.store.Data(),
	}
	ask := a.ask
	return func() tea.Msg {
		resp, err := ask(context.Background(), prompt, rc)
		return assistantReplyMsg{resp: resp, err: err}
	}
}

// askGemini lazily builds the real client on first use.
func (a *App) askGemini(ctx context.Context, prompt string, rc assistant.Context) (assistant.Response, error) {
	if a.assistantCl == nil {
		client, err := assistant.New(ctx, a.config.GeminiAPIKey(), a.config.GeminiModel())
		if err != nil {
			return assistant.Response{}, err
		}
		a.assistantCl = client
	}
	return a.assistantCl.Ask(ctx, prompt, rc)
}

func (a *App) handleAssistantReply(msg assistantReplyMsg) {
	a.assistPane.waiting = false
	a.assistPane.err = msg.err
	a.assistPane.reply = msg.resp
	if msg.err != nil {
		a.logError("Assistant error: %v", msg.err)
		return
	}
	switch msg.resp.Type {
	case assistant.TypeUpdate:
		a.pendingEdit = msg.resp.Updates
		a.assistPane.proposal = true
	case assistant.TypeError:
		a.logWarn("Assistant refused: %s", msg.resp.Message)
	}
}
