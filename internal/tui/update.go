package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/datesel"
	"github.com/rcliao/activity-tracker/internal/model"
)

func (m screenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.modal {
		case modalDate:
			return m.updateDate(msg)
		case modalConfirm:
			return m.updateConfirm(msg)
		case modalEdit:
			return m.updateEdit(msg)
		}
		return m.updateMain(msg)
	}

	if m.focus == focusTitle {
		var cmd tea.Cmd
		m.form.title, cmd = m.form.title.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateForm handles the keys shared by the main form and the edit modal.
// handled is false when the key should fall through.
func (m *screenModel) updateForm(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return true, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return true, nil
	}

	switch m.focus {
	case focusTitle:
		if msg.Type == tea.KeyEnter {
			m.setFocus(focusCategory)
			return true, nil
		}
		var c tea.Cmd
		m.form.title, c = m.form.title.Update(msg)
		return true, c

	case focusCategory:
		switch msg.String() {
		case "right", "l", " ":
			m.stepCategory(1)
			return true, nil
		case "left", "h":
			m.stepCategory(-1)
			return true, nil
		}

	case focusDate:
		switch msg.String() {
		case "enter", " ":
			m.openDate()
			return true, nil
		}
	}
	return false, nil
}

func (m *screenModel) cycleFocus(delta int) {
	last := focusList
	if m.modal == modalEdit {
		last = focusSubmit
	}
	n := int(last) + 1
	m.setFocus(focus(((int(m.focus)+delta)%n + n) % n))
}

func (m *screenModel) stepCategory(delta int) {
	n := len(model.Categories)
	if m.form.category < 0 {
		if delta > 0 {
			m.form.category = 0
		} else {
			m.form.category = n - 1
		}
		return
	}
	m.form.category = ((m.form.category+delta)%n + n) % n
}

func (m *screenModel) openDate() {
	m.sel.Open(m.form.date)
	m.dateField = datesel.FieldDay
	m.modalReturn = m.modal
	m.modal = modalDate
}

func (m screenModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus != focusTitle {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "f":
			m.stepFilter(1)
			return m, nil
		case "F":
			m.stepFilter(-1)
			return m, nil
		}
	}
	if msg.String() == "ctrl+s" {
		m.submitAdd()
		return m, nil
	}

	if m.focus == focusList {
		m.updateList(msg)
		return m, nil
	}
	if m.focus == focusSubmit && msg.Type == tea.KeyEnter {
		m.submitAdd()
		return m, nil
	}

	_, cmd := m.updateForm(msg)
	return m, cmd
}

func (m *screenModel) stepFilter(delta int) {
	fs := filters()
	cur := 0
	for i, f := range fs {
		if f == m.mgr.Filter() {
			cur = i
		}
	}
	next := fs[((cur+delta)%len(fs)+len(fs))%len(fs)]
	_ = m.mgr.SetFilter(next)
	m.cursor = 0
}

func (m *screenModel) submitAdd() {
	if !m.form.valid() {
		m.alert(&activity.ValidationError{Hints: m.form.hints()})
		return
	}
	_, err := m.mgr.Add(m.ctx, m.form.title.Value(), m.form.date, m.form.selectedCategory())
	if err != nil && !activity.IsSaveError(err) {
		m.alert(err)
		return
	}
	m.report(activity.OutcomeAdded, err)
	m.form.reset()
	m.setFocus(focusTitle)
	m.clampCursor()
}

func (m *screenModel) updateList(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.mgr.FilteredView())-1 {
			m.cursor++
		}
	case " ", "x":
		a, ok := m.selected()
		if !ok {
			return
		}
		if _, _, err := m.mgr.ToggleCompleted(m.ctx, a.ID); err != nil {
			m.alert(err)
		}
	case "e", "enter":
		a, ok := m.selected()
		if !ok {
			return
		}
		if rec, ok := m.mgr.BeginEdit(a.ID); ok {
			m.form.fill(rec)
			m.modal = modalEdit
			m.setFocus(focusTitle)
		}
	case "d", "delete":
		a, ok := m.selected()
		if !ok {
			return
		}
		m.mgr.ProposeDelete(a.ID)
		m.askConfirm(confirmDelete)
	}
}

func (m *screenModel) askConfirm(kind confirmKind) {
	m.confirm = kind
	m.confirmFocus = confirmFocusConfirm
	m.modalReturn = m.modal
	m.modal = modalConfirm
}

func (m screenModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.askConfirm(confirmDiscardEdit)
		return m, nil
	case "ctrl+s":
		m.submitEdit()
		return m, nil
	}
	if m.focus == focusSubmit && msg.Type == tea.KeyEnter {
		m.submitEdit()
		return m, nil
	}
	_, cmd := m.updateForm(msg)
	return m, cmd
}

func (m *screenModel) submitEdit() {
	err := m.mgr.ProposeEdit(m.mgr.EditingID(), m.form.title.Value(), m.form.date, m.form.selectedCategory())
	if err != nil {
		m.alert(err)
		return
	}
	m.askConfirm(confirmSaveEdit)
}

func (m screenModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case "y":
		m.resolveConfirm(true)
	case "n", "esc":
		m.resolveConfirm(false)
	case "enter":
		m.resolveConfirm(m.confirmFocus == confirmFocusConfirm)
	}
	return m, nil
}

func (m *screenModel) resolveConfirm(ok bool) {
	m.modal = m.modalReturn
	m.modalReturn = modalNone

	switch m.confirm {
	case confirmSaveEdit:
		if !ok {
			// Back to the edit modal with the user's input intact.
			m.mgr.Cancel()
			return
		}
		outcome, err := m.mgr.Confirm(m.ctx)
		m.report(outcome, err)
		m.closeEdit()

	case confirmDelete:
		if !ok {
			m.mgr.Cancel()
			return
		}
		outcome, err := m.mgr.Confirm(m.ctx)
		m.report(outcome, err)
		m.clampCursor()

	case confirmDiscardEdit:
		if ok {
			m.mgr.CancelEdit()
			m.closeEdit()
		}
	}
}

func (m *screenModel) closeEdit() {
	m.modal = modalNone
	m.form.reset()
	m.setFocus(focusList)
	m.clampCursor()
}

func (m screenModel) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "shift+tab":
		if m.dateField > datesel.FieldDay {
			m.dateField--
		}
	case "right", "l", "tab":
		if m.dateField < datesel.FieldYear {
			m.dateField++
		}
	case "up", "k":
		m.sel.Step(m.dateField, 1)
	case "down", "j":
		m.sel.Step(m.dateField, -1)
	case "enter":
		if d, err := m.sel.Commit(); err == nil {
			m.form.date = d
		}
		m.modal = m.modalReturn
	case "esc":
		m.sel.Cancel()
		m.modal = m.modalReturn
	}
	return m, nil
}
