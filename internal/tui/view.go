package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/datesel"
)

func (m screenModel) View() string {
	switch m.modal {
	case modalDate:
		return m.place(m.viewDate())
	case modalConfirm:
		return m.place(m.viewConfirm())
	case modalEdit:
		return m.place(renderModalBox(m.width, "Edit activity", m.viewForm("Save changes")+"\n\n"+
			styleMuted().Render("tab: next field   ctrl+s: save   esc: cancel")))
	}

	sections := []string{
		styleTitle().Render("Activities"),
		m.viewForm("Add activity"),
		m.viewFilters(),
		m.viewList(),
		m.viewStatus(),
		styleMuted().Render("tab: next field   ctrl+s: add   f/F: filter   space: done   e: edit   d: delete   q: quit"),
	}
	return strings.Join(sections, "\n\n")
}

func (m screenModel) place(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m screenModel) label(f focus, s string) string {
	if m.focus == f {
		return styleFocused().Render("> " + s)
	}
	return "  " + s
}

func (m screenModel) viewForm(submitLabel string) string {
	category := "(select a category)"
	if c := m.form.selectedCategory(); c != "" {
		category = "< " + string(c) + " >"
	}

	lines := []string{
		m.label(focusTitle, "Title    ") + m.form.title.View(),
		m.label(focusCategory, "Category ") + category,
		m.label(focusDate, "Date     ") + m.form.date.Display(),
	}

	for _, h := range m.form.hints() {
		// an untouched title is not yet an error
		if h == activity.HintTitleTooShort && m.form.title.Value() == "" {
			continue
		}
		lines = append(lines, "  "+styleError().Render(h))
	}

	btn := "[ " + submitLabel + " ]"
	switch {
	case !m.form.valid():
		btn = styleMuted().Render(btn)
	case m.focus == focusSubmit:
		btn = styleChip(true).Render(submitLabel)
	}
	lines = append(lines, m.label(focusSubmit, "")+btn)
	return strings.Join(lines, "\n")
}

func (m screenModel) viewFilters() string {
	var chips []string
	for _, f := range filters() {
		chips = append(chips, styleChip(f == m.mgr.Filter()).Render(string(f)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m screenModel) viewList() string {
	view := m.mgr.FilteredView()
	if len(view) == 0 {
		return styleMuted().Render("  No activities yet.")
	}
	var rows []string
	for i, a := range view {
		mark := "[ ]"
		if a.Completed {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %-10s %-26s %s", mark, a.Date.Display(), a.ActivityType, a.Title)
		if m.focus == focusList && i == m.cursor {
			row = styleSelected().Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m screenModel) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return styleError().Render(m.status)
	}
	return styleSuccess().Render(m.status)
}

func (m screenModel) viewDate() string {
	d, mo, y := m.sel.Staged()
	cell := func(f datesel.Field, v string) string {
		if f == m.dateField {
			return styleChip(true).Render(v)
		}
		return styleChip(false).Render(v)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cell(datesel.FieldDay, fmt.Sprintf("%02d", d)), " / ",
		cell(datesel.FieldMonth, fmt.Sprintf("%02d", mo)), " / ",
		cell(datesel.FieldYear, fmt.Sprintf("%04d", y)),
	)
	help := styleMuted().Render("left/right: field   up/down: change   enter: ok   esc: cancel")
	return renderModalBox(m.width, "Select date", row+"\n\n"+help)
}

func (m screenModel) viewConfirm() string {
	var title, body, confirmLabel string
	switch m.confirm {
	case confirmSaveEdit:
		title, body, confirmLabel = "Confirm changes", "Save the changes to this activity?", "Save"
	case confirmDelete:
		title, body, confirmLabel = "Confirm delete", "Delete this activity?", "Delete"
	case confirmDiscardEdit:
		title, body, confirmLabel = "Discard changes", "Discard the changes to this activity?", "Discard"
	}

	confirm := styleChip(m.confirmFocus == confirmFocusConfirm).Render(confirmLabel)
	cancel := styleChip(m.confirmFocus == confirmFocusCancel).Render("Cancel")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)
	help := styleMuted().Render("y/n   tab: focus   enter: select   esc: cancel")
	return renderModalBox(m.width, title, strings.Join([]string{body, "", controls, "", help}, "\n"))
}
