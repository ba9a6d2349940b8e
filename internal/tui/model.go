package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/datesel"
	"github.com/rcliao/activity-tracker/internal/model"
)

type modal int

const (
	modalNone modal = iota
	modalDate
	modalEdit
	modalConfirm
)

type focus int

const (
	focusTitle focus = iota
	focusCategory
	focusDate
	focusSubmit
	focusList
)

type confirmKind int

const (
	confirmSaveEdit confirmKind = iota
	confirmDelete
	confirmDiscardEdit
)

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)

// form is the working input for add and edit.
type form struct {
	title    textinput.Model
	category int // index into model.Categories, -1 when unselected
	date     model.Date
}

func newForm() form {
	ti := textinput.New()
	ti.Placeholder = "What are you planning?"
	ti.CharLimit = 120
	return form{title: ti, category: -1, date: model.Today()}
}

func (f form) selectedCategory() model.Category {
	if f.category < 0 {
		return ""
	}
	return model.Categories[f.category]
}

func (f form) hints() []string {
	hints := activity.Hints(f.title.Value(), f.selectedCategory())
	if !f.date.Valid() {
		hints = append(hints, activity.HintDateInvalid)
	}
	return hints
}

func (f form) valid() bool {
	return len(f.hints()) == 0
}

// fill loads a record into the form.
func (f *form) fill(a model.Activity) {
	f.title.SetValue(a.Title)
	f.date = a.Date
	f.category = -1
	for i, c := range model.Categories {
		if c == a.ActivityType {
			f.category = i
		}
	}
}

func (f *form) reset() {
	f.title.SetValue("")
	f.date = model.Today()
	f.category = -1
}

type screenModel struct {
	ctx context.Context
	mgr *activity.Manager
	sel *datesel.Selector

	width  int
	height int

	form  form
	focus focus

	modal        modal
	modalReturn  modal // shown again when the date modal closes
	dateField    datesel.Field
	confirm      confirmKind
	confirmFocus confirmFocus

	cursor int

	status    string
	statusErr bool
}

func newScreenModel(ctx context.Context, mgr *activity.Manager, sel *datesel.Selector, loadErr error) screenModel {
	m := screenModel{
		ctx:  ctx,
		mgr:  mgr,
		sel:  sel,
		form: newForm(),
	}
	m.setFocus(focusTitle)
	if loadErr != nil {
		m.alert(loadErr)
	}
	return m
}

func (m screenModel) Init() tea.Cmd { return textinput.Blink }

func (m *screenModel) setFocus(f focus) {
	m.focus = f
	if f == focusTitle {
		m.form.title.Focus()
	} else {
		m.form.title.Blur()
	}
}

func (m *screenModel) notify(msg string) {
	m.status = msg
	m.statusErr = false
}

// alert turns an error into the status line message.
func (m *screenModel) alert(err error) {
	m.statusErr = true
	var (
		le *activity.LoadError
		se *activity.SaveError
		ve *activity.ValidationError
	)
	switch {
	case errors.As(err, &le):
		m.status = "Error: failed to load activities"
	case errors.As(err, &se):
		m.status = "Error: failed to save activities"
	case errors.As(err, &ve):
		m.status = "Validation failed: " + strings.Join(ve.Hints, "; ")
	default:
		m.status = "Error: " + err.Error()
	}
}

// report shows the success message, or the alert when the write-through
// failed after the mutation was applied.
func (m *screenModel) report(outcome activity.Outcome, err error) {
	if err != nil {
		m.alert(err)
		return
	}
	if msg := outcome.Message(); msg != "" {
		m.notify(msg)
	}
}

func (m *screenModel) clampCursor() {
	n := len(m.mgr.FilteredView())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m screenModel) selected() (model.Activity, bool) {
	view := m.mgr.FilteredView()
	if m.cursor < 0 || m.cursor >= len(view) {
		return model.Activity{}, false
	}
	return view[m.cursor], true
}

// filters lists the filter bar entries.
func filters() []model.Category {
	return append([]model.Category{model.FilterAll}, model.Categories...)
}
