package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/datesel"
	"github.com/rcliao/activity-tracker/internal/model"
	"github.com/rcliao/activity-tracker/internal/store"
)

type brokenKV struct{ *store.MemoryStore }

func (brokenKV) Set(context.Context, string, string) error { return errors.New("quota exceeded") }

func newTestScreen(t *testing.T, kv store.KV) screenModel {
	t.Helper()
	if kv == nil {
		kv = store.NewMemoryStore()
	}
	mgr := activity.NewManager(kv, zerolog.Nop())
	require.NoError(t, mgr.Load(context.Background()))
	sel := datesel.NewWithClock(func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) })
	m := newScreenModel(context.Background(), mgr, sel, nil)
	m.width, m.height = 100, 40
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func press(m screenModel, keys ...tea.KeyMsg) screenModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(screenModel)
	}
	return m
}

var day = model.Date{Year: 2024, Month: time.April, Day: 30}

func TestAddThroughForm(t *testing.T) {
	m := newTestScreen(t, nil)

	m = press(m, runes("Morning run"))
	assert.Equal(t, "Morning run", m.form.title.Value())
	assert.False(t, m.form.valid())
	assert.Contains(t, m.View(), activity.HintCategoryRequired)

	m = press(m, keyTab, keyRight)
	assert.Equal(t, model.CategoryHealth, m.form.selectedCategory())
	assert.True(t, m.form.valid())

	m = press(m, keyTab, keyTab, keyEnter)
	require.Len(t, m.mgr.Activities(), 1)
	got := m.mgr.Activities()[0]
	assert.Equal(t, "Morning run", got.Title)
	assert.Equal(t, model.CategoryHealth, got.ActivityType)
	assert.Equal(t, model.Today(), got.Date)

	assert.Equal(t, "Activity added", m.status)
	assert.Empty(t, m.form.title.Value())
	assert.Equal(t, -1, m.form.category)
	assert.Equal(t, focusTitle, m.focus)
}

func TestEmptyFormHidesTitleHint(t *testing.T) {
	m := newTestScreen(t, nil)
	assert.NotContains(t, m.View(), activity.HintTitleTooShort)
	assert.Contains(t, m.View(), activity.HintCategoryRequired)
	assert.False(t, m.form.valid())

	m = press(m, runes("Run"))
	assert.Contains(t, m.View(), activity.HintTitleTooShort)
}

func TestSubmitInvalidShowsAlert(t *testing.T) {
	m := newTestScreen(t, nil)
	m = press(m, runes("Run"), keyCtrlS)

	assert.Empty(t, m.mgr.Activities())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "Validation failed")
	assert.Equal(t, "Run", m.form.title.Value())
}

func TestDateModalClampsOnCommit(t *testing.T) {
	m := newTestScreen(t, nil)
	m.form.date = model.Date{Year: 2024, Month: time.January, Day: 31}

	m = press(m, keyTab, keyTab, keyEnter)
	require.Equal(t, modalDate, m.modal)
	d, mo, y := m.sel.Staged()
	assert.Equal(t, []int{31, 1, 2024}, []int{d, mo, y})

	// month up to February
	m = press(m, keyRight, keyUp, keyEnter)
	assert.Equal(t, modalNone, m.modal)
	assert.Equal(t, model.Date{Year: 2024, Month: time.February, Day: 29}, m.form.date)
}

func TestDateModalCancelKeepsDate(t *testing.T) {
	m := newTestScreen(t, nil)
	m.form.date = day

	m = press(m, keyTab, keyTab, keyEnter, keyUp, keyUp, keyEsc)
	assert.Equal(t, modalNone, m.modal)
	assert.Equal(t, day, m.form.date)

	// reopening stages from the working date again
	m = press(m, keyEnter)
	d, _, _ := m.sel.Staged()
	assert.Equal(t, 30, d)
}

func TestFilterAndToggle(t *testing.T) {
	m := newTestScreen(t, nil)
	ctx := context.Background()
	h, _ := m.mgr.Add(ctx, "Morning run", day, model.CategoryHealth)
	e, _ := m.mgr.Add(ctx, "Read a chapter", day, model.CategoryEducation)

	m = press(m, keyShiftTab)
	require.Equal(t, focusList, m.focus)

	m = press(m, runes("f"))
	assert.Equal(t, model.CategoryHealth, m.mgr.Filter())
	assert.Equal(t, []model.Activity{h}, m.mgr.FilteredView())

	m = press(m, runes("f"))
	assert.Equal(t, model.CategoryEducation, m.mgr.Filter())

	m = press(m, runes("x"))
	got, _ := m.mgr.Get(e.ID)
	assert.True(t, got.Completed)

	m = press(m, runes("F"), runes("F"))
	assert.Equal(t, model.FilterAll, m.mgr.Filter())
	assert.Contains(t, m.View(), "[x]")

	m = press(m, keyDown, keyDown)
	assert.Equal(t, 1, m.cursor)
}

func TestEditConfirmFlow(t *testing.T) {
	m := newTestScreen(t, nil)
	a, _ := m.mgr.Add(context.Background(), "Morning run", day, model.CategoryHealth)

	m = press(m, keyShiftTab, runes("e"))
	require.Equal(t, modalEdit, m.modal)
	assert.Equal(t, a.ID, m.mgr.EditingID())
	assert.Equal(t, "Morning run", m.form.title.Value())
	assert.Equal(t, 0, m.form.category)

	m.form.title.SetValue("Evening run")
	m = press(m, keyCtrlS)
	require.Equal(t, modalConfirm, m.modal)

	// declining returns to the edit modal without applying
	m = press(m, runes("n"))
	assert.Equal(t, modalEdit, m.modal)
	got, _ := m.mgr.Get(a.ID)
	assert.Equal(t, "Morning run", got.Title)

	m = press(m, keyCtrlS, runes("y"))
	assert.Equal(t, modalNone, m.modal)
	assert.Equal(t, "Activity updated", m.status)
	got, _ = m.mgr.Get(a.ID)
	assert.Equal(t, "Evening run", got.Title)
	assert.Empty(t, m.mgr.EditingID())
}

func TestEditRejectsInvalid(t *testing.T) {
	m := newTestScreen(t, nil)
	m.mgr.Add(context.Background(), "Morning run", day, model.CategoryHealth)

	m = press(m, keyShiftTab, runes("e"))
	m.form.title.SetValue("Run")
	m = press(m, keyCtrlS)
	assert.Equal(t, modalEdit, m.modal)
	assert.True(t, m.statusErr)
	assert.Nil(t, m.mgr.Pending())
}

func TestEditDiscard(t *testing.T) {
	m := newTestScreen(t, nil)
	a, _ := m.mgr.Add(context.Background(), "Morning run", day, model.CategoryHealth)

	m = press(m, keyShiftTab, runes("e"), keyEsc)
	require.Equal(t, modalConfirm, m.modal)
	m = press(m, runes("n"))
	assert.Equal(t, modalEdit, m.modal)

	m = press(m, keyEsc, keyEnter)
	assert.Equal(t, modalNone, m.modal)
	assert.Empty(t, m.mgr.EditingID())
	assert.Empty(t, m.form.title.Value())
	got, _ := m.mgr.Get(a.ID)
	assert.Equal(t, a, got)
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestScreen(t, nil)
	m.mgr.Add(context.Background(), "Morning run", day, model.CategoryHealth)

	m = press(m, keyShiftTab, runes("d"))
	require.Equal(t, modalConfirm, m.modal)
	m = press(m, keyEsc)
	assert.Len(t, m.mgr.Activities(), 1)

	m = press(m, runes("d"), keyTab, keyEnter)
	assert.Len(t, m.mgr.Activities(), 1, "enter on cancel keeps the record")

	m = press(m, runes("d"), runes("y"))
	assert.Empty(t, m.mgr.Activities())
	assert.Equal(t, "Activity deleted", m.status)
	assert.Contains(t, m.View(), "No activities yet.")
}

func TestSaveFailureKeepsActivity(t *testing.T) {
	m := newTestScreen(t, brokenKV{store.NewMemoryStore()})

	m = press(m, runes("Morning run"), keyTab, keyRight, keyCtrlS)
	assert.Len(t, m.mgr.Activities(), 1)
	assert.True(t, m.statusErr)
	assert.Equal(t, "Error: failed to save activities", m.status)
}

func TestLoadErrorShownOnStart(t *testing.T) {
	mgr := activity.NewManager(store.NewMemoryStore(), zerolog.Nop())
	m := newScreenModel(context.Background(), mgr, datesel.New(), &activity.LoadError{Err: errors.New("bad json")})
	assert.True(t, m.statusErr)
	assert.Equal(t, "Error: failed to load activities", m.status)
	assert.Contains(t, m.View(), "failed to load activities")
}

func TestQuit(t *testing.T) {
	m := newTestScreen(t, nil)

	// q types into the title field
	next, _ := m.Update(runes("q"))
	assert.Equal(t, "q", next.(screenModel).form.title.Value())

	m = press(m, keyShiftTab)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
