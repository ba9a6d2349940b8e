// Package activity owns the activity collection: validation, the
// confirm-then-commit edit and delete flow, filtering, and write-through
// persistence to a key-value store.
package activity

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/rcliao/activity-tracker/internal/model"
	"github.com/rcliao/activity-tracker/internal/store"
)

// Manager holds the canonical activity collection. Every mutation is written
// through to the store immediately. A Manager is not safe for concurrent use;
// callers serialize access the way a UI event loop does.
type Manager struct {
	kv      store.KV
	log     zerolog.Logger
	entropy *ulid.MonotonicEntropy
	now     func() time.Time

	activities []model.Activity
	filter     model.Category
	editingID  string
	pending    PendingAction
}

// NewManager returns a Manager backed by kv. Call Load before use.
func NewManager(kv store.KV, log zerolog.Logger) *Manager {
	return &Manager{
		kv:      kv,
		log:     log,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		now:     time.Now,
		filter:  model.FilterAll,
	}
}

func (m *Manager) newID() string {
	return ulid.MustNew(ulid.Timestamp(m.now()), m.entropy).String()
}

// Load replaces the collection with the stored one. A missing key yields an
// empty collection; a read or decode failure yields an empty collection and
// a *LoadError.
func (m *Manager) Load(ctx context.Context) error {
	m.activities = nil

	blob, ok, err := m.kv.Get(ctx, store.ActivitiesKey)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load activities")
		return &LoadError{Err: err}
	}
	if !ok {
		m.log.Debug().Msg("no stored activities")
		return nil
	}

	activities, err := Decode(blob)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to decode activities")
		return &LoadError{Err: err}
	}
	m.activities = activities
	m.log.Debug().Int("count", len(activities)).Msg("activities loaded")
	return nil
}

func (m *Manager) persist(ctx context.Context) error {
	blob, err := Encode(m.activities)
	if err == nil {
		err = m.kv.Set(ctx, store.ActivitiesKey, blob)
	}
	if err != nil {
		m.log.Error().Err(err).Msg("failed to save activities")
		return &SaveError{Err: err}
	}
	return nil
}

// Add validates and appends a new activity. On a *SaveError the activity
// is still part of the collection.
func (m *Manager) Add(ctx context.Context, title string, date model.Date, category model.Category) (model.Activity, error) {
	if err := ValidateRecord(title, date, category); err != nil {
		return model.Activity{}, err
	}

	a := model.Activity{
		ID:           m.newID(),
		Title:        title,
		Date:         date,
		ActivityType: category,
	}
	m.activities = append(m.activities, a)
	m.log.Debug().Str("id", a.ID).Str("category", string(category)).Msg("activity added")

	return a, m.persist(ctx)
}

// Get returns the activity with id.
func (m *Manager) Get(id string) (model.Activity, bool) {
	if i := m.index(id); i >= 0 {
		return m.activities[i], true
	}
	return model.Activity{}, false
}

func (m *Manager) index(id string) int {
	for i := range m.activities {
		if m.activities[i].ID == id {
			return i
		}
	}
	return -1
}

// Activities returns a copy of the collection in insertion order.
func (m *Manager) Activities() []model.Activity {
	out := make([]model.Activity, len(m.activities))
	copy(out, m.activities)
	return out
}

// BeginEdit enters edit mode for id and returns the record so a form can be
// populated from it.
func (m *Manager) BeginEdit(id string) (model.Activity, bool) {
	a, ok := m.Get(id)
	if !ok {
		return model.Activity{}, false
	}
	m.editingID = id
	return a, true
}

// EditingID returns the id in edit mode, or "" when not editing.
func (m *Manager) EditingID() string {
	return m.editingID
}

// CancelEdit leaves edit mode and drops a pending edit.
func (m *Manager) CancelEdit() {
	m.editingID = ""
	if _, ok := m.pending.(PendingEdit); ok {
		m.pending = nil
	}
}

// ProposeEdit validates the new fields and stages them for confirmation.
// Invalid input leaves all state untouched.
func (m *Manager) ProposeEdit(id, title string, date model.Date, category model.Category) error {
	if err := ValidateRecord(title, date, category); err != nil {
		return err
	}
	m.pending = PendingEdit{ID: id, Title: title, Date: date, ActivityType: category}
	return nil
}

// ProposeDelete stages the removal of id for confirmation.
func (m *Manager) ProposeDelete(id string) {
	m.pending = PendingDelete{ID: id}
}

// Pending returns the action awaiting confirmation, or nil.
func (m *Manager) Pending() PendingAction {
	return m.pending
}

// Cancel discards the pending action.
func (m *Manager) Cancel() {
	m.pending = nil
}

// Confirm applies the pending action. A pending action whose id no longer
// matches a record is a no-op and reports OutcomeNone.
func (m *Manager) Confirm(ctx context.Context) (Outcome, error) {
	action := m.pending
	m.pending = nil

	switch p := action.(type) {
	case PendingEdit:
		m.editingID = ""
		i := m.index(p.ID)
		if i < 0 {
			return OutcomeNone, nil
		}
		a := &m.activities[i]
		a.Title = p.Title
		a.Date = p.Date
		a.ActivityType = p.ActivityType
		m.log.Debug().Str("id", p.ID).Msg("activity updated")
		return OutcomeUpdated, m.persist(ctx)

	case PendingDelete:
		i := m.index(p.ID)
		if i < 0 {
			return OutcomeNone, nil
		}
		m.activities = append(m.activities[:i], m.activities[i+1:]...)
		if m.editingID == p.ID {
			m.editingID = ""
		}
		m.log.Debug().Str("id", p.ID).Msg("activity deleted")
		return OutcomeDeleted, m.persist(ctx)

	case nil:
		return OutcomeNone, ErrNoPendingAction
	}
	return OutcomeNone, fmt.Errorf("unknown pending action %T", action)
}

// ToggleCompleted flips the completion flag of id. ok is false when no
// record matches.
func (m *Manager) ToggleCompleted(ctx context.Context, id string) (a model.Activity, ok bool, err error) {
	i := m.index(id)
	if i < 0 {
		return model.Activity{}, false, nil
	}
	m.activities[i].Completed = !m.activities[i].Completed
	m.log.Debug().Str("id", id).Bool("completed", m.activities[i].Completed).Msg("activity toggled")
	return m.activities[i], true, m.persist(ctx)
}

// SetFilter selects the category shown by FilteredView.
func (m *Manager) SetFilter(category model.Category) error {
	if !category.IsFilter() {
		return fmt.Errorf("unknown filter %q", category)
	}
	m.filter = category
	return nil
}

// Filter returns the active category filter.
func (m *Manager) Filter() model.Category {
	return m.filter
}

// FilteredView returns the activities matching the active filter.
func (m *Manager) FilteredView() []model.Activity {
	return Filter(m.activities, m.filter)
}

// Filter returns the activities of the given category in their original
// order, or all of them for model.FilterAll.
func Filter(activities []model.Activity, category model.Category) []model.Activity {
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if category == model.FilterAll || a.ActivityType == category {
			out = append(out, a)
		}
	}
	return out
}

// IsSaveError reports whether err is a write-through failure.
func IsSaveError(err error) bool {
	var se *SaveError
	return errors.As(err, &se)
}
