// Package datesel implements a day/month/year picker whose selections are
// staged independently and clamped to a real calendar date on commit.
package datesel

import (
	"errors"
	"fmt"
	"time"

	"github.com/rcliao/activity-tracker/internal/model"
)

const (
	yearsBefore = 5
	yearsAfter  = 4
)

// ErrNotOpen is returned by Commit when the selector was never opened.
var ErrNotOpen = errors.New("date selector is not open")

// Field names one of the three staged selections.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Selector stages a day, month and year.
type Selector struct {
	day, month, year int
	open             bool
	now              func() time.Time
}

// New returns a closed selector whose year window is centred on the
// current year.
func New() *Selector {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an explicit clock.
func NewWithClock(now func() time.Time) *Selector {
	return &Selector{now: now}
}

// Open stages the selections from the working date, or from today when the
// working date is not a real calendar date.
func (s *Selector) Open(working model.Date) {
	if !working.Valid() {
		working = model.DateOf(s.now())
	}
	s.day = working.Day
	s.month = int(working.Month)
	s.year = working.Year
	s.open = true
}

func (s *Selector) IsOpen() bool { return s.open }

// Staged returns the current selections, unclamped.
func (s *Selector) Staged() (day, month, year int) {
	return s.day, s.month, s.year
}

// Days returns the selectable days, 1 through 31.
func (s *Selector) Days() []int { return span(1, 31) }

// Months returns the selectable months, 1 through 12.
func (s *Selector) Months() []int { return span(1, 12) }

// Years returns the selectable years: five before the current year through
// four after it.
func (s *Selector) Years() []int {
	y := s.now().Year()
	return span(y-yearsBefore, y+yearsAfter)
}

func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func (s *Selector) SetDay(d int) error {
	if d < 1 || d > 31 {
		return fmt.Errorf("day %d out of range 1-31", d)
	}
	s.day = d
	return nil
}

func (s *Selector) SetMonth(m int) error {
	if m < 1 || m > 12 {
		return fmt.Errorf("month %d out of range 1-12", m)
	}
	s.month = m
	return nil
}

func (s *Selector) SetYear(y int) error {
	years := s.Years()
	if y < years[0] || y > years[len(years)-1] {
		return fmt.Errorf("year %d out of range %d-%d", y, years[0], years[len(years)-1])
	}
	s.year = y
	return nil
}

// Step moves one selection by delta, wrapping within its options.
func (s *Selector) Step(f Field, delta int) {
	switch f {
	case FieldDay:
		s.day = wrap(s.day, delta, s.Days())
	case FieldMonth:
		s.month = wrap(s.month, delta, s.Months())
	case FieldYear:
		s.year = wrap(s.year, delta, s.Years())
	}
}

func wrap(cur, delta int, options []int) int {
	lo, n := options[0], len(options)
	i := cur - lo
	if i < 0 || i >= n {
		// staged from a date outside the window
		i = 0
		if cur > lo {
			i = n - 1
		}
		if delta > 0 {
			delta--
		} else if delta < 0 {
			delta++
		}
	}
	i = ((i+delta)%n + n) % n
	return options[i]
}

// Commit clamps the staged day to the last day of the staged month and
// returns the resulting date. The selector closes.
func (s *Selector) Commit() (model.Date, error) {
	if !s.open {
		return model.Date{}, ErrNotOpen
	}
	s.open = false
	m := time.Month(s.month)
	return model.Date{Year: s.year, Month: m, Day: ClampDay(s.year, m, s.day)}, nil
}

// Cancel closes the selector and discards the staged selections.
func (s *Selector) Cancel() {
	s.open = false
	s.day, s.month, s.year = 0, 0, 0
}

// DaysInMonth returns the number of days in month m of year y.
func DaysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay limits d to the days of month m in year y.
func ClampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	if max := DaysInMonth(y, m); d > max {
		return max
	}
	return d
}
