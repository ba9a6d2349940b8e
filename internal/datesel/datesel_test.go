package datesel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/activity-tracker/internal/model"
)

func fixedClock(y int) func() time.Time {
	return func() time.Time { return time.Date(y, time.June, 15, 12, 0, 0, 0, time.UTC) }
}

func TestCommitClampsToMonthLength(t *testing.T) {
	cases := []struct {
		day, month, year int
		want             model.Date
	}{
		{31, 4, 2024, model.Date{Year: 2024, Month: time.April, Day: 30}},
		{29, 2, 2023, model.Date{Year: 2023, Month: time.February, Day: 28}},
		{31, 2, 2024, model.Date{Year: 2024, Month: time.February, Day: 29}},
		{31, 12, 2022, model.Date{Year: 2022, Month: time.December, Day: 31}},
		{15, 6, 2025, model.Date{Year: 2025, Month: time.June, Day: 15}},
	}
	for _, tc := range cases {
		s := NewWithClock(fixedClock(2024))
		s.Open(model.Date{Year: 2024, Month: time.January, Day: 1})
		require.NoError(t, s.SetDay(tc.day))
		require.NoError(t, s.SetMonth(tc.month))
		require.NoError(t, s.SetYear(tc.year))

		got, err := s.Commit()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d/%d/%d", tc.day, tc.month, tc.year)
		assert.False(t, s.IsOpen())
	}
}

func TestOpenStagesFromWorkingDate(t *testing.T) {
	s := NewWithClock(fixedClock(2024))
	s.Open(model.Date{Year: 2022, Month: time.March, Day: 9})
	d, m, y := s.Staged()
	assert.Equal(t, []int{9, 3, 2022}, []int{d, m, y})

	s.SetDay(20)
	s.Cancel()
	assert.False(t, s.IsOpen())

	s.Open(model.Date{Year: 2022, Month: time.March, Day: 9})
	d, _, _ = s.Staged()
	assert.Equal(t, 9, d)
}

func TestOpenFallsBackToToday(t *testing.T) {
	for _, working := range []model.Date{
		{},
		{Year: 2024, Month: time.February, Day: 30},
		{Year: 2024, Month: 0, Day: 10},
	} {
		s := NewWithClock(fixedClock(2024))
		s.Open(working)
		d, m, y := s.Staged()
		assert.Equal(t, []int{15, 6, 2024}, []int{d, m, y}, "working %+v", working)

		got, err := s.Commit()
		require.NoError(t, err)
		assert.True(t, got.Valid())
	}
}

func TestCommitRequiresOpen(t *testing.T) {
	s := New()
	_, err := s.Commit()
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestYearWindow(t *testing.T) {
	s := NewWithClock(fixedClock(2026))
	years := s.Years()
	require.Len(t, years, 10)
	assert.Equal(t, 2021, years[0])
	assert.Equal(t, 2030, years[9])

	assert.Error(t, s.SetYear(2020))
	assert.Error(t, s.SetYear(2031))
	assert.NoError(t, s.SetYear(2030))
}

func TestSetterRanges(t *testing.T) {
	s := New()
	assert.Error(t, s.SetDay(0))
	assert.Error(t, s.SetDay(32))
	assert.Error(t, s.SetMonth(13))
	assert.Len(t, s.Days(), 31)
	assert.Len(t, s.Months(), 12)
}

func TestStepWraps(t *testing.T) {
	s := NewWithClock(fixedClock(2024))
	s.Open(model.Date{Year: 2028, Month: time.December, Day: 31})

	s.Step(FieldDay, 1)
	s.Step(FieldMonth, 1)
	s.Step(FieldYear, 1)
	d, m, y := s.Staged()
	assert.Equal(t, []int{1, 1, 2019}, []int{d, m, y})

	s.Step(FieldDay, -1)
	s.Step(FieldYear, -1)
	d, _, y = s.Staged()
	assert.Equal(t, 31, d)
	assert.Equal(t, 2028, y)
}

func TestStepFromOutsideWindow(t *testing.T) {
	s := NewWithClock(fixedClock(2024))
	s.Open(model.Date{Year: 2000, Month: time.January, Day: 1})
	s.Step(FieldYear, 1)
	_, _, y := s.Staged()
	assert.Equal(t, 2019, y)

	s.Open(model.Date{Year: 2050, Month: time.January, Day: 1})
	s.Step(FieldYear, -1)
	_, _, y = s.Staged()
	assert.Equal(t, 2028, y)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 1, ClampDay(2024, time.January, 0))
}
