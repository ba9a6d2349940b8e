package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/activity-tracker/internal/model"
)

func TestHints(t *testing.T) {
	assert.Empty(t, Hints("Hello", model.CategoryHobby))
	assert.Empty(t, Hints("Olahraga pagi", model.CategoryMental))

	assert.Equal(t, []string{HintTitleTooShort}, Hints("Hell", model.CategoryHobby))
	assert.Equal(t, []string{HintCategoryRequired}, Hints("Hello", ""))
	assert.Equal(t, []string{HintTitleTooShort, HintCategoryRequired}, Hints("", ""))
	assert.Equal(t, []string{`unknown category "Olahraga"`}, Hints("Hello", "Olahraga"))
}

func TestValidCountsCharacters(t *testing.T) {
	// four runes, more than five bytes
	assert.False(t, Valid("日本語の", model.CategoryEducation))
	assert.True(t, Valid("日本語の本", model.CategoryEducation))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("Hello", model.CategorySocial))

	err := Validate("Hi", model.CategorySocial)
	assert.EqualError(t, err, "validation failed: "+HintTitleTooShort)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]model.Activity{
		{ActivityType: model.CategoryHealth, Completed: true},
		{ActivityType: model.CategoryHealth},
		{ActivityType: model.CategorySocial},
		{ActivityType: "Legacy"},
	})
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Len(t, s.Categories, len(model.Categories))
	assert.Equal(t, CategoryCount{Category: model.CategoryHealth, Count: 2, Completed: 1}, s.Categories[0])
	assert.Equal(t, CategoryCount{Category: model.CategorySocial, Count: 1}, s.Categories[4])
}
