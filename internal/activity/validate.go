package activity

import (
	"fmt"
	"unicode/utf8"

	"github.com/rcliao/activity-tracker/internal/model"
)

// MinTitleLength is the minimum number of characters in a valid title.
const MinTitleLength = 5

const (
	HintTitleTooShort    = "title needs at least 5 characters"
	HintCategoryRequired = "category must be selected"
	HintDateInvalid      = "date must be a real calendar date"
)

// Hints returns the inline hints for the given form input. An empty result
// means the input is valid.
func Hints(title string, category model.Category) []string {
	var hints []string
	if utf8.RuneCountInString(title) < MinTitleLength {
		hints = append(hints, HintTitleTooShort)
	}
	switch {
	case category == "":
		hints = append(hints, HintCategoryRequired)
	case !model.ValidCategories[category]:
		hints = append(hints, fmt.Sprintf("unknown category %q", category))
	}
	return hints
}

// Valid reports whether title and category may be saved.
func Valid(title string, category model.Category) bool {
	return len(Hints(title, category)) == 0
}

// ValidateRecord is Validate plus a check that date is a real calendar
// date, so the stored form matches the one in memory.
func ValidateRecord(title string, date model.Date, category model.Category) error {
	hints := Hints(title, category)
	if !date.Valid() {
		hints = append(hints, HintDateInvalid)
	}
	if len(hints) > 0 {
		return &ValidationError{Hints: hints}
	}
	return nil
}

// Validate returns a *ValidationError when the input is not valid.
func Validate(title string, category model.Category) error {
	if hints := Hints(title, category); len(hints) > 0 {
		return &ValidationError{Hints: hints}
	}
	return nil
}
