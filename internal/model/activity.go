// Package model defines the core activity data types.
package model

// Activity represents a tracked activity record.
type Activity struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Date         Date     `json:"date"`
	ActivityType Category `json:"activityType"`
	Completed    bool     `json:"completed"`
}

// Category classifies an activity.
type Category string

// The six activity categories. Values are the labels persisted in storage.
const (
	CategoryHealth       Category = "Kesehatan"
	CategoryEducation    Category = "Pendidikan"
	CategoryProductivity Category = "Produktivitas"
	CategoryHobby        Category = "Hobi"
	CategorySocial       Category = "Sosial"
	CategoryMental       Category = "Mental atau spiritualitas"
)

// FilterAll is the filter sentinel selecting every category.
const FilterAll Category = "All"

// Categories lists the categories in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryEducation,
	CategoryProductivity,
	CategoryHobby,
	CategorySocial,
	CategoryMental,
}

// ValidCategories are the allowed activity types.
var ValidCategories = map[Category]bool{
	CategoryHealth:       true,
	CategoryEducation:    true,
	CategoryProductivity: true,
	CategoryHobby:        true,
	CategorySocial:       true,
	CategoryMental:       true,
}

// IsFilter reports whether c is usable as a list filter.
func (c Category) IsFilter() bool {
	return c == FilterAll || ValidCategories[c]
}
