package activity

import "github.com/rcliao/activity-tracker/internal/model"

// Summary holds per-category counts.
type Summary struct {
	Total      int             `json:"total"`
	Completed  int             `json:"completed"`
	Categories []CategoryCount `json:"categories"`
}

// CategoryCount holds counts for one category.
type CategoryCount struct {
	Category  model.Category `json:"category"`
	Count     int            `json:"count"`
	Completed int            `json:"completed"`
}

// Summarize counts activities by category, listing every category in
// display order.
func Summarize(activities []model.Activity) Summary {
	idx := make(map[model.Category]int, len(model.Categories))
	s := Summary{Categories: make([]CategoryCount, len(model.Categories))}
	for i, c := range model.Categories {
		s.Categories[i].Category = c
		idx[c] = i
	}

	for _, a := range activities {
		s.Total++
		if a.Completed {
			s.Completed++
		}
		i, ok := idx[a.ActivityType]
		if !ok {
			continue
		}
		s.Categories[i].Count++
		if a.Completed {
			s.Categories[i].Completed++
		}
	}
	return s
}
