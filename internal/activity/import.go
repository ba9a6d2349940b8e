package activity

import (
	"context"

	"github.com/rcliao/activity-tracker/internal/model"
)

// ImportResult counts what Import did with each incoming record.
type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"`
}

// Import appends records whose ids are not yet present. Records failing
// validation are rejected; records without an id get a fresh one. The
// collection is written once, and only when something was imported.
func (m *Manager) Import(ctx context.Context, incoming []model.Activity) (ImportResult, error) {
	var res ImportResult
	seen := make(map[string]bool, len(m.activities)+len(incoming))
	for _, a := range m.activities {
		seen[a.ID] = true
	}

	for _, a := range incoming {
		if a.Date.IsZero() {
			a.Date = model.DateOf(m.now())
		}
		if ValidateRecord(a.Title, a.Date, a.ActivityType) != nil {
			res.Rejected++
			continue
		}
		if a.ID == "" {
			a.ID = m.newID()
		}
		if seen[a.ID] {
			res.Duplicates++
			continue
		}
		seen[a.ID] = true
		m.activities = append(m.activities, a)
		res.Imported++
	}

	m.log.Debug().
		Int("imported", res.Imported).
		Int("duplicates", res.Duplicates).
		Int("rejected", res.Rejected).
		Msg("activities imported")

	if res.Imported == 0 {
		return res, nil
	}
	return res, m.persist(ctx)
}
