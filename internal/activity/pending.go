package activity

import "github.com/rcliao/activity-tracker/internal/model"

// PendingAction is a mutation awaiting confirmation. It is either nil,
// a PendingEdit, or a PendingDelete.
type PendingAction interface {
	pending()
}

// PendingEdit replaces the mutable fields of the record with ID.
type PendingEdit struct {
	ID           string
	Title        string
	Date         model.Date
	ActivityType model.Category
}

// PendingDelete removes the record with ID.
type PendingDelete struct {
	ID string
}

func (PendingEdit) pending()   {}
func (PendingDelete) pending() {}

// Outcome describes what a confirmed action did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdded
	OutcomeUpdated
	OutcomeDeleted
)

// Message is the success report shown to the user.
func (o Outcome) Message() string {
	switch o {
	case OutcomeAdded:
		return "Activity added"
	case OutcomeUpdated:
		return "Activity updated"
	case OutcomeDeleted:
		return "Activity deleted"
	}
	return ""
}
