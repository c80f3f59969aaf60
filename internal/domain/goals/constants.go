package goals

type Status string

const (
	StatusDraft      Status = "Draft"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Statuses lists every value a goal may hold, in lifecycle order.
var Statuses = []Status{StatusDraft, StatusInProgress, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}
