package goals

// StatusPolicy controls which statuses UpdateGoalStatus may set. Draft is a
// creation-time status unless AllowDraftUpdate is set.
type StatusPolicy struct {
	AllowDraftUpdate bool
}

func (p StatusPolicy) UpdateTargets() []Status {
	targets := []Status{StatusInProgress, StatusCompleted, StatusCancelled}
	if p.AllowDraftUpdate {
		targets = append([]Status{StatusDraft}, targets...)
	}
	return targets
}

func (p StatusPolicy) CanUpdateTo(status Status) bool {
	for _, target := range p.UpdateTargets() {
		if status == target {
			return true
		}
	}
	return false
}
