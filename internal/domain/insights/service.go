package insights

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) GetInsights(ctx context.Context) (Report, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return Report{}, err
	}
	return buildReport(snap), nil
}

func buildReport(snap Snapshot) Report {
	report := Report{
		TotalEmployees:      snap.TotalEmployees,
		MinTaskApprovalRate: snap.MinRate,
		MaxTaskApprovalRate: snap.MaxRate,
		AvgTaskApprovalRate: snap.AvgRate,
		GoalsByStatus:       make([]StatusCount, 0, len(snap.GoalsByStatus)),
	}
	if snap.TotalEmployees > 0 {
		report.AvgGoalsPerEmployee = float64(snap.TotalGoals) / float64(snap.TotalEmployees)
	}
	for _, sc := range snap.GoalsByStatus {
		if sc.Count > 0 {
			report.GoalsByStatus = append(report.GoalsByStatus, sc)
		}
	}
	return report
}
