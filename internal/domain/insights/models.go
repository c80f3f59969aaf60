package insights

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type Report struct {
	TotalEmployees      int           `json:"totalEmployees"`
	AvgGoalsPerEmployee float64       `json:"avgGoalsPerEmployee"`
	MinTaskApprovalRate float64       `json:"minTaskApprovalRate"`
	MaxTaskApprovalRate float64       `json:"maxTaskApprovalRate"`
	AvgTaskApprovalRate float64       `json:"avgTaskApprovalRate"`
	GoalsByStatus       []StatusCount `json:"goalsByStatus"`
}

// Snapshot holds the raw aggregates read from storage in one transaction.
type Snapshot struct {
	TotalEmployees int
	TotalGoals     int
	MinRate        float64
	MaxRate        float64
	AvgRate        float64
	GoalsByStatus  []StatusCount
}
