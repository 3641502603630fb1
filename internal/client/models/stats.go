package models

// Stats is the aggregate counters block shown on the dashboard,
// as returned by GET /api/stats.
type Stats struct {
	ActiveProjects    int `json:"activeProjects"`
	Collaborators     int `json:"collaborators"`
	CompletedProjects int `json:"completedProjects"`
	NewToday          int `json:"newToday"`
}
