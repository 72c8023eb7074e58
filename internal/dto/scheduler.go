package dto

type SchedulerRunRequestDTO struct {
	DeadlinesOnly bool `json:"deadlines_only" example:"false"`
}

type SchedulerRunResponseDTO struct {
	Resolved             int `json:"resolved" example:"4"`
	ResolveErrors        int `json:"resolve_errors" example:"0"`
	Contributions        int `json:"contributions" example:"12"`
	ContributionFailures int `json:"contribution_failures" example:"1"`
	ContributionErrors   int `json:"contribution_errors" example:"0"`
	Deactivated          int `json:"deactivated_contributions" example:"0"`
}
