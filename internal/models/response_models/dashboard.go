package response_models

// DashboardReport aggregates platform-wide review metrics for admins.
type DashboardReport struct {
	TotalUsers          int64               `json:"total_users"`
	TotalItineraries    int64               `json:"total_itineraries"`
	PendingReviews      int64               `json:"pending_reviews"`
	ApprovedItineraries int64               `json:"approved_itineraries"`
	RejectedItineraries int64               `json:"rejected_itineraries"`
	PopularDestinations []DestinationCount  `json:"popular_destinations"`
	BudgetDistribution  []BudgetBucketCount `json:"budget_distribution"`
}

type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

type BudgetBucketCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}
