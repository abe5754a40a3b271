package response_models

// ItineraryResponse is the list-view projection of an itinerary.
type ItineraryResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Budget       float64  `json:"budget"`
	TotalCost    float64  `json:"total_cost"`
	Status       string   `json:"status"`
	ReviewStatus string   `json:"review_status"`
	IsPublic     bool     `json:"is_public"`
	DayCount     int      `json:"day_count"`
	Preferences  []string `json:"preferences,omitempty"`
	CreatedAt    int64    `json:"created_at"`
}

type ItineraryDetailResponse struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"user_id"`
	Title         string                 `json:"title"`
	Destination   string                 `json:"destination"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	Budget        float64                `json:"budget"`
	Preferences   []string               `json:"preferences,omitempty"`
	Days          []DayPlanResponse      `json:"days"`
	TotalCost     float64                `json:"total_cost"`
	BudgetSummary BudgetSummary          `json:"budget_summary"`
	Status        string                 `json:"status"`
	ReviewStatus  string                 `json:"review_status"`
	SubmittedAt   string                 `json:"submitted_at,omitempty"`
	ReviewedAt    string                 `json:"reviewed_at,omitempty"`
	ReviewedBy    string                 `json:"reviewed_by,omitempty"`
	IsPublic      bool                   `json:"is_public"`
	ShareLink     string                 `json:"share_link,omitempty"`
	AdminComments []AdminCommentResponse `json:"admin_comments"`
	CreatedAt     int64                  `json:"created_at"`
	UpdatedAt     int64                  `json:"updated_at"`
}

// BudgetSummary is derived on read, never stored.
type BudgetSummary struct {
	Budget     float64 `json:"budget"`
	TotalCost  float64 `json:"total_cost"`
	Remaining  float64 `json:"remaining"`
	OverBudget bool    `json:"over_budget"`
}

type DayPlanResponse struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	DayNumber  int                `json:"day_number"`
	TotalCost  float64            `json:"total_cost"`
	Activities []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	Location        string  `json:"location,omitempty"`
	Cost            float64 `json:"cost"`
	Category        string  `json:"category"`
	Notes           string  `json:"notes,omitempty"`
}

type AdminCommentResponse struct {
	ID         string `json:"id"`
	AdminID    string `json:"admin_id"`
	AdminName  string `json:"admin_name"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	IsApplied  bool   `json:"is_applied"`
	CreatedAt  int64  `json:"created_at"`
}
