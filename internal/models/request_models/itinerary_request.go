package request_models

type CreateItineraryRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Destination string `json:"destination" binding:"required,min=1,max=120"`
	// Plain calendar dates, "2006-01-02"
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      float64  `json:"budget" binding:"required"`
	Preferences []string `json:"preferences" binding:"omitempty,dive,oneof=sightseeing adventure relaxation food transport accommodation other"`
	// When true the planner seeds each day with template activities
	// matching the preferences.
	AutoGenerate bool `json:"auto_generate"`
}

type UpdateItineraryRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=120"`
	Destination *string  `json:"destination" binding:"omitempty,min=1,max=120"`
	Budget      *float64 `json:"budget" binding:"omitempty,gt=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft planned ongoing completed"`
}

type ActivityRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=120"`
	Description     string  `json:"description"`
	StartTime       string  `json:"start_time" binding:"omitempty,len=5"`
	EndTime         string  `json:"end_time" binding:"omitempty,len=5"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,gte=0"`
	Location        string  `json:"location"`
	Cost            float64 `json:"cost" binding:"gte=0"`
	Category        string  `json:"category" binding:"required,oneof=sightseeing adventure relaxation food transport accommodation other"`
	Notes           string  `json:"notes"`
}

type UpdateActivityRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=120"`
	Description     *string  `json:"description"`
	StartTime       *string  `json:"start_time" binding:"omitempty,len=5"`
	EndTime         *string  `json:"end_time" binding:"omitempty,len=5"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gte=0"`
	Location        *string  `json:"location"`
	Cost            *float64 `json:"cost" binding:"omitempty,gte=0"`
	Category        *string  `json:"category" binding:"omitempty,oneof=sightseeing adventure relaxation food transport accommodation other"`
	Notes           *string  `json:"notes"`
}

// ListItinerariesQuery carries the filter/sort parameters for list views.
type ListItinerariesQuery struct {
	Search       string  `form:"search"`
	Destination  string  `form:"destination"`
	Status       string  `form:"status" binding:"omitempty,oneof=draft planned ongoing completed"`
	ReviewStatus string  `form:"review_status" binding:"omitempty,oneof=draft submitted under_review approved rejected"`
	BudgetMin    float64 `form:"budget_min"`
	BudgetMax    float64 `form:"budget_max"`
	SortBy       string  `form:"sort_by" binding:"omitempty,oneof=created date budget destination"`
	SortOrder    string  `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
