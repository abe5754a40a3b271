package db_models

import (
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

func BuildItineraryResponse(it *Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:           it.ID.String(),
		Title:        it.Title,
		Destination:  it.Destination,
		StartDate:    utils.FormatDate(it.StartDate),
		EndDate:      utils.FormatDate(it.EndDate),
		Budget:       it.Budget,
		TotalCost:    it.TotalCost,
		Status:       string(it.Status),
		ReviewStatus: string(it.ReviewStatus),
		IsPublic:     it.IsPublic,
		DayCount:     len(it.Days),
		Preferences:  it.Preferences,
		CreatedAt:    it.CreatedAt,
	}
}

func BuildItineraryDetailResponse(it *Itinerary) *response_models.ItineraryDetailResponse {
	days := make([]response_models.DayPlanResponse, 0, len(it.Days))
	for i := range it.Days {
		days = append(days, buildDayPlanResponse(&it.Days[i]))
	}

	comments := make([]response_models.AdminCommentResponse, 0, len(it.AdminComments))
	for i := range it.AdminComments {
		comments = append(comments, BuildAdminCommentResponse(&it.AdminComments[i]))
	}

	return &response_models.ItineraryDetailResponse{
		ID:           it.ID.String(),
		UserID:       it.UserID.String(),
		Title:        it.Title,
		Destination:  it.Destination,
		StartDate:    utils.FormatDate(it.StartDate),
		EndDate:      utils.FormatDate(it.EndDate),
		Budget:       it.Budget,
		Preferences:  it.Preferences,
		Days:         days,
		TotalCost:    it.TotalCost,
		BudgetSummary: response_models.BudgetSummary{
			Budget:     it.Budget,
			TotalCost:  it.TotalCost,
			Remaining:  it.Budget - it.TotalCost,
			OverBudget: it.TotalCost > it.Budget,
		},
		Status:        string(it.Status),
		ReviewStatus:  string(it.ReviewStatus),
		SubmittedAt:   utils.FormatRFC3339Ptr(it.SubmittedAt),
		ReviewedAt:    utils.FormatRFC3339Ptr(it.ReviewedAt),
		ReviewedBy:    it.ReviewedBy,
		IsPublic:      it.IsPublic,
		ShareLink:     it.ShareLink,
		AdminComments: comments,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

func buildDayPlanResponse(day *DayPlan) response_models.DayPlanResponse {
	activities := make([]response_models.ActivityResponse, 0, len(day.Activities))
	for i := range day.Activities {
		a := &day.Activities[i]
		activities = append(activities, response_models.ActivityResponse{
			ID:              a.ID.String(),
			Name:            a.Name,
			Description:     a.Description,
			StartTime:       a.StartTime,
			EndTime:         a.EndTime,
			DurationMinutes: a.DurationMinutes,
			Location:        a.Location,
			Cost:            a.Cost,
			Category:        string(a.Category),
			Notes:           a.Notes,
		})
	}

	return response_models.DayPlanResponse{
		ID:         day.ID.String(),
		Date:       utils.FormatDate(day.Date),
		DayNumber:  day.DayNumber,
		TotalCost:  day.TotalCost,
		Activities: activities,
	}
}

func BuildAdminCommentResponse(c *AdminComment) response_models.AdminCommentResponse {
	return response_models.AdminCommentResponse{
		ID:         c.ID.String(),
		AdminID:    c.AdminID.String(),
		AdminName:  c.AdminName,
		Message:    c.Message,
		Suggestion: c.Suggestion,
		IsApplied:  c.IsApplied,
		CreatedAt:  c.CreatedAt,
	}
}

func BuildNotificationResponse(n *Notification) response_models.NotificationResponse {
	related := ""
	if n.RelatedItineraryID != nil {
		related = n.RelatedItineraryID.String()
	}
	return response_models.NotificationResponse{
		ID:                 n.ID.String(),
		Type:               string(n.Type),
		Title:              n.Title,
		Message:            n.Message,
		RelatedItineraryID: related,
		IsRead:             n.IsRead,
		CreatedAt:          n.CreatedAt,
	}
}
