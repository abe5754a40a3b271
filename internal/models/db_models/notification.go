package db_models

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationApproval      NotificationType = "approval"
	NotificationRejection     NotificationType = "rejection"
	NotificationSuggestion    NotificationType = "suggestion"
	NotificationBudgetWarning NotificationType = "budget_warning"
	NotificationSubmission    NotificationType = "submission"
	NotificationComment       NotificationType = "comment"
)

// Notification has its own lifecycle: it is not removed when the itinerary
// it references is deleted.
type Notification struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	Type               NotificationType
	Title              string
	Message            string
	RelatedItineraryID *uuid.UUID `gorm:"type:uuid"`
	IsRead             bool
}
