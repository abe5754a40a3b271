package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TripStatus is the user-controlled trip stage, distinct from the review
// workflow status below.
type TripStatus string

const (
	TripDraft     TripStatus = "draft"
	TripPlanned   TripStatus = "planned"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
)

// ReviewStatus tracks the admin review workflow:
// draft -> submitted -> under_review -> approved | rejected.
type ReviewStatus string

const (
	ReviewDraft       ReviewStatus = "draft"
	ReviewSubmitted   ReviewStatus = "submitted"
	ReviewUnderReview ReviewStatus = "under_review"
	ReviewApproved    ReviewStatus = "approved"
	ReviewRejected    ReviewStatus = "rejected"
)

type ActivityCategory string

const (
	CategorySightseeing   ActivityCategory = "sightseeing"
	CategoryAdventure     ActivityCategory = "adventure"
	CategoryRelaxation    ActivityCategory = "relaxation"
	CategoryFood          ActivityCategory = "food"
	CategoryTransport     ActivityCategory = "transport"
	CategoryAccommodation ActivityCategory = "accommodation"
	CategoryOther         ActivityCategory = "other"
)

type Itinerary struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Preferences pq.StringArray `gorm:"type:text[]"`

	// Derived: always the sum of all days' totals, recomputed on every
	// activity mutation.
	TotalCost float64

	Status       TripStatus   `gorm:"default:draft"`
	ReviewStatus ReviewStatus `gorm:"default:draft"`
	SubmittedAt  *time.Time
	ReviewedAt   *time.Time
	ReviewedBy   string
	IsPublic     bool
	ShareLink    string

	Days          []DayPlan      `gorm:"foreignKey:ItineraryID"`
	AdminComments []AdminComment `gorm:"foreignKey:ItineraryID"`
}

type DayPlan struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time
	DayNumber   int

	// Derived: always the sum of this day's activity costs.
	TotalCost float64

	Activities []Activity `gorm:"foreignKey:DayPlanID"`
}

type Activity struct {
	BaseModel
	DayPlanID       uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Description     string
	StartTime       string // "15:04"
	EndTime         string
	DurationMinutes int
	Location        string
	Cost            float64
	Category        ActivityCategory
	Notes           string

	// Position keeps the day's activity ordering stable across deletes.
	Position int
}

type AdminComment struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	AdminID     uuid.UUID `gorm:"type:uuid"`
	AdminName   string
	Message     string
	Suggestion  string
	IsApplied   bool
}
