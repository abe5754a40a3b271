package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/logger"
	"tripforge/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, ownerID string, req request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	GetItinerary(ctx context.Context, id string) (*response_models.ItineraryDetailResponse, error)
	ListByUser(ctx context.Context, userID string, query request_models.ListItinerariesQuery) ([]response_models.ItineraryResponse, error)
	ListAll(ctx context.Context, query request_models.ListItinerariesQuery) ([]response_models.ItineraryResponse, error)
	UpdateItinerary(ctx context.Context, id string, req request_models.UpdateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	DeleteItinerary(ctx context.Context, id string) error

	AddActivity(ctx context.Context, itineraryID, dayID string, req request_models.ActivityRequest) (*response_models.ItineraryDetailResponse, error)
	UpdateActivity(ctx context.Context, itineraryID, dayID, activityID string, req request_models.UpdateActivityRequest) (*response_models.ItineraryDetailResponse, error)
	DeleteActivity(ctx context.Context, itineraryID, dayID, activityID string) (*response_models.ItineraryDetailResponse, error)

	OwnerOf(ctx context.Context, itineraryID string) (string, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	planner       ActivityPlanner
	notifier      NotificationServiceInterface
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	planner ActivityPlanner,
	notifier NotificationServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		planner:       planner,
		notifier:      notifier,
	}
}

// recomputeCosts restores the cost invariant by whole-sum: every day total
// is the sum of its activity costs, the itinerary total is the sum of the
// day totals. No incremental deltas, so a partial update can never drift.
func recomputeCosts(it *dbm.Itinerary) {
	total := 0.0
	for i := range it.Days {
		dayTotal := 0.0
		for _, a := range it.Days[i].Activities {
			dayTotal += a.Cost
		}
		it.Days[i].TotalCost = dayTotal
		total += dayTotal
	}
	it.TotalCost = total
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, ownerID string, req request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if startDate.After(endDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if req.Budget <= 0 {
		return nil, utils.ErrInvalidBudget
	}

	dayCount := utils.DaysBetween(startDate, endDate)
	days := make([]dbm.DayPlan, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		day := dbm.DayPlan{
			Date:      startDate.AddDate(0, 0, i),
			DayNumber: i + 1,
		}
		if req.AutoGenerate {
			day.Activities = s.planner.PlanDay(req.Preferences)
		}
		days = append(days, day)
	}

	itinerary := &dbm.Itinerary{
		UserID:       owner,
		Title:        req.Title,
		Destination:  req.Destination,
		StartDate:    startDate,
		EndDate:      endDate,
		Budget:       req.Budget,
		Preferences:  req.Preferences,
		Status:       dbm.TripDraft,
		ReviewStatus: dbm.ReviewDraft,
		IsPublic:     false,
		Days:         days,
	}
	recomputeCosts(itinerary)

	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		logger.Error("insert itinerary failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ItineraryService) ListByUser(ctx context.Context, userID string, query request_models.ListItinerariesQuery) ([]response_models.ItineraryResponse, error) {
	items, err := s.itineraryRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("list itineraries failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	return buildListResponse(items, query), nil
}

func (s *ItineraryService) ListAll(ctx context.Context, query request_models.ListItinerariesQuery) ([]response_models.ItineraryResponse, error) {
	items, err := s.itineraryRepo.ListAll(ctx)
	if err != nil {
		logger.Error("list itineraries failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	return buildListResponse(items, query), nil
}

func buildListResponse(items []dbm.Itinerary, query request_models.ListItinerariesQuery) []response_models.ItineraryResponse {
	filtered := ApplyItineraryFilters(items, FiltersFromQuery(query))
	out := make([]response_models.ItineraryResponse, 0, len(filtered))
	for i := range filtered {
		out = append(out, dbm.BuildItineraryResponse(&filtered[i]))
	}
	return out
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, id string, req request_models.UpdateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadAggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		itinerary.Title = *req.Title
	}
	if req.Destination != nil {
		itinerary.Destination = *req.Destination
	}
	if req.Budget != nil {
		itinerary.Budget = *req.Budget
	}
	if req.Status != nil {
		itinerary.Status = dbm.TripStatus(*req.Status)
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		logger.Error("update itinerary failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, id string) error {
	itinerary, err := s.loadAggregate(ctx, id)
	if err != nil {
		return err
	}

	if err := s.itineraryRepo.Delete(ctx, itinerary.ID.String()); err != nil {
		logger.Error("delete itinerary failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, itineraryID, dayID string, req request_models.ActivityRequest) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadAggregate(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	day := findDay(itinerary, dayID)
	if day == nil {
		return nil, utils.ErrDayNotFound
	}

	activity := dbm.Activity{
		DayPlanID:       day.ID,
		Name:            req.Name,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		Cost:            req.Cost,
		Category:        dbm.ActivityCategory(req.Category),
		Notes:           req.Notes,
		Position:        nextPosition(day),
	}

	if err := s.itineraryRepo.InsertActivity(ctx, &activity); err != nil {
		logger.Error("insert activity failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	day.Activities = append(day.Activities, activity)

	return s.commitCosts(ctx, itinerary)
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, itineraryID, dayID, activityID string, req request_models.UpdateActivityRequest) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadAggregate(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	day := findDay(itinerary, dayID)
	if day == nil {
		return nil, utils.ErrDayNotFound
	}

	activity := findActivity(day, activityID)
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.StartTime != nil {
		activity.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = *req.EndTime
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.Cost != nil {
		activity.Cost = *req.Cost
	}
	if req.Category != nil {
		activity.Category = dbm.ActivityCategory(*req.Category)
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	if err := s.itineraryRepo.UpdateActivity(ctx, activity); err != nil {
		logger.Error("update activity failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	return s.commitCosts(ctx, itinerary)
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, itineraryID, dayID, activityID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadAggregate(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	day := findDay(itinerary, dayID)
	if day == nil {
		return nil, utils.ErrDayNotFound
	}

	activity := findActivity(day, activityID)
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if err := s.itineraryRepo.DeleteActivity(ctx, activity.ID); err != nil {
		logger.Error("delete activity failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	// The remainder keeps its relative order; the day itself stays even
	// when it ends up empty.
	kept := day.Activities[:0]
	for _, a := range day.Activities {
		if a.ID != activity.ID {
			kept = append(kept, a)
		}
	}
	day.Activities = kept

	return s.commitCosts(ctx, itinerary)
}

func (s *ItineraryService) OwnerOf(ctx context.Context, itineraryID string) (string, error) {
	itinerary, err := s.loadAggregate(ctx, itineraryID)
	if err != nil {
		return "", err
	}
	return itinerary.UserID.String(), nil
}

// commitCosts recomputes the derived totals, persists them, and emits a
// budget warning when this mutation pushed the plan over budget.
func (s *ItineraryService) commitCosts(ctx context.Context, itinerary *dbm.Itinerary) (*response_models.ItineraryDetailResponse, error) {
	wasOver := itinerary.TotalCost > itinerary.Budget

	recomputeCosts(itinerary)
	itinerary.UpdatedAt = time.Now().Unix()

	if err := s.itineraryRepo.SaveCosts(ctx, itinerary); err != nil {
		logger.Error("save costs failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	if !wasOver && itinerary.TotalCost > itinerary.Budget {
		relatedID := itinerary.ID
		if err := s.notifier.Add(ctx, itinerary.UserID, dbm.NotificationBudgetWarning,
			"Budget Exceeded",
			fmt.Sprintf("Your itinerary %q now costs %.2f against a budget of %.2f.",
				itinerary.Title, itinerary.TotalCost, itinerary.Budget),
			&relatedID); err != nil {
			logger.Warn("budget warning notification failed", logger.Err(err))
		}
	}

	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ItineraryService) loadAggregate(ctx context.Context, id string) (*dbm.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		logger.Error("load itinerary failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

func findDay(itinerary *dbm.Itinerary, dayID string) *dbm.DayPlan {
	for i := range itinerary.Days {
		if itinerary.Days[i].ID.String() == dayID {
			return &itinerary.Days[i]
		}
	}
	return nil
}

// nextPosition returns a position strictly above every existing one, so an
// append never collides with a survivor of an earlier delete.
func nextPosition(day *dbm.DayPlan) int {
	next := 0
	for _, a := range day.Activities {
		if a.Position >= next {
			next = a.Position + 1
		}
	}
	return next
}

func findActivity(day *dbm.DayPlan, activityID string) *dbm.Activity {
	for i := range day.Activities {
		if day.Activities[i].ID.String() == activityID {
			return &day.Activities[i]
		}
	}
	return nil
}
