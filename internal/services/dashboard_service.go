package services

import (
	"context"
	"fmt"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/logger"
	"tripforge/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildReport(ctx context.Context) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
	accountRepo   repositories.AccountRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	accountRepo repositories.AccountRepository,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		accountRepo:   accountRepo,
	}
}

// budgetBuckets are the fixed ranges shown in the admin dashboard chart.
var budgetBuckets = []struct {
	label string
	min   float64
	max   float64
}{
	{"0-500", 0, 500},
	{"500-1000", 500, 1000},
	{"1000-5000", 1000, 5000},
	{"5000+", 5000, 0},
}

func (s *DashboardService) BuildReport(ctx context.Context) (*response_models.DashboardReport, error) {
	report := &response_models.DashboardReport{}

	var err error
	if report.TotalUsers, err = s.accountRepo.CountAll(ctx); err != nil {
		return nil, s.fail("count users", err)
	}
	if report.TotalItineraries, err = s.dashboardRepo.CountItineraries(ctx); err != nil {
		return nil, s.fail("count itineraries", err)
	}
	if report.PendingReviews, err = s.dashboardRepo.CountByReviewStatus(ctx,
		dbm.ReviewSubmitted, dbm.ReviewUnderReview); err != nil {
		return nil, s.fail("count pending reviews", err)
	}
	if report.ApprovedItineraries, err = s.dashboardRepo.CountByReviewStatus(ctx, dbm.ReviewApproved); err != nil {
		return nil, s.fail("count approved", err)
	}
	if report.RejectedItineraries, err = s.dashboardRepo.CountByReviewStatus(ctx, dbm.ReviewRejected); err != nil {
		return nil, s.fail("count rejected", err)
	}

	rows, err := s.dashboardRepo.TopDestinations(ctx, 5)
	if err != nil {
		return nil, s.fail("top destinations", err)
	}
	report.PopularDestinations = make([]response_models.DestinationCount, 0, len(rows))
	for _, row := range rows {
		report.PopularDestinations = append(report.PopularDestinations, response_models.DestinationCount{
			Destination: row.Destination,
			Count:       row.Count,
		})
	}

	report.BudgetDistribution = make([]response_models.BudgetBucketCount, 0, len(budgetBuckets))
	for _, bucket := range budgetBuckets {
		count, err := s.dashboardRepo.CountBudgetsInRange(ctx, bucket.min, bucket.max)
		if err != nil {
			return nil, s.fail("budget distribution", err)
		}
		report.BudgetDistribution = append(report.BudgetDistribution, response_models.BudgetBucketCount{
			Range: bucket.label,
			Count: count,
		})
	}

	return report, nil
}

func (s *DashboardService) fail(step string, err error) error {
	logger.Error(fmt.Sprintf("dashboard: %s failed", step), logger.Err(err))
	return utils.ErrDatabaseError
}
