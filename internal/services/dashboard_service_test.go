package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/repositories"
)

func TestBuildReportAggregates(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	admin := newTestAccount(t, db, "Admin", "admin@example.com", dbm.RoleAdmin)
	reviews, itineraries, _ := newReviewTestServices(t, db)
	dashboard := NewDashboardService(repositories.NewDashboardRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	create := func(destination string, budget float64) string {
		detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
			Title: "Trip to " + destination, Destination: destination,
			StartDate: "2026-06-01", EndDate: "2026-06-02", Budget: budget,
		})
		require.NoError(t, err)
		return detail.ID
	}

	lisbonA := create("Lisbon", 300)
	lisbonB := create("Lisbon", 700)
	porto := create("Porto", 2000)

	_, err := reviews.SubmitForReview(ctx, lisbonA)
	require.NoError(t, err)
	_, err = reviews.UpdateReviewStatus(ctx, lisbonB, dbm.ReviewApproved, admin.ID.String(), admin.Name)
	require.NoError(t, err)
	_, err = reviews.UpdateReviewStatus(ctx, porto, dbm.ReviewRejected, admin.ID.String(), admin.Name)
	require.NoError(t, err)

	report, err := dashboard.BuildReport(ctx)
	require.NoError(t, err)

	require.EqualValues(t, 2, report.TotalUsers)
	require.EqualValues(t, 3, report.TotalItineraries)
	require.EqualValues(t, 1, report.PendingReviews)
	require.EqualValues(t, 1, report.ApprovedItineraries)
	require.EqualValues(t, 1, report.RejectedItineraries)

	require.NotEmpty(t, report.PopularDestinations)
	require.Equal(t, "Lisbon", report.PopularDestinations[0].Destination)
	require.EqualValues(t, 2, report.PopularDestinations[0].Count)

	buckets := map[string]int64{}
	for _, b := range report.BudgetDistribution {
		buckets[b.Range] = b.Count
	}
	require.EqualValues(t, 1, buckets["0-500"])
	require.EqualValues(t, 1, buckets["500-1000"])
	require.EqualValues(t, 1, buckets["1000-5000"])
	require.EqualValues(t, 0, buckets["5000+"])
}

func TestBuildReportEmptyPlatform(t *testing.T) {
	db := newTestDB(t)
	dashboard := NewDashboardService(repositories.NewDashboardRepository(db), repositories.NewAccountRepository(db))

	report, err := dashboard.BuildReport(context.Background())
	require.NoError(t, err)

	require.Zero(t, report.TotalUsers)
	require.Zero(t, report.TotalItineraries)
	require.Empty(t, report.PopularDestinations)
	require.Len(t, report.BudgetDistribution, 4)
}
