package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/pkg/utils"
)

func TestCreateItineraryBuildsContiguousDays(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)

	detail, err := itineraries.CreateItinerary(context.Background(), owner.ID.String(), request_models.CreateItineraryRequest{
		Title:       "Summer in Lisbon",
		Destination: "Lisbon",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-03",
		Budget:      1500,
	})
	require.NoError(t, err)

	require.Len(t, detail.Days, 3)
	require.Equal(t, "2026-06-01", detail.Days[0].Date)
	require.Equal(t, "2026-06-02", detail.Days[1].Date)
	require.Equal(t, "2026-06-03", detail.Days[2].Date)
	for i, day := range detail.Days {
		require.Equal(t, i+1, day.DayNumber)
		require.Empty(t, day.Activities)
	}

	require.Equal(t, "draft", detail.Status)
	require.Equal(t, "draft", detail.ReviewStatus)
	require.Zero(t, detail.TotalCost)
	require.False(t, detail.IsPublic)
}

func TestCreateItinerarySingleDay(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)

	detail, err := itineraries.CreateItinerary(context.Background(), owner.ID.String(), request_models.CreateItineraryRequest{
		Title:       "Day trip",
		Destination: "Porto",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-01",
		Budget:      200,
	})
	require.NoError(t, err)
	require.Len(t, detail.Days, 1)
}

func TestCreateItineraryValidation(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	_, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Bad date", Destination: "Rome", StartDate: "June 1st", EndDate: "2026-06-03", Budget: 100,
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Backwards", Destination: "Rome", StartDate: "2026-06-05", EndDate: "2026-06-03", Budget: 100,
	})
	require.ErrorIs(t, err, utils.ErrInvalidDateRange)

	_, err = itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Free trip", Destination: "Rome", StartDate: "2026-06-01", EndDate: "2026-06-03", Budget: 0,
	})
	require.ErrorIs(t, err, utils.ErrInvalidBudget)
}

func TestCreateItineraryAutoGenerate(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)

	detail, err := itineraries.CreateItinerary(context.Background(), owner.ID.String(), request_models.CreateItineraryRequest{
		Title:        "Foodie weekend",
		Destination:  "Bologna",
		StartDate:    "2026-06-01",
		EndDate:      "2026-06-02",
		Budget:       2000,
		Preferences:  []string{"food", "sightseeing"},
		AutoGenerate: true,
	})
	require.NoError(t, err)

	total := 0.0
	for _, day := range detail.Days {
		require.NotEmpty(t, day.Activities)
		require.LessOrEqual(t, len(day.Activities), 4)
		dayTotal := 0.0
		for _, a := range day.Activities {
			dayTotal += a.Cost
		}
		require.InDelta(t, dayTotal, day.TotalCost, 0.001)
		total += dayTotal
	}
	require.InDelta(t, total, detail.TotalCost, 0.001)
}

func TestAddActivityRecomputesCosts(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, notifier := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Budget trip", Destination: "Prague", StartDate: "2026-06-01", EndDate: "2026-06-01", Budget: 1000,
	})
	require.NoError(t, err)
	dayID := detail.Days[0].ID

	detail, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
		Name: "Castle tour", Cost: 600, Category: "sightseeing",
	})
	require.NoError(t, err)
	require.InDelta(t, 600, detail.TotalCost, 0.001)
	require.InDelta(t, 400, detail.BudgetSummary.Remaining, 0.001)
	require.False(t, detail.BudgetSummary.OverBudget)

	detail, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
		Name: "River cruise", Cost: 500, Category: "relaxation",
	})
	require.NoError(t, err)
	require.InDelta(t, 1100, detail.TotalCost, 0.001)
	require.InDelta(t, -100, detail.BudgetSummary.Remaining, 0.001)
	require.True(t, detail.BudgetSummary.OverBudget)

	notifications, err := notifier.ListForUser(ctx, owner.ID.String())
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, string(dbm.NotificationBudgetWarning), notifications[0].Type)
	require.Equal(t, detail.ID, notifications[0].RelatedItineraryID)
}

func TestBudgetWarningFiresOnlyOnCrossing(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, notifier := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Tight budget", Destination: "Vienna", StartDate: "2026-06-01", EndDate: "2026-06-01", Budget: 100,
	})
	require.NoError(t, err)
	dayID := detail.Days[0].ID

	detail, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
		Name: "Opera ticket", Cost: 150, Category: "other",
	})
	require.NoError(t, err)

	// already over budget, a further mutation must not warn again
	_, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
		Name: "Dinner", Cost: 50, Category: "food",
	})
	require.NoError(t, err)

	notifications, err := notifier.ListForUser(ctx, owner.ID.String())
	require.NoError(t, err)
	require.Len(t, notifications, 1)
}

func TestUpdateActivityRecomputesWholeSum(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Trip", Destination: "Berlin", StartDate: "2026-06-01", EndDate: "2026-06-02", Budget: 500,
	})
	require.NoError(t, err)

	detail, err = itineraries.AddActivity(ctx, detail.ID, detail.Days[0].ID, request_models.ActivityRequest{
		Name: "Museum", Cost: 30, Category: "sightseeing",
	})
	require.NoError(t, err)
	detail, err = itineraries.AddActivity(ctx, detail.ID, detail.Days[1].ID, request_models.ActivityRequest{
		Name: "Concert", Cost: 70, Category: "other",
	})
	require.NoError(t, err)
	require.InDelta(t, 100, detail.TotalCost, 0.001)

	newCost := 55.0
	detail, err = itineraries.UpdateActivity(ctx, detail.ID, detail.Days[0].ID, detail.Days[0].Activities[0].ID,
		request_models.UpdateActivityRequest{Cost: &newCost})
	require.NoError(t, err)

	require.InDelta(t, 55, detail.Days[0].TotalCost, 0.001)
	require.InDelta(t, 70, detail.Days[1].TotalCost, 0.001)
	require.InDelta(t, 125, detail.TotalCost, 0.001)
}

func TestDeleteActivityKeepsEmptyDay(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Trip", Destination: "Oslo", StartDate: "2026-06-01", EndDate: "2026-06-01", Budget: 300,
	})
	require.NoError(t, err)
	dayID := detail.Days[0].ID

	detail, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
		Name: "Fjord tour", Cost: 120, Category: "adventure",
	})
	require.NoError(t, err)

	detail, err = itineraries.DeleteActivity(ctx, detail.ID, dayID, detail.Days[0].Activities[0].ID)
	require.NoError(t, err)

	require.Len(t, detail.Days, 1)
	require.Empty(t, detail.Days[0].Activities)
	require.Zero(t, detail.Days[0].TotalCost)
	require.Zero(t, detail.TotalCost)
}

func TestDeleteActivityKeepsRemainderOrder(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Trip", Destination: "Kyoto", StartDate: "2026-06-01", EndDate: "2026-06-01", Budget: 900,
	})
	require.NoError(t, err)
	dayID := detail.Days[0].ID

	for _, name := range []string{"Temple walk", "Tea ceremony", "Market visit"} {
		detail, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
			Name: name, Cost: 10, Category: "sightseeing",
		})
		require.NoError(t, err)
	}

	detail, err = itineraries.DeleteActivity(ctx, detail.ID, dayID, detail.Days[0].Activities[1].ID)
	require.NoError(t, err)

	require.Len(t, detail.Days[0].Activities, 2)
	require.Equal(t, "Temple walk", detail.Days[0].Activities[0].Name)
	require.Equal(t, "Market visit", detail.Days[0].Activities[1].Name)
}

func TestAddAfterDeleteAssignsUniquePositions(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Trip", Destination: "Seville", StartDate: "2026-06-01", EndDate: "2026-06-01", Budget: 500,
	})
	require.NoError(t, err)
	dayID := detail.Days[0].ID

	for _, name := range []string{"Alcazar", "Bullring", "Cathedral"} {
		detail, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
			Name: name, Cost: 10, Category: "sightseeing",
		})
		require.NoError(t, err)
	}

	// delete the head, then append: the newcomer must not reuse a
	// surviving position
	detail, err = itineraries.DeleteActivity(ctx, detail.ID, dayID, detail.Days[0].Activities[0].ID)
	require.NoError(t, err)
	_, err = itineraries.AddActivity(ctx, detail.ID, dayID, request_models.ActivityRequest{
		Name: "Flamenco show", Cost: 25, Category: "other",
	})
	require.NoError(t, err)

	reloaded, err := itineraries.GetItinerary(ctx, detail.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Days[0].Activities, 3)
	require.Equal(t, []string{"Bullring", "Cathedral", "Flamenco show"},
		[]string{reloaded.Days[0].Activities[0].Name, reloaded.Days[0].Activities[1].Name, reloaded.Days[0].Activities[2].Name})

	var rows []dbm.Activity
	require.NoError(t, db.Where("day_plan_id = ?", dayID).Find(&rows).Error)
	seen := map[int]bool{}
	for _, a := range rows {
		require.False(t, seen[a.Position], "position %d assigned twice", a.Position)
		seen[a.Position] = true
	}
}

func TestUpdateItineraryPartialFields(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Old title", Destination: "Madrid", StartDate: "2026-06-01", EndDate: "2026-06-02", Budget: 400,
	})
	require.NoError(t, err)

	title := "New title"
	budget := 800.0
	status := "planned"
	detail, err = itineraries.UpdateItinerary(ctx, detail.ID, request_models.UpdateItineraryRequest{
		Title: &title, Budget: &budget, Status: &status,
	})
	require.NoError(t, err)

	require.Equal(t, "New title", detail.Title)
	require.Equal(t, "Madrid", detail.Destination)
	require.InDelta(t, 800, detail.Budget, 0.001)
	require.Equal(t, "planned", detail.Status)
}

func TestGetItineraryNotFound(t *testing.T) {
	db := newTestDB(t)
	itineraries, _ := newTestServices(t, db)

	_, err := itineraries.GetItinerary(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestDeleteItineraryRemovesAggregate(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Doomed trip", Destination: "Atlantis", StartDate: "2026-06-01", EndDate: "2026-06-02", Budget: 100,
	})
	require.NoError(t, err)

	require.NoError(t, itineraries.DeleteItinerary(ctx, detail.ID))

	_, err = itineraries.GetItinerary(ctx, detail.ID)
	require.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestOwnerOf(t *testing.T) {
	db := newTestDB(t)
	owner := newTestAccount(t, db, "Alice", "alice@example.com", dbm.RoleTraveler)
	itineraries, _ := newTestServices(t, db)
	ctx := context.Background()

	detail, err := itineraries.CreateItinerary(ctx, owner.ID.String(), request_models.CreateItineraryRequest{
		Title: "Trip", Destination: "Bergen", StartDate: "2026-06-01", EndDate: "2026-06-01", Budget: 100,
	})
	require.NoError(t, err)

	got, err := itineraries.OwnerOf(ctx, detail.ID)
	require.NoError(t, err)
	require.Equal(t, owner.ID.String(), got)
}
