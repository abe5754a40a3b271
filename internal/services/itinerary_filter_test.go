package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbm "tripforge/internal/models/db_models"
)

func filterFixture() []dbm.Itinerary {
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }
	return []dbm.Itinerary{
		{Title: "Beach Week", Destination: "Algarve", StartDate: day(10), Budget: 1200,
			Status: dbm.TripPlanned, ReviewStatus: dbm.ReviewApproved,
			BaseModel: dbm.BaseModel{CreatedAt: 100}},
		{Title: "City Break", Destination: "Lisbon", StartDate: day(1), Budget: 400,
			Status: dbm.TripDraft, ReviewStatus: dbm.ReviewDraft,
			BaseModel: dbm.BaseModel{CreatedAt: 300}},
		{Title: "Lisbon Food Tour", Destination: "Lisbon", StartDate: day(5), Budget: 800,
			Status: dbm.TripPlanned, ReviewStatus: dbm.ReviewSubmitted,
			BaseModel: dbm.BaseModel{CreatedAt: 200}},
	}
}

func titles(items []dbm.Itinerary) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestFilterSearchMatchesTitleOrDestination(t *testing.T) {
	got := ApplyItineraryFilters(filterFixture(), ItineraryFilters{Search: "lisbon"})
	require.ElementsMatch(t, []string{"City Break", "Lisbon Food Tour"}, titles(got))

	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{Search: "BEACH"})
	require.Equal(t, []string{"Beach Week"}, titles(got))
}

func TestFilterByStatusAndReviewStatus(t *testing.T) {
	got := ApplyItineraryFilters(filterFixture(), ItineraryFilters{Status: "planned"})
	require.Len(t, got, 2)

	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{ReviewStatus: "submitted"})
	require.Equal(t, []string{"Lisbon Food Tour"}, titles(got))
}

func TestFilterBudgetRange(t *testing.T) {
	got := ApplyItineraryFilters(filterFixture(), ItineraryFilters{BudgetMin: 500})
	require.ElementsMatch(t, []string{"Beach Week", "Lisbon Food Tour"}, titles(got))

	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{BudgetMin: 500, BudgetMax: 1000})
	require.Equal(t, []string{"Lisbon Food Tour"}, titles(got))

	// BudgetMax of zero means unbounded above
	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{BudgetMax: 0})
	require.Len(t, got, 3)
}

func TestSortByEachKey(t *testing.T) {
	got := ApplyItineraryFilters(filterFixture(), ItineraryFilters{SortBy: "date", SortOrder: "asc"})
	require.Equal(t, []string{"City Break", "Lisbon Food Tour", "Beach Week"}, titles(got))

	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{SortBy: "budget", SortOrder: "desc"})
	require.Equal(t, []string{"Beach Week", "Lisbon Food Tour", "City Break"}, titles(got))

	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{SortBy: "destination", SortOrder: "asc"})
	require.Equal(t, "Algarve", got[0].Destination)

	got = ApplyItineraryFilters(filterFixture(), ItineraryFilters{SortBy: "created", SortOrder: "desc"})
	require.Equal(t, []string{"City Break", "Lisbon Food Tour", "Beach Week"}, titles(got))
}

func TestSortTiesKeepInputOrder(t *testing.T) {
	got := ApplyItineraryFilters(filterFixture(), ItineraryFilters{SortBy: "destination", SortOrder: "asc"})
	// both Lisbon entries tie, so they keep their relative input order
	require.Equal(t, []string{"Algarve", "Lisbon", "Lisbon"}, []string{got[0].Destination, got[1].Destination, got[2].Destination})
	require.Equal(t, "City Break", got[1].Title)
	require.Equal(t, "Lisbon Food Tour", got[2].Title)
}

func TestApplyFiltersIsPure(t *testing.T) {
	input := filterFixture()
	inputTitles := titles(input)

	first := ApplyItineraryFilters(input, ItineraryFilters{SortBy: "budget", SortOrder: "desc"})
	second := ApplyItineraryFilters(input, ItineraryFilters{SortBy: "budget", SortOrder: "desc"})

	require.Equal(t, titles(first), titles(second))
	require.Equal(t, inputTitles, titles(input)) // input untouched
}

func TestEmptyFiltersReturnEverything(t *testing.T) {
	got := ApplyItineraryFilters(filterFixture(), ItineraryFilters{})
	require.Len(t, got, 3)
}
