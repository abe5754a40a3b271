package services

import (
	"sort"
	"strings"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
)

// ItineraryFilters is the full filter/sort state for a list view. Zero
// values mean "no constraint"; BudgetMax <= 0 means unbounded above.
type ItineraryFilters struct {
	Search       string
	Destination  string
	Status       string
	ReviewStatus string
	BudgetMin    float64
	BudgetMax    float64
	SortBy       string // created | date | budget | destination
	SortOrder    string // asc | desc
}

func FiltersFromQuery(q request_models.ListItinerariesQuery) ItineraryFilters {
	return ItineraryFilters{
		Search:       q.Search,
		Destination:  q.Destination,
		Status:       q.Status,
		ReviewStatus: q.ReviewStatus,
		BudgetMin:    q.BudgetMin,
		BudgetMax:    q.BudgetMax,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
	}
}

// ApplyItineraryFilters is a pure function: it never mutates its input and
// applying the same filters twice yields the same output. Ties sort in
// input order.
func ApplyItineraryFilters(items []dbm.Itinerary, filters ItineraryFilters) []dbm.Itinerary {
	result := make([]dbm.Itinerary, 0, len(items))

	search := strings.ToLower(filters.Search)
	destination := strings.ToLower(filters.Destination)

	for _, it := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Title), search) &&
			!strings.Contains(strings.ToLower(it.Destination), search) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(it.Destination), destination) {
			continue
		}
		if filters.Status != "" && string(it.Status) != filters.Status {
			continue
		}
		if filters.ReviewStatus != "" && string(it.ReviewStatus) != filters.ReviewStatus {
			continue
		}
		if it.Budget < filters.BudgetMin {
			continue
		}
		if filters.BudgetMax > 0 && it.Budget > filters.BudgetMax {
			continue
		}
		result = append(result, it)
	}

	sortItineraries(result, filters.SortBy, filters.SortOrder)
	return result
}

func sortItineraries(items []dbm.Itinerary, sortBy, sortOrder string) {
	desc := sortOrder == "desc"

	sort.SliceStable(items, func(i, j int) bool {
		switch sortBy {
		case "date":
			if desc {
				return items[j].StartDate.Before(items[i].StartDate)
			}
			return items[i].StartDate.Before(items[j].StartDate)
		case "budget":
			if desc {
				return items[j].Budget < items[i].Budget
			}
			return items[i].Budget < items[j].Budget
		case "destination":
			cmp := strings.Compare(
				strings.ToLower(items[i].Destination),
				strings.ToLower(items[j].Destination))
			if desc {
				return cmp > 0
			}
			return cmp < 0
		default: // "created"
			if desc {
				return items[j].CreatedAt < items[i].CreatedAt
			}
			return items[i].CreatedAt < items[j].CreatedAt
		}
	})
}
