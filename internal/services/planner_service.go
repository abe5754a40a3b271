package services

import (
	"fmt"
	"math/rand"

	"tripforge/internal/models/db_models"
)

// ActivityPlanner seeds newly created day plans with activities. It is a
// policy, not part of the aggregate: the itinerary service works the same
// whether days start empty or pre-filled.
type ActivityPlanner interface {
	PlanDay(preferences []string) []db_models.Activity
}

type activityTemplate struct {
	name     string
	category db_models.ActivityCategory
	cost     float64
	location string
	duration int
}

var activityTemplates = []activityTemplate{
	{"Visit Local Museum", db_models.CategorySightseeing, 20, "City Center", 120},
	{"City Walking Tour", db_models.CategorySightseeing, 30, "Old Town", 180},
	{"Mountain Hiking", db_models.CategoryAdventure, 50, "National Park", 240},
	{"Water Sports", db_models.CategoryAdventure, 80, "Marina", 150},
	{"Spa & Wellness", db_models.CategoryRelaxation, 100, "Resort", 120},
	{"Beach Time", db_models.CategoryRelaxation, 0, "Beach", 180},
	{"Local Restaurant", db_models.CategoryFood, 40, "City Center", 90},
	{"Street Food Tour", db_models.CategoryFood, 25, "Night Market", 120},
	{"Airport Transfer", db_models.CategoryTransport, 35, "Airport", 60},
}

type templatePlanner struct {
	rng *rand.Rand
}

// NewTemplatePlanner builds a planner drawing from a fixed activity
// template table. The seed is explicit so tests stay deterministic.
func NewTemplatePlanner(seed int64) ActivityPlanner {
	return &templatePlanner{rng: rand.New(rand.NewSource(seed))}
}

// PlanDay returns 2-4 activities in three-hour slots starting at 09:00.
// When preferences are given only matching templates are drawn; an empty
// or non-matching preference set falls back to the full table.
func (p *templatePlanner) PlanDay(preferences []string) []db_models.Activity {
	pool := filterTemplates(preferences)
	if len(pool) == 0 {
		pool = activityTemplates
	}

	count := p.rng.Intn(3) + 2
	activities := make([]db_models.Activity, 0, count)
	for i := 0; i < count; i++ {
		tpl := pool[p.rng.Intn(len(pool))]
		startHour := 9 + i*3
		activities = append(activities, db_models.Activity{
			Name:            tpl.name,
			Category:        tpl.category,
			Cost:            tpl.cost + float64(p.rng.Intn(20)),
			Location:        tpl.location,
			DurationMinutes: tpl.duration,
			StartTime:       fmt.Sprintf("%02d:00", startHour),
			EndTime:         fmt.Sprintf("%02d:00", startHour+2),
			Position:        i,
		})
	}
	return activities
}

func filterTemplates(preferences []string) []activityTemplate {
	if len(preferences) == 0 {
		return nil
	}
	wanted := make(map[db_models.ActivityCategory]bool, len(preferences))
	for _, p := range preferences {
		wanted[db_models.ActivityCategory(p)] = true
	}
	var out []activityTemplate
	for _, tpl := range activityTemplates {
		if wanted[tpl.category] {
			out = append(out, tpl)
		}
	}
	return out
}
