package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"tripforge/internal/models/db_models"
)

func TestPlanDayActivityCountAndSlots(t *testing.T) {
	planner := NewTemplatePlanner(42)

	for i := 0; i < 20; i++ {
		activities := planner.PlanDay(nil)
		require.GreaterOrEqual(t, len(activities), 2)
		require.LessOrEqual(t, len(activities), 4)

		for pos, a := range activities {
			require.Equal(t, pos, a.Position)
			require.Equal(t, fmt.Sprintf("%02d:00", 9+pos*3), a.StartTime)
			require.GreaterOrEqual(t, a.Cost, 0.0)
		}
	}
}

func TestPlanDayHonorsPreferences(t *testing.T) {
	planner := NewTemplatePlanner(42)

	for i := 0; i < 20; i++ {
		activities := planner.PlanDay([]string{"food"})
		for _, a := range activities {
			require.Equal(t, db_models.CategoryFood, a.Category)
		}
	}
}

func TestPlanDayFallsBackOnUnknownPreference(t *testing.T) {
	planner := NewTemplatePlanner(42)

	activities := planner.PlanDay([]string{"spelunking"})
	require.NotEmpty(t, activities)
}

func TestPlanDayIsDeterministicPerSeed(t *testing.T) {
	first := NewTemplatePlanner(7).PlanDay([]string{"sightseeing", "food"})
	second := NewTemplatePlanner(7).PlanDay([]string{"sightseeing", "food"})
	require.Equal(t, first, second)
}
