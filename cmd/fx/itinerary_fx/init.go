package itinerary_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryRepo, providePlanner)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func providePlanner() services.ActivityPlanner {
	return services.NewTemplatePlanner(time.Now().UnixNano())
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	planner services.ActivityPlanner,
	notifier services.NotificationServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, planner, notifier)
}
