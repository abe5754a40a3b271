package controllers_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewDashboardController))
