package review_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/config"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideReviewService)

func provideReviewService(
	cfg *config.Config,
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	notifier services.NotificationServiceInterface,
	mailer services.IMailService,
) services.ReviewServiceInterface {
	return services.NewReviewService(itineraryRepo, accountRepo, notifier, mailer, cfg.App.BaseURL)
}
