package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardRepo)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	accountRepo repositories.AccountRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, accountRepo)
}
