package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripforge/cmd/fx/account_fx"
	"tripforge/cmd/fx/config_fx"
	"tripforge/cmd/fx/controllers_fx"
	"tripforge/cmd/fx/dashboard_fx"
	"tripforge/cmd/fx/db_fx"
	"tripforge/cmd/fx/itinerary_fx"
	"tripforge/cmd/fx/mail_fx"
	"tripforge/cmd/fx/notification_fx"
	"tripforge/cmd/fx/review_fx"
	"tripforge/internal/api/controllers"
	"tripforge/internal/config"
	dbm "tripforge/internal/models/db_models"
	"tripforge/pkg/logger"
	"tripforge/pkg/middleware"
	"tripforge/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		notification_fx.Module,
		itinerary_fx.Module,
		review_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Invoke(InitLogger),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func InitLogger(cfg *config.Config) error {
	return logger.Init(cfg.Server.LogLevel)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Server.Port)
				logger.Info("starting HTTP server on " + addr)
				if err := engine.Run(addr); err != nil {
					logger.Error("HTTP server stopped", logger.Err(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenIssuer,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	reviewController *controllers.ReviewController,
	notificationController *controllers.NotificationController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens,
		accountController, itineraryController, reviewController,
		notificationController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenIssuer,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	reviewController *controllers.ReviewController,
	notificationController *controllers.NotificationController,
	dashboardController *controllers.DashboardController) {

	auth := middleware.JWTAuthMiddleware(tokens)
	adminOnly := middleware.RoleMiddleware(dbm.RoleAdmin)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me", auth, accountController.Me)

	itineraryGroup := r.Group("/itineraries", auth)
	itineraryGroup.POST("", itineraryController.Create)
	itineraryGroup.GET("", itineraryController.List)
	itineraryGroup.GET("/all", adminOnly, itineraryController.ListAll)
	itineraryGroup.GET("/:id", itineraryController.Get)
	itineraryGroup.PUT("/:id", itineraryController.Update)
	itineraryGroup.DELETE("/:id", itineraryController.Delete)
	itineraryGroup.POST("/:id/days/:dayId/activities", itineraryController.AddActivity)
	itineraryGroup.PUT("/:id/days/:dayId/activities/:activityId", itineraryController.UpdateActivity)
	itineraryGroup.DELETE("/:id/days/:dayId/activities/:activityId", itineraryController.DeleteActivity)

	reviewGroup := r.Group("/reviews", auth)
	reviewGroup.POST("/submit", reviewController.Submit)
	reviewGroup.POST("/decision", adminOnly, reviewController.Decide)
	reviewGroup.POST("/comments", adminOnly, reviewController.AddComment)
	reviewGroup.POST("/comments/apply", reviewController.ApplySuggestion)
	reviewGroup.POST("/toggle-public", reviewController.TogglePublic)

	notificationGroup := r.Group("/notifications", auth)
	notificationGroup.GET("", notificationController.List)
	notificationGroup.GET("/unread-count", notificationController.UnreadCount)
	notificationGroup.POST("/:id/read", notificationController.MarkRead)
	notificationGroup.POST("/read-all", notificationController.MarkAllRead)
	notificationGroup.DELETE("/:id", notificationController.Delete)

	dashboardGroup := r.Group("/dashboard", auth, adminOnly)
	dashboardGroup.GET("", dashboardController.GetReport)
}
