package controllers

import (
	"github.com/gin-gonic/gin"

	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetReport godoc
// @Summary Admin dashboard report
// @Description Aggregate counts over itineraries: review pipeline, top destinations, budget distribution
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetReport(c *gin.Context) {
	report, err := d.dashboardService.BuildReport(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard report built successfully")
}
