package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Create godoc
// @Summary Create an itinerary
// @Description Create a new itinerary with one day plan per calendar day in the range
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary payload"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) Create(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := i.itineraryService.CreateItinerary(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary created successfully")
}

// List godoc
// @Summary List own itineraries
// @Description Fetch the authenticated user's itineraries with filters and sorting
// @Tags Itineraries
// @Produce json
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) List(c *gin.Context) {
	var query request_models.ListItinerariesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	items, err := i.itineraryService.ListByUser(c.Request.Context(), c.GetString("user_id"), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Itineraries fetched successfully")
}

// ListAll godoc
// @Summary List all itineraries
// @Description Admin view over every itinerary, with the same filters as the owner list
// @Tags Itineraries
// @Produce json
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/all [get]
func (i *ItineraryController) ListAll(c *gin.Context) {
	var query request_models.ListItinerariesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	items, err := i.itineraryService.ListAll(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Itineraries fetched successfully")
}

// Get godoc
// @Summary Get itinerary details
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) Get(c *gin.Context) {
	detail, err := i.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Owners and admins always see the plan; everyone else only when it
	// has been shared publicly.
	if detail.UserID != c.GetString("user_id") &&
		c.GetString("role") != db_models.RoleAdmin &&
		!detail.IsPublic {
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary fetched successfully")
}

// Update godoc
// @Summary Update an itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Fields to update"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /itineraries/{id} [put]
func (i *ItineraryController) Update(c *gin.Context) {
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !i.requireOwner(c, c.Param("id")) {
		return
	}

	detail, err := i.itineraryService.UpdateItinerary(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary updated successfully")
}

// Delete godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) Delete(c *gin.Context) {
	if !i.requireOwner(c, c.Param("id")) {
		return
	}

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// AddActivity godoc
// @Summary Add an activity to a day plan
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param dayId path string true "Day plan ID"
// @Param request body request_models.ActivityRequest true "Activity payload"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /itineraries/{id}/days/{dayId}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !i.requireOwner(c, c.Param("id")) {
		return
	}

	detail, err := i.itineraryService.AddActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param dayId path string true "Day plan ID"
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /itineraries/{id}/days/{dayId}/activities/{activityId} [put]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !i.requireOwner(c, c.Param("id")) {
		return
	}

	detail, err := i.itineraryService.UpdateActivity(c.Request.Context(),
		c.Param("id"), c.Param("dayId"), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Remove an activity from a day plan
// @Tags Activities
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param dayId path string true "Day plan ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /itineraries/{id}/days/{dayId}/activities/{activityId} [delete]
func (i *ItineraryController) DeleteActivity(c *gin.Context) {
	if !i.requireOwner(c, c.Param("id")) {
		return
	}

	detail, err := i.itineraryService.DeleteActivity(c.Request.Context(),
		c.Param("id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Activity removed successfully")
}

func (i *ItineraryController) requireOwner(c *gin.Context, itineraryID string) bool {
	owner, err := i.itineraryService.OwnerOf(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return false
	}
	if owner != c.GetString("user_id") {
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		return false
	}
	return true
}
