package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type ReviewController struct {
	reviewService    services.ReviewServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewReviewController(
	reviewService services.ReviewServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *ReviewController {
	return &ReviewController{
		reviewService:    reviewService,
		itineraryService: itineraryService,
	}
}

// Submit godoc
// @Summary Submit an itinerary for admin review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.SubmitForReviewRequest true "Itinerary to submit"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /reviews/submit [post]
func (r *ReviewController) Submit(c *gin.Context) {
	var req request_models.SubmitForReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !r.requireOwner(c, req.ItineraryID) {
		return
	}

	detail, err := r.reviewService.SubmitForReview(c.Request.Context(), req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary submitted for review")
}

// Decide godoc
// @Summary Record a review decision
// @Description Admin moves an itinerary to under_review, approved or rejected
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.ReviewDecisionRequest true "Decision payload"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /reviews/decision [post]
func (r *ReviewController) Decide(c *gin.Context) {
	var req request_models.ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := r.reviewService.UpdateReviewStatus(c.Request.Context(),
		req.ItineraryID, db_models.ReviewStatus(req.Status),
		c.GetString("user_id"), c.GetString("user_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Review status updated")
}

// AddComment godoc
// @Summary Leave admin feedback on an itinerary
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.AddAdminCommentRequest true "Comment payload"
// @Success 200 {object} response_models.AdminCommentResponse
// @Security BearerAuth
// @Router /reviews/comments [post]
func (r *ReviewController) AddComment(c *gin.Context) {
	var req request_models.AddAdminCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := r.reviewService.AddAdminComment(c.Request.Context(),
		req.ItineraryID, c.GetString("user_id"), c.GetString("user_name"),
		req.Message, req.Suggestion)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

// ApplySuggestion godoc
// @Summary Acknowledge an admin suggestion
// @Description Marks the suggestion as applied; the plan itself is edited by the owner
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.ApplySuggestionRequest true "Suggestion to acknowledge"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/comments/apply [post]
func (r *ReviewController) ApplySuggestion(c *gin.Context) {
	var req request_models.ApplySuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !r.requireOwner(c, req.ItineraryID) {
		return
	}

	if err := r.reviewService.ApplySuggestion(c.Request.Context(), req.ItineraryID, req.CommentID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Suggestion applied")
}

// TogglePublic godoc
// @Summary Toggle public sharing of an itinerary
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.TogglePublicRequest true "Itinerary to toggle"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /reviews/toggle-public [post]
func (r *ReviewController) TogglePublic(c *gin.Context) {
	var req request_models.TogglePublicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !r.requireOwner(c, req.ItineraryID) {
		return
	}

	detail, err := r.reviewService.TogglePublic(c.Request.Context(), req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Sharing updated")
}

func (r *ReviewController) requireOwner(c *gin.Context, itineraryID string) bool {
	owner, err := r.itineraryService.OwnerOf(c.Request.Context(), itineraryID)
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
