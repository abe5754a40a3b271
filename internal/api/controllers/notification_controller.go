package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/response_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// List godoc
// @Summary List notifications
// @Description Return the authenticated user's notifications, newest first
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [get]
func (n *NotificationController) List(c *gin.Context) {
	notifications, err := n.notificationService.ListForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (n *NotificationController) UnreadCount(c *gin.Context) {
	count, err := n.notificationService.UnreadCount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UnreadCountResponse{UnreadCount: count}, "Unread count fetched successfully")
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (n *NotificationController) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Notification ID is required")
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), id, c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	if err := n.notificationService.MarkAllRead(c.Request.Context(), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

// Delete godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (n *NotificationController) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Notification ID is required")
		return
	}

	if err := n.notificationService.Delete(c.Request.Context(), id, c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted successfully")
}
