package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer sentinel errors to HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrItineraryNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidBudget),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	default:
		logger.Error("unhandled service error", logger.Err(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
