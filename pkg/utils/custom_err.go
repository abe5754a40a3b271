package utils

import "errors"

var (
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrDayNotFound          = errors.New("day plan not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrCommentNotFound      = errors.New("admin comment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAccountNotFound      = errors.New("account not found")

	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidBudget    = errors.New("budget must be greater than zero")
	ErrInvalidInput     = errors.New("invalid input")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")

	ErrDatabaseError = errors.New("database error")
)
