package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "tripforge/internal/models/db_models"
)

type DashboardRepository interface {
	CountItineraries(ctx context.Context) (int64, error)
	CountByReviewStatus(ctx context.Context, statuses ...dbm.ReviewStatus) (int64, error)
	TopDestinations(ctx context.Context, limit int) ([]DestinationRow, error)
	CountBudgetsInRange(ctx context.Context, min, max float64) (int64, error)
}

type DestinationRow struct {
	Destination string `gorm:"column:destination"`
	Count       int64  `gorm:"column:count"`
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountItineraries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbm.Itinerary{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountByReviewStatus(ctx context.Context, statuses ...dbm.ReviewStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Where("review_status IN ?", statuses).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) TopDestinations(ctx context.Context, limit int) ([]DestinationRow, error) {
	var rows []DestinationRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Select("destination, COUNT(*) AS count").
		Group("destination").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountBudgetsInRange counts itineraries whose budget falls in [min, max).
// A max of zero means unbounded.
func (r *dashboardRepository) CountBudgetsInRange(ctx context.Context, min, max float64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Where("budget >= ?", min)
	if max > 0 {
		q = q.Where("budget < ?", max)
	}
	err := q.Count(&count).Error
	return count, err
}
