package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripforge/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *dbm.Itinerary) error
	FindById(ctx context.Context, id string) (*dbm.Itinerary, error)
	ListByUser(ctx context.Context, userID string) ([]dbm.Itinerary, error)
	ListAll(ctx context.Context) ([]dbm.Itinerary, error)
	Update(ctx context.Context, itinerary *dbm.Itinerary) error
	Delete(ctx context.Context, id string) error

	InsertActivity(ctx context.Context, activity *dbm.Activity) error
	UpdateActivity(ctx context.Context, activity *dbm.Activity) error
	DeleteActivity(ctx context.Context, activityID uuid.UUID) error

	InsertComment(ctx context.Context, comment *dbm.AdminComment) error
	UpdateComment(ctx context.Context, comment *dbm.AdminComment) error

	// SaveCosts persists the recomputed day totals and the itinerary
	// total in one transaction.
	SaveCosts(ctx context.Context, itinerary *dbm.Itinerary) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *dbm.Itinerary) error {
	// Creates days and activities through the association graph.
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindById(ctx context.Context, id string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("AdminComments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID string) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Days").
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) ListAll(ctx context.Context) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Days").
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: false}).
		Omit("Days", "AdminComments").
		Save(itinerary).Error
}

func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subDayIDs := tx.Model(&dbm.DayPlan{}).
			Select("id").
			Where("itinerary_id = ?", id)

		if err := tx.Where("day_plan_id IN (?)", subDayIDs).
			Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).
			Delete(&dbm.DayPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).
			Delete(&dbm.AdminComment{}).Error; err != nil {
			return err
		}
		// Notifications referencing this itinerary are left in place on
		// purpose; they have an independent lifecycle.
		return tx.Where("id = ?", id).Delete(&dbm.Itinerary{}).Error
	})
}

func (r *itineraryRepository) InsertActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) UpdateActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *itineraryRepository) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Delete(&dbm.Activity{}).Error
}

func (r *itineraryRepository) InsertComment(ctx context.Context, comment *dbm.AdminComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *itineraryRepository) UpdateComment(ctx context.Context, comment *dbm.AdminComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *itineraryRepository) SaveCosts(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range itinerary.Days {
			day := &itinerary.Days[i]
			if err := tx.Model(&dbm.DayPlan{}).
				Where("id = ?", day.ID).
				Update("total_cost", day.TotalCost).Error; err != nil {
				return err
			}
		}
		return tx.Model(&dbm.Itinerary{}).
			Where("id = ?", itinerary.ID).
			Updates(map[string]interface{}{
				"total_cost": itinerary.TotalCost,
				"updated_at": itinerary.UpdatedAt,
			}).Error
	})
}
