package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripforge/internal/infra"
	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestAccount(t *testing.T, db *gorm.DB, name, email, role string) *dbm.Account {
	t.Helper()

	account := &dbm.Account{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, repositories.NewAccountRepository(db).Insert(context.Background(), account))
	return account
}

// newTestServices wires the real repositories against an in-memory database
// with a deterministic planner.
func newTestServices(t *testing.T, db *gorm.DB) (ItineraryServiceInterface, NotificationServiceInterface) {
	t.Helper()

	notifier := NewNotificationService(repositories.NewNotificationRepository(db))
	itineraries := NewItineraryService(repositories.NewItineraryRepository(db), NewTemplatePlanner(1), notifier)
	return itineraries, notifier
}
