package services

import (
	"fmt"
	"testing"

	"backend/models"
	"backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServices wires both services against a fresh in-memory sqlite
// database, one per test.
func newTestServices(t *testing.T) (*UserService, *MealService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))

	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)
	return NewUserService(userRepo, mealRepo), NewMealService(mealRepo, userRepo), db
}

func registerTestUser(t *testing.T, users *UserService, username string) *models.User {
	t.Helper()

	// height 180 / weight 80 / level 1 gives a TDEE of 2135
	user, err := users.Register(username, 180, 80, 1)
	require.NoError(t, err)
	return user
}
