// Package repository wraps all database access behind small interfaces so
// the services can be exercised against any gorm dialect (postgres in
// production, in-memory sqlite in tests).
package repository

import (
	"errors"

	"backend/models"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	Save(user *models.User) error
	Delete(user *models.User) error
}

type MealRepository interface {
	Create(meal *models.Meal) error
	ByID(id uint) (*models.Meal, error)
	ByUsername(username string) ([]models.Meal, error)
	Save(meal *models.Meal) error
	Delete(meal *models.Meal) error
	// TotalCaloriesForDay sums the calories of every meal logged by
	// username on date (YYYY-MM-DD). Zero when there are none.
	TotalCaloriesForDay(username, date string) (int, error)
}
