package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/repository"
)

type MealService struct {
	meals repository.MealRepository
	users repository.UserRepository
}

func NewMealService(meals repository.MealRepository, users repository.UserRepository) *MealService {
	return &MealService{meals: meals, users: users}
}

// MealUpdateInput carries a partial update; nil fields are left untouched.
// Username doubles as the ownership claim: it must match the meal's stored
// username for the update to be authorized.
type MealUpdateInput struct {
	Name        *string `json:"name"`
	Username    *string `json:"username"`
	Description *string `json:"description"`
	Calories    *int    `json:"calories"`
	Date        *string `json:"date"`
}

// MealLogResult is what AddMeal hands back: the stored meal plus where the
// user now stands against their daily budget.
type MealLogResult struct {
	Meal              *models.Meal
	Message           string
	RemainingCalories int
}

// AddMeal stores a meal for an existing user and reports the remaining
// calories for that date. The day's total is read back after the insert and
// includes the new meal; concurrent adds for the same user and date may each
// see a slightly stale total. Remaining never goes below zero: once the TDEE
// is surpassed the message carries the overage and the value is clamped.
func (s *MealService) AddMeal(name, username, description string, calories int, date string) (*MealLogResult, error) {
	user, err := s.users.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &UnknownUserError{Username: username}
		}
		return nil, err
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	meal := &models.Meal{
		Name:        name,
		Username:    username,
		Description: description,
		Calories:    calories,
		Date:        date,
	}
	if err := s.meals.Create(meal); err != nil {
		return nil, err
	}

	total, err := s.meals.TotalCaloriesForDay(username, date)
	if err != nil {
		return nil, err
	}

	remaining := user.TDEE - total
	message := "Meal added successfully."
	if remaining <= 0 {
		message = fmt.Sprintf("The daily TDEE has been surpassed by %d calories.", -remaining)
		remaining = 0
	}

	return &MealLogResult{Meal: meal, Message: message, RemainingCalories: remaining}, nil
}

func (s *MealService) Get(id uint) (*models.Meal, error) {
	meal, err := s.meals.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meal, nil
}

// ListByUsername returns every meal logged under username, oldest first.
// The match is exact and case-sensitive; an unknown username simply yields
// an empty list.
func (s *MealService) ListByUsername(username string) ([]models.Meal, error) {
	return s.meals.ByUsername(username)
}

// UpdateMeal applies a partial update in a fixed order: authorize against
// the stored username, merge the supplied fields in memory, validate that
// the (possibly changed) username still names a registered user, and only
// then persist. A failed validation leaves the stored meal untouched.
func (s *MealService) UpdateMeal(id uint, input MealUpdateInput) (*models.Meal, error) {
	meal, err := s.meals.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Username == nil || *input.Username != meal.Username {
		return nil, ErrNotMealOwner
	}

	if input.Name != nil {
		meal.Name = *input.Name
	}
	if input.Username != nil {
		meal.Username = *input.Username
	}
	if input.Description != nil {
		meal.Description = *input.Description
	}
	if input.Calories != nil {
		meal.Calories = *input.Calories
	}
	if input.Date != nil {
		meal.Date = *input.Date
	}

	if _, err := s.users.ByUsername(meal.Username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &UnknownUserError{Username: meal.Username}
		}
		return nil, err
	}

	if err := s.meals.Save(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(id uint) error {
	meal, err := s.meals.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.meals.Delete(meal)
}
