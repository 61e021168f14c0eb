package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"
)

type UserService struct {
	users repository.UserRepository
	meals repository.MealRepository
}

func NewUserService(users repository.UserRepository, meals repository.MealRepository) *UserService {
	return &UserService{users: users, meals: meals}
}

// UserUpdateInput carries a partial update; nil fields are left untouched.
type UserUpdateInput struct {
	Username      *string `json:"username"`
	Height        *int    `json:"height"`
	Weight        *int    `json:"weight"`
	ActivityLevel *int    `json:"activity_level"`
}

// DailySummary is the consumed-vs-budget view of one user on one date.
type DailySummary struct {
	Username          string  `json:"username"`
	Date              string  `json:"date"`
	TDEE              int     `json:"tdee"`
	BMI               float64 `json:"bmi"`
	BMICategory       string  `json:"bmi_category"`
	CaloriesConsumed  int     `json:"calories_consumed"`
	RemainingCalories int     `json:"remaining_calories"`
}

// Register creates a user with its TDEE precomputed. Duplicate usernames are
// rejected before anything is written.
func (s *UserService) Register(username string, height, weight, activityLevel int) (*models.User, error) {
	if _, err := s.users.ByUsername(username); err == nil {
		return nil, &UsernameTakenError{Username: username}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Username:      username,
		Height:        height,
		Weight:        weight,
		ActivityLevel: activityLevel,
		TDEE:          utils.CalculateTDEE(height, weight, activityLevel),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies the supplied fields to the user. TDEE is reassessed only
// when height, weight or activity level is supplied with a value different
// from the stored one; the returned bool reports whether that happened.
// Username changes are applied as-is, with no uniqueness re-check.
func (s *UserService) Update(id uint, input UserUpdateInput) (*models.User, bool, error) {
	user, err := s.users.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	reassess := false
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Height != nil && user.Height != *input.Height {
		user.Height = *input.Height
		reassess = true
	}
	if input.Weight != nil && user.Weight != *input.Weight {
		user.Weight = *input.Weight
		reassess = true
	}
	if input.ActivityLevel != nil && user.ActivityLevel != *input.ActivityLevel {
		user.ActivityLevel = *input.ActivityLevel
		reassess = true
	}

	if reassess {
		user.TDEE = utils.CalculateTDEE(user.Height, user.Weight, user.ActivityLevel)
	}

	if err := s.users.Save(user); err != nil {
		return nil, false, err
	}
	return user, reassess, nil
}

// Delete removes the user. Meals logged under its username stay behind; the
// reference is by value only.
func (s *UserService) Delete(id uint) error {
	user, err := s.users.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.users.Delete(user)
}

// Summary reports TDEE, BMI and the consumed-vs-remaining calories of the
// user for the given date. An empty date means today. Remaining is clamped
// to zero the same way AddMeal clamps it.
func (s *UserService) Summary(id uint, date string) (*DailySummary, error) {
	user, err := s.users.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrBadDate
	}

	consumed, err := s.meals.TotalCaloriesForDay(user.Username, date)
	if err != nil {
		return nil, err
	}

	bmi, err := utils.CalculateBMI(float64(user.Height), float64(user.Weight))
	if err != nil {
		return nil, err
	}

	remaining := user.TDEE - consumed
	if remaining < 0 {
		remaining = 0
	}

	return &DailySummary{
		Username:          user.Username,
		Date:              date,
		TDEE:              user.TDEE,
		BMI:               bmi,
		BMICategory:       utils.BMICategory(bmi),
		CaloriesConsumed:  consumed,
		RemainingCalories: remaining,
	}, nil
}
