package repository

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) ByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) ByUsername(username string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := r.db.Where("username = ?", username).Find(&meals).Error
	return meals, err
}

func (r *mealRepository) Save(meal *models.Meal) error {
	return r.db.Save(meal).Error
}

func (r *mealRepository) Delete(meal *models.Meal) error {
	return r.db.Delete(meal).Error
}

func (r *mealRepository) TotalCaloriesForDay(username, date string) (int, error) {
	var total int
	err := r.db.Model(&models.Meal{}).
		Where("username = ? AND date = ?", username, date).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	return total, err
}
