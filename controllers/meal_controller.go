package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

type addMealInput struct {
	Name        string `json:"name" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Description string `json:"description"`
	Calories    *int   `json:"calories" binding:"required,gte=0"`
	Date        string `json:"date"`
}

// AddMeal handles POST /add_meal.
func (ctl *MealController) AddMeal(c *gin.Context) {
	var input addMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.meals.AddMeal(input.Name, input.Username, input.Description, *input.Calories, input.Date)
	if err != nil {
		var unknown *services.UnknownUserError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            result.Message,
		"meal":               result.Meal,
		"remaining_calories": result.RemainingCalories,
	})
}

// ListMeals handles GET /meals/:username. Unknown usernames yield an empty
// list, not an error.
func (ctl *MealController) ListMeals(c *gin.Context) {
	meals, err := ctl.meals.ListByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GetMeal handles GET /get_meal/:id.
func (ctl *MealController) GetMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	meal, err := ctl.meals.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// UpdateMeal handles PUT /update_meal/:id. The body username must match the
// meal's stored username; a mismatch is rejected before anything is merged.
func (ctl *MealController) UpdateMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.MealUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.UpdateMeal(id, input)
	if err != nil {
		var unknown *services.UnknownUserError
		switch {
		case errors.Is(err, services.ErrNotFound):
			notFound(c)
		case errors.Is(err, services.ErrNotMealOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this meal."})
		case errors.As(err, &unknown):
			c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal handles DELETE /meals/:id.
func (ctl *MealController) DeleteMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.meals.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
