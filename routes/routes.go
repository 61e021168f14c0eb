package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(users *controllers.UserController, meals *controllers.MealController, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger(log))

	// Meal routes
	r.POST("/add_meal", meals.AddMeal)
	r.GET("/meals/:username", meals.ListMeals)
	r.GET("/get_meal/:id", meals.GetMeal)
	r.PUT("/update_meal/:id", meals.UpdateMeal)
	r.DELETE("/meals/:id", meals.DeleteMeal)

	// User routes
	r.POST("/add_user", users.AddUser)
	r.PUT("/update_user/:id", users.UpdateUser)
	r.DELETE("/delete_user/:id", users.DeleteUser)
	r.GET("/user_summary/:id", users.Summary)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return r
}
