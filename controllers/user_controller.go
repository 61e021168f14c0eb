package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type registerInput struct {
	Username      string `json:"username" binding:"required"`
	Height        *int   `json:"height" binding:"required"`
	Weight        *int   `json:"weight" binding:"required"`
	ActivityLevel *int   `json:"activity_level" binding:"required"`
}

// AddUser handles POST /add_user.
func (ctl *UserController) AddUser(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.Register(input.Username, *input.Height, *input.Weight, *input.ActivityLevel)
	if err != nil {
		var taken *services.UsernameTakenError
		if errors.As(err, &taken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": taken.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /update_user/:id.
func (ctl *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, reassessed, err := ctl.users.Update(id, input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "User updated successfully!"
	if reassessed {
		message = "TDEE was reassessed for this user!"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}

// DeleteUser handles DELETE /delete_user/:id.
func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.users.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary handles GET /user_summary/:id. The optional date query parameter
// defaults to today.
func (ctl *UserController) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	summary, err := ctl.users.Summary(id, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			notFound(c)
		case errors.Is(err, services.ErrBadDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// pathID parses the :id path parameter. Anything non-numeric can never name
// a record, so it short-circuits to 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}
