package services

import (
	"errors"
	"fmt"
)

// ErrNotFound mirrors repository.ErrNotFound at the service boundary; the
// controllers turn it into a 404.
var ErrNotFound = errors.New("record not found")

// ErrNotMealOwner is returned when a meal update is attempted with a body
// username that does not match the meal's stored username.
var ErrNotMealOwner = errors.New("you are not authorized to update this meal")

// ErrBadDate is returned when a supplied date is not a YYYY-MM-DD calendar
// date.
var ErrBadDate = errors.New("invalid date format. Use YYYY-MM-DD")

// UsernameTakenError reports a registration against an existing username.
type UsernameTakenError struct {
	Username string
}

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("Username '%s' already exists", e.Username)
}

// UnknownUserError reports a meal that references a username with no
// registered user behind it.
type UnknownUserError struct {
	Username string
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("Username '%s' does not exist. Please register first.", e.Username)
}
