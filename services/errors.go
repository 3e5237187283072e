package services

import (
	"errors"
	"fmt"
)

// Validation and conflict errors surfaced to controllers, which map them onto
// HTTP status codes. Anything else bubbling out of a service is a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateName      = errors.New("name already in use")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrIngredientInUse    = errors.New("ingredient is referenced by a recipe")
	ErrLastAdmin          = errors.New("cannot demote the last remaining admin")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// The ownership check deliberately reports only that some requested recipe
	// is missing or foreign, never which one, so one user cannot probe for
	// another user's recipe ids.
	ErrUnknownRecipe = errors.New("one or more recipes do not exist or are not yours")
)

// DateOutsideWeekError names the proposed meal date that falls outside the
// target week.
type DateOutsideWeekError struct {
	Date string
}

func (e *DateOutsideWeekError) Error() string {
	return fmt.Sprintf("date %s is outside the selected week", e.Date)
}

// DuplicateSlotError names the date on which the same slot was submitted twice.
type DuplicateSlotError struct {
	Date string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("duplicate meal slot on %s", e.Date)
}

// UnknownIngredientError names the specific missing ingredient id.
type UnknownIngredientError struct {
	ID uint
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("unknown ingredient id %d", e.ID)
}
