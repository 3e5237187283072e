package controllers

import (
	"errors"
	"net/http"

	"github.com/filiperamosmorais-source/MealOps/services"
	"github.com/filiperamosmorais-source/MealOps/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors onto HTTP status codes. Unrecognized
// errors become a 500 with the raw message, matching how the rest of the API
// reports failures.
func respondError(c *gin.Context, err error) {
	var outside *services.DateOutsideWeekError
	var dup *services.DuplicateSlotError
	var unknownIng *services.UnknownIngredientError

	switch {
	case errors.Is(err, utils.ErrInvalidDate),
		errors.As(err, &outside),
		errors.As(err, &dup),
		errors.Is(err, services.ErrUnknownRecipe),
		errors.As(err, &unknownIng):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrIngredientInUse),
		errors.Is(err, services.ErrLastAdmin):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
